package bot

import (
	"fmt"

	"github.com/digitalcpa/invitebot/app/flow"
	tghelpers "github.com/digitalcpa/invitebot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// HandleText advances the registration dialogue with one inbound message.
// It implements the router's Conversation interface.
func (a *App) HandleText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	res := a.machine.HandleText(ctx, c.Sender().ID, c.Text())

	if res.Created || res.Repeated {
		return tghelpers.SendText(c, promptFor(res.Stage))
	}

	switch res.Stage {
	case flow.StageAskLastName, flow.StageAskCompany:
		a.pacer.Pause(ctx)
		return tghelpers.SendText(c, promptFor(res.Stage))
	case flow.StageNeedPhoto:
		a.pacer.Pause(ctx)
		if err := tghelpers.SendText(c, fmt.Sprintf(textNiceToMeet, res.FirstName)); err != nil {
			return err
		}
		a.pacer.Pause(ctx)
		return tghelpers.SendText(c, textAskPhoto)
	}
	return tghelpers.SendText(c, promptFor(res.Stage))
}

// handleRetryPhoto restores the guest's last submitted profile and asks for a
// new photo, so the invite can be regenerated without retyping everything.
func (a *App) handleRetryPhoto(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if _, ok := a.machine.Regenerate(ctx, c.Sender().ID); !ok {
		return tghelpers.SendText(c, textRetryNoData)
	}
	return tghelpers.SendText(c, textRetryAck)
}

func promptFor(stage flow.Stage) string {
	switch stage {
	case flow.StageAskLastName:
		return textAskLastName
	case flow.StageAskCompany:
		return textAskCompany
	case flow.StageNeedPhoto:
		return textAskPhoto
	}
	return textAskFirstName
}
