package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/digitalcpa/invitebot/core/logger"
	tghelpers "github.com/digitalcpa/invitebot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// handleStart greets the guest, records an optional referral and opens a
// fresh registration dialogue.
func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		if inviterID, err := strconv.ParseInt(payload, 10, 64); err == nil {
			if a.referrals.Add(inviterID, userID) {
				logger.SVCFlow.LogAttrs(ctx, slog.LevelInfo, "referral.counted",
					slog.Int64("inviter_id", inviterID),
					slog.Int64("user_id", userID),
				)
			}
		}
	}

	if a.cfg.Assets.BannerFile != "" {
		banner := &tele.Photo{File: tele.FromDisk(a.cfg.Assets.BannerFile)}
		if err := tghelpers.SendPhoto(c, banner); err != nil {
			logger.SVCFlow.LogAttrs(ctx, slog.LevelWarn, "banner.send_failed",
				slog.String("err", err.Error()),
			)
		}
		a.pacer.Pause(ctx)
	}

	if err := tghelpers.SendMD(c, textIntro); err != nil {
		return err
	}
	a.pacer.Pause(ctx)

	a.machine.Begin(ctx, userID)
	return tghelpers.SendText(c, textAskFirstName)
}

func (a *App) handleWhoami(c tele.Context) error {
	return tghelpers.SendText(c, fmt.Sprintf(textWhoami, c.Sender().ID))
}

func (a *App) handleMystats(c tele.Context) error {
	count := a.referrals.Count(c.Sender().ID)
	return tghelpers.SendText(c, fmt.Sprintf(textMystats, count))
}
