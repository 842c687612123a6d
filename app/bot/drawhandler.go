package bot

import (
	"fmt"
	"strings"

	"github.com/digitalcpa/invitebot/app/guestbook"
	"github.com/digitalcpa/invitebot/core/logger"
	"github.com/digitalcpa/invitebot/core/telegram/format"
	tghelpers "github.com/digitalcpa/invitebot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Suspense beat lengths as fractions of the base pacing delay.
const (
	beatSpinUp  = 0.5
	beatReveal  = 0.4
	beatPreDrum = 0.75
	beatDrum    = 0.5
)

// handleDraw runs the prize draw in the admin's chat: a short reveal sequence
// for suspense, then the winner announcement and a direct message to them.
// Admin access is enforced by the command router.
func (a *App) handleDraw(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	records, err := a.registry.FetchAll(ctx)
	if err != nil {
		logger.SVCDraw.LogAttrs(ctx, slog.LevelError, "draw.registry_failed",
			slog.String("backend", a.registry.Backend()),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, textDrawRegistryErr)
	}
	if len(records) == 0 {
		return tghelpers.SendText(c, textDrawEmpty)
	}

	if err := tghelpers.SendText(c, textDrawStart); err != nil {
		return err
	}
	a.pacer.PauseScaled(ctx, beatSpinUp)

	a.rndMu.Lock()
	result, err := a.selectWinner(records, a.rnd)
	a.rndMu.Unlock()
	if err != nil {
		return tghelpers.SendText(c, textDrawEmpty)
	}

	for _, rec := range result.Reveal {
		if err := tghelpers.SendText(c, fmt.Sprintf(textDrawReveal, guestName(rec))); err != nil {
			return err
		}
		a.pacer.PauseScaled(ctx, beatReveal)
	}

	a.pacer.PauseScaled(ctx, beatPreDrum)
	if err := tghelpers.SendText(c, textDrawDrums); err != nil {
		return err
	}
	a.pacer.PauseScaled(ctx, beatDrum)

	winner := result.Winner
	announcement := fmt.Sprintf(textDrawWinner,
		format.EscapeV1(guestName(winner)),
		format.EscapeV1(winner.Company),
	)
	if err := tghelpers.SendMD(c, announcement); err != nil {
		return err
	}

	logger.SVCDraw.LogAttrs(ctx, slog.LevelInfo, "draw.winner",
		slog.Int64("winner_id", winner.UserID),
		slog.Int("participants", len(records)),
		slog.Int("revealed", len(result.Reveal)),
	)

	if err := a.notifyWinner(c, winner); err != nil {
		logger.SVCDraw.LogAttrs(ctx, slog.LevelWarn, "draw.dm_failed",
			slog.Int64("winner_id", winner.UserID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, textDrawDMFailed)
	}
	return nil
}

func (a *App) notifyWinner(c tele.Context, winner guestbook.Record) error {
	if winner.UserID == 0 {
		return fmt.Errorf("winner has no stored user id")
	}
	_, err := c.Bot().Send(
		&tele.User{ID: winner.UserID},
		fmt.Sprintf(textDrawWinnerDM, guestName(winner)),
	)
	return err
}

func guestName(rec guestbook.Record) string {
	return strings.TrimSpace(rec.FirstName + " " + rec.LastName)
}
