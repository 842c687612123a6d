package bot

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/digitalcpa/invitebot/app/flow"
	"github.com/digitalcpa/invitebot/app/guestbook"
	"github.com/digitalcpa/invitebot/core/logger"
	tghelpers "github.com/digitalcpa/invitebot/core/telegram/helpers"
	"github.com/digitalcpa/invitebot/core/telegram/keyboard"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// maxPhotoBytes caps how much of an uploaded file is read into memory.
const maxPhotoBytes = 20 << 20

func (a *App) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	return a.processUpload(c, &photo.File)
}

// handleDocument accepts uncompressed uploads when their declared content
// type is an image; everything else gets a gentle redirect.
func (a *App) handleDocument(c tele.Context) error {
	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	if !strings.HasPrefix(doc.MIME, "image/") {
		return tghelpers.SendText(c, textNotAnImage)
	}
	return a.processUpload(c, &doc.File)
}

// processUpload runs the terminal step of the dialogue: fetch the photo,
// compose the invite, deliver it, then record the guest and reset the flow.
// Compose failures keep the session in the photo stage so the guest can retry.
func (a *App) processUpload(c tele.Context, file *tele.File) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	profile, stage, err := a.machine.PhotoProfile(userID)
	if err != nil {
		if errors.Is(err, flow.ErrNotReady) {
			return tghelpers.SendText(c, promptFor(stage))
		}
		return err
	}

	if err := tghelpers.SendText(c, textPhotoReceived); err != nil {
		return err
	}

	data, err := a.downloadFile(c, file)
	if err != nil {
		logger.SVCInvite.LogAttrs(ctx, slog.LevelWarn, "photo.download_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, textPhotoRetry)
	}

	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "image/") {
		logger.SVCInvite.LogAttrs(ctx, slog.LevelDebug, "photo.not_image",
			slog.Int64("user_id", userID),
			slog.String("mime", mt.String()),
		)
		return tghelpers.SendText(c, textNotAnImage)
	}

	img, err := a.compositor.Compose(data, profile)
	if err != nil {
		logger.SVCInvite.LogAttrs(ctx, slog.LevelWarn, "compose.failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, textPhotoRetry)
	}

	invitePhoto := &tele.Photo{File: tele.FromReader(bytes.NewReader(img))}
	if err := tghelpers.SendPhoto(c, invitePhoto); err != nil {
		return err
	}

	a.pacer.Pause(ctx)
	if err := tghelpers.SendText(c, textShareStories); err != nil {
		return err
	}
	a.pacer.Pause(ctx)
	if err := tghelpers.SendMD(c, textDrawInfo); err != nil {
		return err
	}
	a.pacer.Pause(ctx)
	if err := tghelpers.SendText(c, textShareInvite); err != nil {
		return err
	}

	markup := keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: textRetryButton, Unique: retryCallbackKey},
	})
	if err := c.Send(textRetryHint, markup); err != nil {
		return err
	}

	// Best-effort: a broken registry must never block delivery.
	rec := guestbook.Record{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Company:   profile.Company,
		UserID:    userID,
	}
	if err := a.registry.Append(ctx, rec); err != nil {
		logger.SVCGuestbook.LogAttrs(ctx, slog.LevelError, "registry.append_failed",
			slog.Int64("user_id", userID),
			slog.String("backend", a.registry.Backend()),
			slog.String("err", err.Error()),
		)
	}

	a.machine.Complete(ctx, userID, profile)
	return nil
}

func (a *App) downloadFile(c tele.Context, file *tele.File) ([]byte, error) {
	rc, err := c.Bot().File(file)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, maxPhotoBytes))
}
