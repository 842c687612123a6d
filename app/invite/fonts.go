package invite

import (
	"context"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"

	"github.com/digitalcpa/invitebot/core/logger"
	"log/slog"
)

// Bundled fallback faces used when the branded font files are absent.
var (
	fallbackBoldTTF   = gobold.TTF
	fallbackMediumTTF = gomedium.TTF
)

// loadFace parses a font file into a face of the given point size. When the
// file is missing or unreadable the bundled fallback is used instead.
func loadFace(path string, size float64, fallback []byte) (font.Face, error) {
	data := fallback
	branded := false
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			logger.SVCInvite.LogAttrs(context.Background(), slog.LevelWarn, "font.fallback",
				slog.String("path", path),
				slog.String("err", err.Error()),
			)
		} else {
			data = b
			branded = true
		}
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		if branded {
			// Branded font did not parse; retry with the bundled face.
			logger.SVCInvite.LogAttrs(context.Background(), slog.LevelWarn, "font.parse_fallback",
				slog.String("path", path),
				slog.String("err", err.Error()),
			)
			ft, err = opentype.Parse(fallback)
		}
		if err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
