package guestbook

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/digitalcpa/invitebot/core/logger"
	"log/slog"
)

type sheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheets opens a Google-Sheets-backed registry. The header row is written
// on first use if the sheet is blank. An empty sheet name targets the first tab.
func NewSheets(ctx context.Context, spreadsheetID, credentialsFile, sheet string) (Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rng := "A:D"
	if sheet != "" {
		rng = sheet + "!A:D"
	}
	s := &sheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     rng,
	}
	if err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}

	logger.SVCGuestbook.LogAttrs(ctx, slog.LevelInfo, "registry.open",
		slog.String("backend", s.Backend()),
		slog.String("spreadsheet_id", spreadsheetID),
	)
	return s, nil
}

func (s *sheetsStore) Backend() string { return "sheets" }

func (s *sheetsStore) ensureHeader(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.headerRange()).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: header read: %v", ErrUnavailable, err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	header := &sheets.ValueRange{
		Values: [][]interface{}{{"Имя", "Фамилия", "Компания", "ID"}},
	}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.headerRange(), header).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: header write: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *sheetsStore) headerRange() string {
	if s.readRange == "A:D" {
		return "A1:D1"
	}
	sheet := s.readRange[:len(s.readRange)-len("!A:D")]
	return sheet + "!A1:D1"
}

func (s *sheetsStore) Append(ctx context.Context, rec Record) error {
	row := &sheets.ValueRange{
		Values: [][]interface{}{{
			rec.FirstName,
			rec.LastName,
			rec.Company,
			strconv.FormatInt(rec.UserID, 10),
		}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.readRange, row).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: append: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *sheetsStore) FetchAll(ctx context.Context) ([]Record, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch: %v", ErrUnavailable, err)
	}
	return recordsFromRows(resp.Values), nil
}
