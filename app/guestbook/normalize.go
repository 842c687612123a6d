package guestbook

import (
	"fmt"
	"strconv"
	"strings"
)

// Column headers written by this bot. Reads also accept the legacy Russian
// spellings left behind by the previous registration sheet.
const (
	headerFirstName = "first_name"
	headerLastName  = "last_name"
	headerCompany   = "company"
	headerUserID    = "id"
)

var headerAliases = map[string]string{
	"first_name": headerFirstName,
	"имя":        headerFirstName,
	"last_name":  headerLastName,
	"фамилия":    headerLastName,
	"company":    headerCompany,
	"компания":   headerCompany,
	"id":         headerUserID,
	"user_id":    headerUserID,
}

func normalizeHeader(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	canon, ok := headerAliases[key]
	return canon, ok
}

// recordsFromRows converts a raw sheet value grid into records. The first row
// is the header; rows with no resolvable user id are kept with a zero id
// rather than dropped, so a malformed row cannot shift the draw odds.
func recordsFromRows(rows [][]interface{}) []Record {
	if len(rows) == 0 {
		return nil
	}

	cols := map[string]int{}
	for i, cell := range rows[0] {
		if canon, ok := normalizeHeader(cellString(cell)); ok {
			if _, seen := cols[canon]; !seen {
				cols[canon] = i
			}
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			FirstName: cellAt(row, cols, headerFirstName),
			LastName:  cellAt(row, cols, headerLastName),
			Company:   cellAt(row, cols, headerCompany),
		}
		if idStr := cellAt(row, cols, headerUserID); idStr != "" {
			rec.UserID = parseUserID(idStr)
		}
		if rec == (Record{}) {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func cellAt(row []interface{}, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[i]))
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// Sheets returns numeric cells as float64.
		return strconv.FormatInt(int64(t), 10)
	default:
		return fmt.Sprint(t)
	}
}

func parseUserID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
