package guestbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordsFromRowsLegacyRussianHeaders(t *testing.T) {
	rows := [][]interface{}{
		{"Имя", "Фамилия", "Компания", "ID"},
		{"Anna", "Petrova", "Acme Corp", "123456"},
		{"Иван", "Сидоров", "ООО Ромашка", float64(789)},
	}

	got := recordsFromRows(rows)
	assert.Equal(t, []Record{
		{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp", UserID: 123456},
		{FirstName: "Иван", LastName: "Сидоров", Company: "ООО Ромашка", UserID: 789},
	}, got)
}

func TestRecordsFromRowsNormalizedHeaders(t *testing.T) {
	rows := [][]interface{}{
		{"first_name", "last_name", "company", "id"},
		{"Anna", "Petrova", "Acme Corp", "42"},
	}

	got := recordsFromRows(rows)
	assert.Equal(t, []Record{
		{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp", UserID: 42},
	}, got)
}

func TestRecordsFromRowsMixedAndMalformed(t *testing.T) {
	rows := [][]interface{}{
		{"Имя", "last_name", "Компания", "ID"},
		{"Anna", "Petrova", "Acme Corp", "not-a-number"},
		{"", "", "", ""},
		{"Boris"},
	}

	got := recordsFromRows(rows)
	assert.Equal(t, []Record{
		{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp", UserID: 0},
		{FirstName: "Boris"},
	}, got)
}

func TestRecordsFromRowsEmpty(t *testing.T) {
	assert.Nil(t, recordsFromRows(nil))
	assert.Empty(t, recordsFromRows([][]interface{}{{"Имя", "Фамилия", "Компания", "ID"}}))
}

func TestNormalizeHeader(t *testing.T) {
	for raw, want := range map[string]string{
		" Имя ":      headerFirstName,
		"ФАМИЛИЯ":    headerLastName,
		"company":    headerCompany,
		"Компания":   headerCompany,
		"id":         headerUserID,
		"user_id":    headerUserID,
		"first_name": headerFirstName,
	} {
		got, ok := normalizeHeader(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := normalizeHeader("unknown")
	assert.False(t, ok)
}
