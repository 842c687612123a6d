// Package flow implements the guided registration dialogue: the bot asks for
// a first name, surname and company in order, then waits for a photo.
package flow

import "errors"

// Stage is the current step of the registration dialogue.
type Stage string

const (
	// StageAskFirstName is the initial stage of every session.
	StageAskFirstName Stage = "ask_first_name"
	StageAskLastName  Stage = "ask_last_name"
	StageAskCompany   Stage = "ask_company"
	// StageNeedPhoto means all text fields are collected and the bot waits for a photo.
	StageNeedPhoto Stage = "need_photo"
)

// Session is one user's in-memory dialogue progress. A field is only
// meaningful once the stage that collects it has passed.
type Session struct {
	Stage     Stage
	FirstName string
	LastName  string
	Company   string
}

// Profile is the completed set of text fields passed to the compositor
// and the guest registry.
type Profile struct {
	FirstName string
	LastName  string
	Company   string
}

// FullName joins first and last name with a single space, skipping empty parts.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ErrNotReady is returned when a photo arrives before all text stages are complete.
var ErrNotReady = errors.New("flow: profile is not complete yet")

func newSession() *Session {
	return &Session{Stage: StageAskFirstName}
}
