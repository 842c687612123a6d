package flow

import (
	"context"
	"strings"

	"github.com/digitalcpa/invitebot/core/logger"
	"log/slog"
)

// Machine advances sessions through the registration dialogue.
type Machine struct {
	store *Store
}

// NewMachine wraps a session store in a dialogue state machine.
func NewMachine(store *Store) *Machine {
	if store == nil {
		store = NewStore()
	}
	return &Machine{store: store}
}

// Store exposes the underlying session store.
func (m *Machine) Store() *Store { return m.store }

// StepResult describes what happened to the session after a text message.
type StepResult struct {
	// Created is set when the message arrived with no session present;
	// the text is not consumed and the user is prompted from the start.
	Created bool
	// Stage is the stage the session is in after the step.
	Stage Stage
	// Repeated is set when the message did not advance the stage
	// (blank input, or text while a photo is expected).
	Repeated bool
	// FirstName is filled on the transition into StageNeedPhoto so the
	// acknowledgement can be personalised.
	FirstName string
}

// HandleText feeds one inbound text message into the user's session.
func (m *Machine) HandleText(ctx context.Context, userID int64, text string) StepResult {
	text = strings.TrimSpace(text)

	var res StepResult
	m.store.update(userID, func(sess *Session, existed bool) {
		if !existed {
			res = StepResult{Created: true, Stage: sess.Stage}
			return
		}
		if text == "" && sess.Stage != StageNeedPhoto {
			res = StepResult{Stage: sess.Stage, Repeated: true}
			return
		}
		switch sess.Stage {
		case StageAskFirstName:
			sess.FirstName = text
			sess.Stage = StageAskLastName
		case StageAskLastName:
			sess.LastName = text
			sess.Stage = StageAskCompany
		case StageAskCompany:
			sess.Company = text
			sess.Stage = StageNeedPhoto
			res.FirstName = sess.FirstName
		case StageNeedPhoto:
			res.Repeated = true
		}
		res.Stage = sess.Stage
	})

	logger.SVCFlow.LogAttrs(ctx, slog.LevelDebug, "flow.step",
		slog.Int64("user_id", userID),
		slog.String("stage", string(res.Stage)),
		slog.Bool("created", res.Created),
	)
	return res
}

// Begin resets the user's session to the initial stage, as /start does.
func (m *Machine) Begin(ctx context.Context, userID int64) {
	m.store.Reset(userID)
	logger.SVCFlow.LogAttrs(ctx, slog.LevelDebug, "flow.begin",
		slog.Int64("user_id", userID),
	)
}

// PhotoProfile returns the collected fields once the session is waiting for a
// photo. Any earlier stage yields ErrNotReady and the stage to re-prompt for.
func (m *Machine) PhotoProfile(userID int64) (Profile, Stage, error) {
	sess, ok := m.store.Get(userID)
	if !ok {
		m.store.Reset(userID)
		return Profile{}, StageAskFirstName, ErrNotReady
	}
	if sess.Stage != StageNeedPhoto {
		return Profile{}, sess.Stage, ErrNotReady
	}
	return Profile{
		FirstName: sess.FirstName,
		LastName:  sess.LastName,
		Company:   sess.Company,
	}, sess.Stage, nil
}

// Complete records a successful submission: the profile is snapshotted for
// later regeneration and the session loops back to the initial stage.
func (m *Machine) Complete(ctx context.Context, userID int64, p Profile) {
	m.store.saveCompleted(userID, p)
	logger.SVCFlow.LogAttrs(ctx, slog.LevelInfo, "flow.complete",
		slog.Int64("user_id", userID),
	)
}

// Regenerate restores the user's last completed profile and puts the session
// back into the photo stage. It reports false when there is nothing to restore.
func (m *Machine) Regenerate(ctx context.Context, userID int64) (Profile, bool) {
	p, ok := m.store.LastCompleted(userID)
	if !ok {
		// A session that already holds all three fields also qualifies.
		sess, exists := m.store.Get(userID)
		if !exists || sess.FirstName == "" || sess.Company == "" {
			return Profile{}, false
		}
		p = Profile{FirstName: sess.FirstName, LastName: sess.LastName, Company: sess.Company}
	}
	m.store.update(userID, func(sess *Session, _ bool) {
		sess.FirstName = p.FirstName
		sess.LastName = p.LastName
		sess.Company = p.Company
		sess.Stage = StageNeedPhoto
	})
	logger.SVCFlow.LogAttrs(ctx, slog.LevelInfo, "flow.regenerate",
		slog.Int64("user_id", userID),
	)
	return p, true
}
