package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTextAdvancesStages(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())
	const userID int64 = 42

	m.Begin(ctx, userID)

	res := m.HandleText(ctx, userID, "  Anna ")
	assert.Equal(t, StageAskLastName, res.Stage)

	res = m.HandleText(ctx, userID, "Petrova")
	assert.Equal(t, StageAskCompany, res.Stage)

	res = m.HandleText(ctx, userID, "Acme Corp")
	assert.Equal(t, StageNeedPhoto, res.Stage)
	assert.Equal(t, "Anna", res.FirstName)

	p, stage, err := m.PhotoProfile(userID)
	require.NoError(t, err)
	assert.Equal(t, StageNeedPhoto, stage)
	assert.Equal(t, Profile{FirstName: "Anna", LastName: "Petrova", Company: "Acme Corp"}, p)
	assert.Equal(t, "Anna Petrova", p.FullName())
}

func TestHandleTextWithoutSessionCreatesOne(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())

	res := m.HandleText(ctx, 7, "hello")
	assert.True(t, res.Created)
	assert.Equal(t, StageAskFirstName, res.Stage)

	// The triggering text is not consumed as a first name.
	res = m.HandleText(ctx, 7, "Ivan")
	assert.Equal(t, StageAskLastName, res.Stage)
	sess, ok := m.Store().Get(7)
	require.True(t, ok)
	assert.Equal(t, "Ivan", sess.FirstName)
}

func TestHandleTextBlankInputRepeatsStage(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())
	m.Begin(ctx, 1)

	res := m.HandleText(ctx, 1, "   ")
	assert.True(t, res.Repeated)
	assert.Equal(t, StageAskFirstName, res.Stage)
}

func TestPhotoBeforeCompletionNotReady(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())
	m.Begin(ctx, 5)
	m.HandleText(ctx, 5, "Anna")

	_, stage, err := m.PhotoProfile(5)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, StageAskLastName, stage)
}

func TestCompleteResetsToInitialState(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())
	m.Begin(ctx, 9)
	m.HandleText(ctx, 9, "Anna")
	m.HandleText(ctx, 9, "Petrova")
	m.HandleText(ctx, 9, "Acme Corp")

	p, _, err := m.PhotoProfile(9)
	require.NoError(t, err)
	m.Complete(ctx, 9, p)

	sess, ok := m.Store().Get(9)
	require.True(t, ok)
	assert.Equal(t, Session{Stage: StageAskFirstName}, sess)
}

func TestRegenerateRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())
	m.Begin(ctx, 3)
	m.HandleText(ctx, 3, "Anna")
	m.HandleText(ctx, 3, "Petrova")
	m.HandleText(ctx, 3, "Acme Corp")
	p, _, err := m.PhotoProfile(3)
	require.NoError(t, err)
	m.Complete(ctx, 3, p)

	got, ok := m.Regenerate(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, p, got)

	restored, _, err := m.PhotoProfile(3)
	require.NoError(t, err)
	assert.Equal(t, p, restored)
}

func TestRegenerateWithoutHistory(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewStore())

	_, ok := m.Regenerate(ctx, 100)
	assert.False(t, ok)
}
