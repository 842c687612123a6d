package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digitalcpa/invitebot/app/flow"
	"github.com/digitalcpa/invitebot/app/guestbook"
)

func TestPromptForStage(t *testing.T) {
	assert.Equal(t, textAskFirstName, promptFor(flow.StageAskFirstName))
	assert.Equal(t, textAskLastName, promptFor(flow.StageAskLastName))
	assert.Equal(t, textAskCompany, promptFor(flow.StageAskCompany))
	assert.Equal(t, textAskPhoto, promptFor(flow.StageNeedPhoto))
	assert.Equal(t, textAskFirstName, promptFor(flow.Stage("bogus")))
}

func TestGuestName(t *testing.T) {
	assert.Equal(t, "Anna Petrova", guestName(guestbook.Record{FirstName: "Anna", LastName: "Petrova"}))
	assert.Equal(t, "Anna", guestName(guestbook.Record{FirstName: "Anna"}))
	assert.Equal(t, "Petrova", guestName(guestbook.Record{LastName: "Petrova"}))
	assert.Equal(t, "", guestName(guestbook.Record{}))
}
