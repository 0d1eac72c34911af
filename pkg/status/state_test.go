package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		chunkID   int
		hasSource bool
		moved     bool
		appID     int
		want      State
	}{
		{"missing chunk dominates moved artifact", -1, true, true, 12345, MissingChunkID},
		{"zero chunk", 0, false, false, 0, MissingChunkID},
		{"no source not moved", 5, false, false, 0, NoSourceArtifact},
		{"source not moved", 5, true, false, 0, ReadyToMove},
		{"moved without app id", 5, true, true, 0, MovedPublishNotConfigured},
		{"moved with app id", 5, false, true, 12345, MovedReadyToPublish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.chunkID, tt.hasSource, tt.moved, tt.appID))
		})
	}
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		state State
		moved bool
		want  Actions
	}{
		{MissingChunkID, false, Actions{}},
		{MissingChunkID, true, Actions{Remove: true}},
		{NoSourceArtifact, false, Actions{}},
		{ReadyToMove, false, Actions{Move: true}},
		{MovedPublishNotConfigured, true, Actions{Remove: true}},
		{MovedReadyToPublish, true, Actions{Remove: true, Publish: true}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ActionsFor(tt.state, tt.moved))
		})
	}
}

func TestStateText(t *testing.T) {
	assert.Equal(t, "Missing ChunkID", MissingChunkID.Label())
	assert.Equal(t, "No Pak Found", NoSourceArtifact.Label())
	assert.Equal(t, "Ready to be Moved", ReadyToMove.Label())
	assert.Equal(t, "Moved | Ready for Deploy", MovedReadyToPublish.Label())
	assert.Equal(t, "Moved | Steam Not Configured", MovedPublishNotConfigured.Label())
	assert.Equal(t, "Unknown State", State(99).Label())
	assert.Equal(t, "Unknown", State(99).String())

	assert.Equal(t, SeverityError, MissingChunkID.Severity())
	assert.Equal(t, SeverityOK, ReadyToMove.Severity())
	assert.Equal(t, SeverityWarn, MovedPublishNotConfigured.Severity())

	text, err := ReadyToMove.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "ReadyToMove", string(text))
}
