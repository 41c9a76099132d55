package eventlog_test

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/eventlog"
)

func Test_BuildRecord_Success(t *testing.T) {
	// arrange
	occurredAt := time.Now().UTC()

	// act
	record, err := eventlog.BuildRecord(core.SongStreamedEventType, occurredAt, []byte(`{"foo": "bar"}`))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.SongStreamedEventType, record.EventType)
	assert.Equal(t, occurredAt, record.OccurredAt)
}

func Test_BuildRecord_Fails_WithInvalidPayloadJSON(t *testing.T) {
	// act
	_, err := eventlog.BuildRecord(core.SongStreamedEventType, time.Now(), []byte(`{"foo": `))

	// assert
	assert.ErrorIs(t, err, eventlog.ErrInvalidPayloadJSON)
}

func Test_RecordFrom_MapsADomainEventToAStorableRecord(t *testing.T) {
	// arrange
	stream, err := core.BuildAudioStream(core.NewStreamID(), core.NewSongID(), 45, time.Now())
	require.NoError(t, err)
	event := core.BuildSongStreamed(stream, time.Now())

	// act
	record, err := eventlog.RecordFrom(event)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.SongStreamedEventType, record.EventType)
	assert.Equal(t, event.HasOccurredAt(), record.OccurredAt)
	assert.True(t, jsoniter.ConfigFastest.Valid(record.PayloadJSON))

	var decoded core.SongStreamed
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(record.PayloadJSON, &decoded))
	assert.Equal(t, event.StreamID, decoded.StreamID)
	assert.Equal(t, event.DurationSeconds, decoded.DurationSeconds)
	assert.Equal(t, event.Monetized, decoded.Monetized)
}
