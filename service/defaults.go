package service

import (
	"time"

	"github.com/recordlane/releasecraft/core"
)

// SystemClock is the production Clock reading the system time in UTC.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return core.ToReleaseDate(time.Now())
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDIdentifiers is the production IDGenerator producing random UUIDs.
type UUIDIdentifiers struct{}

func (UUIDIdentifiers) NewStreamID() core.StreamID {
	return core.NewStreamID()
}

var _ Clock = SystemClock{}
var _ IDGenerator = UUIDIdentifiers{}
