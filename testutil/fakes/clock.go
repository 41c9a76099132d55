package fakes

import (
	"time"

	"github.com/recordlane/releasecraft/core"
	"github.com/recordlane/releasecraft/service"
)

// Clock is a settable service.Clock for tests.
type Clock struct {
	Current time.Time
}

// NewClock creates a Clock frozen at the given instant.
func NewClock(current time.Time) *Clock {
	return &Clock{Current: current}
}

func (c *Clock) Today() time.Time {
	return core.ToReleaseDate(c.Current)
}

func (c *Clock) Now() time.Time {
	return c.Current
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

var _ service.Clock = (*Clock)(nil)

// StreamIDs is a service.IDGenerator that records every id it hands out.
type StreamIDs struct {
	Issued []core.StreamID
}

func (g *StreamIDs) NewStreamID() core.StreamID {
	id := core.NewStreamID()
	g.Issued = append(g.Issued, id)

	return id
}

var _ service.IDGenerator = (*StreamIDs)(nil)
