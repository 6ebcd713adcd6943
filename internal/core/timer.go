package core

import "time"

// StageTime records the wall-clock cost of one generation stage.
type StageTime struct {
	Name    string
	Elapsed time.Duration
}

// StageClock measures consecutive generation stages. Each Mark closes the
// stage that began at construction or at the previous Mark.
type StageClock struct {
	stages []StageTime
	last   time.Time
}

// NewStageClock starts the clock for the first stage.
func NewStageClock() *StageClock {
	return &StageClock{last: time.Now()}
}

// Mark ends the current stage under the given name, starts the next one and
// returns the finished stage's duration.
func (c *StageClock) Mark(name string) time.Duration {
	now := time.Now()
	d := now.Sub(c.last)
	c.stages = append(c.stages, StageTime{Name: name, Elapsed: d})
	c.last = now
	return d
}

// Stages returns the recorded stages in completion order.
func (c *StageClock) Stages() []StageTime { return c.stages }

// Total sums the recorded stage durations.
func (c *StageClock) Total() time.Duration {
	var t time.Duration
	for _, s := range c.stages {
		t += s.Elapsed
	}
	return t
}
