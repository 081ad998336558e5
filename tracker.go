package twistycube

// Tracker watches a Cube and reports when a new best number of solved
// faces is reached.
type Tracker struct {
	cube         *Cube
	last         Progress
	highestFaces int // Monotonic - never goes backwards
	callback     func(p Progress)
}

// NewTracker attaches a tracker to c. The recorded high restarts
// whenever a shuffle completes.
func NewTracker(c *Cube) *Tracker {
	t := &Tracker{cube: c}
	t.last = c.Progress()
	t.highestFaces = t.last.Faces
	c.OnTwist(func(TwistResult) {
		t.check()
	})
	c.OnShuffled(t.Reset)
	return t
}

// SetCallback sets a function fired when a new high is reached.
func (t *Tracker) SetCallback(cb func(p Progress)) {
	t.callback = cb
}

// Reset forgets the recorded high and starts from the current state.
func (t *Tracker) Reset() {
	t.last = t.cube.Progress()
	t.highestFaces = t.last.Faces
}

func (t *Tracker) check() {
	t.last = t.cube.Progress()

	// Only report a NEW high; shuffles and undos may lower the current count
	if t.last.Faces > t.highestFaces {
		t.highestFaces = t.last.Faces
		if t.callback != nil {
			t.callback(t.last)
		}
	}
}

// Current returns the progress after the most recent twist.
func (t *Tracker) Current() Progress {
	return t.last
}

// HighestFaces returns the best number of solved faces seen.
func (t *Tracker) HighestFaces() int {
	return t.highestFaces
}

// Cube returns the tracked cube.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
