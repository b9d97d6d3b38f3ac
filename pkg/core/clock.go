package core

import "time"

// Clock abstracts wall-clock capture so note timestamps are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the real wall clock (UTC).
func SystemClock() Clock { return systemClock{} }
