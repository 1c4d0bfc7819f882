package domain

import "time"

// CurrentTimeProvider abstracts the clock so timestamps stay
// deterministic in tests.
type CurrentTimeProvider interface {
	Now() time.Time
}
