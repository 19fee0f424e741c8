package adapter

import "time"

// Clock supplies the reference time for progress calculations.
type Clock interface {
	Now() time.Time
}
