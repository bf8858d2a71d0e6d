// Package clock provides the wall clock used by use cases.
package clock

import (
	"time"

	"marketplace/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a clock reading the current UTC time.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
