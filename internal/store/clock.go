package store

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_clock.go -package=mocks promptlab/internal/store Clock

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. It is injected into the store so tests
// can control timestamps; every timestamp in the store is UTC.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by the system time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// newID generates a unique opaque identifier.
func newID() string {
	return uuid.New().String()
}
