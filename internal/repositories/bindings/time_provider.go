package bindings

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewTimeProvider returns a TimeProvider backed by the wall clock
func NewTimeProvider() TimeProvider {
	return realTimeProvider{}
}
