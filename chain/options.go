package chain

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Wrapper at construction time.
type Option func(*Wrapper)

// WithLogger sets the diagnostic sink. Unrecognized date tokens, scalar
// copies and failed operations are reported here. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Wrapper) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDayNames sets the weekday names used by the EE date token, Monday
// first.
func WithDayNames(names [7]string) Option {
	return func(w *Wrapper) { w.dates.DayNames = names }
}

// WithLocation sets the time zone used to render dates and timestamps.
func WithLocation(loc *time.Location) Option {
	return func(w *Wrapper) { w.dates.Location = loc }
}

// WithRegistry makes the operations in r available through [Wrapper.Call].
func WithRegistry(r *Registry) Option {
	return func(w *Wrapper) { w.registry = r }
}
