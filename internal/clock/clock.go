package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current instant. Checkout timestamps and export
// filenames go through it so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() Clock { return systemClock{} }

// Module wires the wall clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
