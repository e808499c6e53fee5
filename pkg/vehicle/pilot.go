package vehicle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrStalled is returned when the vehicle refuses to accelerate.
	ErrStalled = errors.New("vehicle stalled")

	// ErrNoStop is returned when the vehicle does not stop at the end of a route.
	ErrNoStop = errors.New("vehicle did not stop")
)

// Leg is one step of a route: an optional throttle change followed by a turn.
type Leg struct {
	Direction Direction
	Amount    float64
	// Throttle is passed to Accelerate when non-zero.
	Throttle float64
}

// Pilot drives a Steerable along a route.
type Pilot struct {
	vehicle Steerable
	log     zerolog.Logger
}

// PilotOption configures a Pilot.
type PilotOption func(*Pilot)

// WithLogger sets the logger used for per-leg debug events.
func WithLogger(l zerolog.Logger) PilotOption {
	return func(p *Pilot) {
		p.log = l
	}
}

// NewPilot returns a Pilot for v.
func NewPilot(v Steerable, opts ...PilotOption) *Pilot {
	p := &Pilot{vehicle: v, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Drive runs every leg in order and stops the vehicle at the end. It returns
// the number of legs completed. A stall aborts the route without stopping.
func (p *Pilot) Drive(route []Leg) (int, error) {
	for i, leg := range route {
		if leg.Throttle != 0 && !p.vehicle.Accelerate(leg.Throttle) {
			return i, fmt.Errorf("leg %d: %w", i, ErrStalled)
		}
		p.vehicle.Steer(leg.Direction, leg.Amount)
		p.log.Debug().
			Int("leg", i).
			Stringer("direction", leg.Direction).
			Float64("amount", leg.Amount).
			Msg("leg complete")
	}
	if !p.vehicle.Stop() {
		return len(route), ErrNoStop
	}
	return len(route), nil
}
