// Package vehicle defines the Steerable contract for a simulated vehicle and
// Pilot, a consumer that drives any Steerable along a route. There is no real
// vehicle here: implementations are supplied by callers, usually the stubs in
// package vehicletest.
package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a steering direction.
type Direction int

const (
	Straight Direction = iota
	Left
	Right
)

// ErrInvalidDirection is returned by ParseDirection for unknown names.
var ErrInvalidDirection = errors.New("invalid direction")

func (d Direction) String() string {
	switch d {
	case Straight:
		return "straight"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "left", "right" or "straight" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight":
		return Straight, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Straight, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Steerable is a vehicle that can be steered, throttled and stopped.
type Steerable interface {
	// Speed is the current speed. Writable.
	Speed() float64
	SetSpeed(speed float64)

	// Heading is the current heading in degrees. Read-only.
	Heading() float64

	// Steer turns by amount in the given direction.
	Steer(direction Direction, amount float64)

	// Accelerate changes speed by delta and reports whether the vehicle
	// responded.
	Accelerate(delta float64) bool

	// Stop brings the vehicle to rest and reports whether it stopped.
	Stop() bool
}
