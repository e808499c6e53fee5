// Package vehicletest provides a configurable stub of vehicle.Steerable.
//
// Usage:
//
//	v := vehicletest.NewStub(func(s *vehicletest.Stubs) {
//	    s.ApplyNoop()
//	    s.SteerFn = func(d vehicle.Direction, amount float64) {
//	        gotDir, gotAmount = d, amount
//	    }
//	})
//	pilot := vehicle.NewPilot(v)
//
// Unconfigured method slots panic with *stub.UnstubbedError and unconfigured
// property slots read stub.Invalid.
package vehicletest

import (
	"github.com/schmitthub/stubkit/pkg/stub"
	"github.com/schmitthub/stubkit/pkg/vehicle"
)

// Contract is the name used in unstubbed-invocation errors.
const Contract = "vehicle.Steerable"

// Stubs holds one slot per vehicle.Steerable member.
type Stubs struct {
	// --- Properties ---
	Speed   float64
	Heading float64

	// --- Methods ---
	SteerFn      func(direction vehicle.Direction, amount float64)
	AccelerateFn func(delta float64) bool
	StopFn       func() bool
}

// NewStubs returns a StubSet with every property at stub.Invalid and every
// method unstubbed.
func NewStubs() Stubs {
	return Stubs{
		Speed:   stub.Invalid,
		Heading: stub.Invalid,
		SteerFn: func(vehicle.Direction, float64) {
			panic(stub.Unstubbed(Contract, "Steer"))
		},
		AccelerateFn: func(float64) bool {
			panic(stub.Unstubbed(Contract, "Accelerate"))
		},
		StopFn: func() bool {
			panic(stub.Unstubbed(Contract, "Stop"))
		},
	}
}

// ApplyNoop makes every member harmless: Speed and Heading are 0, Steer does
// nothing, Accelerate and Stop return true.
func (s *Stubs) ApplyNoop() {
	s.Speed = 0
	s.Heading = 0
	s.SteerFn = steerNoop
	s.AccelerateFn = succeed
	s.StopFn = stopOK
}

// ApplyStalled models an engine that will not respond: Speed is 0,
// Accelerate returns false and Stop returns true. Steer and Heading are left
// as they are.
func (s *Stubs) ApplyStalled() {
	s.Speed = 0
	s.AccelerateFn = fail
	s.StopFn = stopOK
}

// ApplyRunaway models failed brakes: Accelerate returns true and Stop returns
// false. Properties and Steer are left as they are.
func (s *Stubs) ApplyRunaway() {
	s.AccelerateFn = succeed
	s.StopFn = stopFailed
}

func steerNoop(vehicle.Direction, float64) {}

func succeed(float64) bool { return true }

func fail(float64) bool { return false }

func stopOK() bool { return true }

func stopFailed() bool { return false }

// Presets lists the named presets in the order they are documented.
var Presets = stub.Catalog[Stubs]{
	{Name: "noop", Description: "every member harmless; properties 0, Accelerate/Stop true", Apply: (*Stubs).ApplyNoop},
	{Name: "stalled", Description: "Speed 0, Accelerate false, Stop true", Apply: (*Stubs).ApplyStalled},
	{Name: "runaway", Description: "Accelerate true, Stop false", Apply: (*Stubs).ApplyRunaway},
}

// Factory builds vehicle StubSets.
var Factory = stub.Factory[Stubs]{
	Contract: Contract,
	Defaults: NewStubs,
	Presets:  Presets,
}
