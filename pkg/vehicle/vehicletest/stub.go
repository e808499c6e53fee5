package vehicletest

import (
	"github.com/schmitthub/stubkit/pkg/stub"
	"github.com/schmitthub/stubkit/pkg/vehicle"
)

var _ vehicle.Steerable = (*Stub)(nil)

// Stub implements vehicle.Steerable by forwarding to its own copy of Stubs.
// Method calls are recorded before they are dispatched.
type Stub struct {
	stubs Stubs
	calls stub.Recorder
}

// NewStub builds a Stub. configure runs once against the default Stubs and
// may be nil, in which case every method call panics.
func NewStub(configure func(*Stubs)) *Stub {
	return &Stub{stubs: Factory.Build(configure)}
}

// NewStubWithPresets applies the named presets before configure.
func NewStubWithPresets(presets []string, configure func(*Stubs)) (*Stub, error) {
	stubs, err := Factory.BuildWith(presets, configure)
	if err != nil {
		return nil, err
	}
	return &Stub{stubs: stubs}, nil
}

// Recorder returns the stub's call log.
func (s *Stub) Recorder() *stub.Recorder {
	return &s.calls
}

func (s *Stub) Speed() float64 {
	return s.stubs.Speed
}

func (s *Stub) SetSpeed(speed float64) {
	s.stubs.Speed = speed
}

func (s *Stub) Heading() float64 {
	return s.stubs.Heading
}

func (s *Stub) Steer(direction vehicle.Direction, amount float64) {
	s.calls.Record("Steer", direction, amount)
	if s.stubs.SteerFn == nil {
		panic(stub.Unstubbed(Contract, "Steer"))
	}
	s.stubs.SteerFn(direction, amount)
}

func (s *Stub) Accelerate(delta float64) bool {
	s.calls.Record("Accelerate", delta)
	if s.stubs.AccelerateFn == nil {
		panic(stub.Unstubbed(Contract, "Accelerate"))
	}
	return s.stubs.AccelerateFn(delta)
}

func (s *Stub) Stop() bool {
	s.calls.Record("Stop")
	if s.stubs.StopFn == nil {
		panic(stub.Unstubbed(Contract, "Stop"))
	}
	return s.stubs.StopFn()
}
