// Package stub provides the building blocks for configurable test doubles.
//
// A stubbed contract is described by two types living in a companion test
// package (like net/http/httptest next to net/http):
//
//   - a StubSet: a struct with one slot per contract member. Property slots
//     are plain fields, method slots are function fields named <Method>Fn.
//   - a StubInstance: a type implementing the contract by forwarding every
//     member to its private copy of the StubSet.
//
// A Factory turns a defaults constructor and an optional configure function
// into a finished StubSet. Defaults put Invalid in every property slot and a
// function that panics with *UnstubbedError in every method slot, so a test
// that forgets to configure something fails loudly and names the member.
//
// Usage:
//
//	s := vehicletest.NewStub(func(s *vehicletest.Stubs) {
//	    s.ApplyNoop()
//	    s.SteerFn = func(d vehicle.Direction, amount float64) { ... }
//	})
//
//	err := stub.Catch(func() { s.Stop() })
//	errors.Is(err, stub.ErrUnstubbed)
package stub
