package stub

import (
	"errors"
	"fmt"
)

var (
	// ErrUnstubbed matches any *UnstubbedError via errors.Is.
	ErrUnstubbed = errors.New("unstubbed invocation")

	// ErrUnknownPreset matches any *UnknownPresetError via errors.Is.
	ErrUnknownPreset = errors.New("unknown preset")
)

// UnstubbedError reports a call to a method slot that was never configured.
// It is the panic value of every default method slot.
type UnstubbedError struct {
	Contract string
	Member   string
}

func (e *UnstubbedError) Error() string {
	return fmt.Sprintf("unstubbed invocation of %s.%s: set %sFn when constructing the stub",
		e.Contract, e.Member, e.Member)
}

// Is reports whether target is ErrUnstubbed.
func (e *UnstubbedError) Is(target error) bool {
	return target == ErrUnstubbed
}

// Unstubbed builds the *UnstubbedError for contract.member and logs it.
// Default method slots panic with the result:
//
//	StopFn: func() bool { panic(stub.Unstubbed(Contract, "Stop")) }
func Unstubbed(contract, member string) *UnstubbedError {
	err := &UnstubbedError{Contract: contract, Member: member}
	log.Error().
		Str("contract", contract).
		Str("member", member).
		Msg("unstubbed invocation")
	return err
}

// Catch runs fn and returns the *UnstubbedError it panicked with, or nil if
// fn returned normally. Any other panic value is re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ue, ok := r.(*UnstubbedError); ok {
			err = ue
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// UnknownPresetError is returned when a preset name is not in a Catalog.
type UnknownPresetError struct {
	Contract string
	Name     string
	Known    []string
}

func (e *UnknownPresetError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("unknown preset %q (known: %v)", e.Name, e.Known)
	}
	return fmt.Sprintf("unknown preset %q for %s (known: %v)", e.Name, e.Contract, e.Known)
}

// Unwrap returns ErrUnknownPreset.
func (e *UnknownPresetError) Unwrap() error {
	return ErrUnknownPreset
}
