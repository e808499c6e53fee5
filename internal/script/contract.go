package script

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/schmitthub/stubkit/pkg/stub"
)

var (
	// ErrUnknownContract is returned for contract names with no registered driver.
	ErrUnknownContract = errors.New("unknown contract")

	// ErrUnknownMember is returned for call lines naming no member.
	ErrUnknownMember = errors.New("unknown member")

	// ErrBadArgs is returned for call lines with the wrong arguments.
	ErrBadArgs = errors.New("bad arguments")

	// ErrReadOnly is returned when a call line sets a read-only property.
	ErrReadOnly = errors.New("read-only property")
)

// PresetInfo describes one preset a contract offers.
type PresetInfo struct {
	Name        string
	Description string
}

// Target is a stub instance driven by member name.
type Target interface {
	// Invoke performs one call. The returned error reports a problem with
	// the call line itself; results of the call, including error results,
	// are rendered into the output string. Unstubbed slots panic as usual.
	Invoke(member string, args []string) (string, error)

	// Recorder returns the stub's call log.
	Recorder() *stub.Recorder
}

// Contract builds Targets for one stubbed interface.
type Contract interface {
	// Name is the short name used in scripts.
	Name() string
	// Interface is the Go interface the stub implements.
	Interface() string
	Presets() []PresetInfo
	// Members lists the call-line verbs the Target understands.
	Members() []string
	New(presets []string, overrides map[string]any) (Target, error)
}

var contracts = map[string]Contract{}

func register(c Contract) {
	contracts[c.Name()] = c
}

func init() {
	register(vehicleContract{})
	register(httpClientContract{})
}

// LookupContract returns the registered contract with the given short name.
func LookupContract(name string) (Contract, error) {
	c, ok := contracts[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownContract, name, ContractNames())
	}
	return c, nil
}

// ContractNames returns the registered contract names, sorted.
func ContractNames() []string {
	return slices.Sorted(maps.Keys(contracts))
}

func presetInfos[S any](c stub.Catalog[S]) []PresetInfo {
	infos := make([]PresetInfo, len(c))
	for i, p := range c {
		infos[i] = PresetInfo{Name: p.Name, Description: p.Description}
	}
	return infos
}

// decodeOverrides decodes the script's overrides map into out, rejecting
// keys out does not declare.
func decodeOverrides(overrides map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("%w: overrides: %v", ErrInvalidScript, err)
	}
	return nil
}

// voidMode is the override value accepted for methods without results.
type voidMode string

const (
	voidNoop      voidMode = "noop"
	voidUnstubbed voidMode = "unstubbed"
)

func parseVoidMode(member string, v *string) (voidMode, error) {
	if v == nil {
		return "", nil
	}
	switch m := voidMode(*v); m {
	case voidNoop, voidUnstubbed:
		return m, nil
	}
	return "", fmt.Errorf("%w: overrides: %s must be %q or %q, got %q",
		ErrInvalidScript, member, voidNoop, voidUnstubbed, *v)
}

func wantArgs(member string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArgs, member, n, len(args))
	}
	return nil
}
