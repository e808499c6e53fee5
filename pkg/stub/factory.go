package stub

import "errors"

// Invalid is the sentinel value held by every property slot of a freshly
// constructed StubSet. Tests can assert on it to detect unset state.
const Invalid = -1

// Factory builds StubSets of type S for one contract.
//
// Defaults must return a fully populated set: Invalid in property slots and
// unstubbed-panicking functions in method slots. Presets is optional and only
// consulted by BuildWith.
type Factory[S any] struct {
	Contract string
	Defaults func() S
	Presets  Catalog[S]
}

// Build returns a StubSet seeded from Defaults and passed once through
// configure, if configure is non-nil. The set is returned by value so that
// configure cannot keep a handle on the instance's copy.
func (f Factory[S]) Build(configure func(*S)) S {
	s := f.Defaults()
	if configure != nil {
		configure(&s)
	}
	log.Debug().
		Str("contract", f.Contract).
		Bool("configured", configure != nil).
		Msg("stub built")
	return s
}

// BuildWith applies the named presets in order and then configure, so that
// direct slot assignments in configure win over any preset. Unknown preset
// names fail the whole build.
func (f Factory[S]) BuildWith(presets []string, configure func(*S)) (S, error) {
	for _, name := range presets {
		if _, ok := f.Presets.Lookup(name); !ok {
			var zero S
			return zero, &UnknownPresetError{Contract: f.Contract, Name: name, Known: f.Presets.Names()}
		}
	}
	return f.Build(func(s *S) {
		// Names were validated above.
		_ = f.Apply(s, presets...)
		if configure != nil {
			configure(s)
		}
	}), nil
}

// Apply applies the named presets to s as Catalog.Apply does, and sets
// Contract on any *UnknownPresetError it returns.
func (f Factory[S]) Apply(s *S, names ...string) error {
	err := f.Presets.Apply(s, names...)
	var upe *UnknownPresetError
	if errors.As(err, &upe) {
		upe.Contract = f.Contract
	}
	return err
}
