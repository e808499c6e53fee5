package stub

// Preset is a named bundle of slot assignments that represents one semantic
// scenario. Apply is usually a method expression such as (*Stubs).ApplyNoop.
type Preset[S any] struct {
	Name        string
	Description string
	Apply       func(*S)
}

// Catalog is the ordered list of presets a contract offers.
type Catalog[S any] []Preset[S]

// Lookup returns the preset with the given name.
func (c Catalog[S]) Lookup(name string) (Preset[S], bool) {
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	return Preset[S]{}, false
}

// Names returns preset names in catalog order.
func (c Catalog[S]) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name
	}
	return names
}

// Apply applies the named presets to s in order. It checks every name before
// touching s, so an unknown name leaves s unchanged. A Catalog does not know
// its contract, so the *UnknownPresetError has an empty Contract; use
// Factory.Apply to get one that names it.
func (c Catalog[S]) Apply(s *S, names ...string) error {
	presets := make([]Preset[S], 0, len(names))
	for _, name := range names {
		p, ok := c.Lookup(name)
		if !ok {
			return &UnknownPresetError{Name: name, Known: c.Names()}
		}
		presets = append(presets, p)
	}
	for _, p := range presets {
		p.Apply(s)
	}
	return nil
}
