package recognizer

import "sort"

// Factory constructs a predefined recognizer from construction
// parameters. Non-zero Params fields override the recognizer's defaults.
type Factory func(p Params) (*PatternRecognizer, error)

// builtins maps predefined recognizer names to their factories.
// Populated at init by the per-recognizer files in this package.
var builtins = map[string]Factory{}

func register(name string, f Factory) {
	builtins[name] = f
}

// Lookup resolves a predefined recognizer factory by name. A miss is not
// an error: configuration may name recognizers that a given build does
// not carry.
func Lookup(name string) (Factory, bool) {
	f, ok := builtins[name]
	return f, ok
}

// BuiltinNames returns the registered predefined recognizer names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newPredefined fills zero Params fields from the recognizer's defaults
// before construction. The entry's own name is never forwarded: a
// predefined recognizer keeps the name it registered under.
func newPredefined(p, defaults Params) (*PatternRecognizer, error) {
	p.Name = defaults.Name
	if p.Entity == "" {
		p.Entity = defaults.Entity
	}
	if len(p.Patterns) == 0 {
		p.Patterns = defaults.Patterns
	}
	if p.Context == nil {
		p.Context = defaults.Context
	}
	return NewPattern(p)
}
