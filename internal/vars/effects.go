package vars

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Effects maps variables to signed deltas. Keys are validated when the map is
// decoded, so a misspelled name fails loudly instead of creating a new
// untracked variable.
type Effects map[Key]float64

// UnmarshalYAML decodes a mapping of variable names to deltas.
func (e *Effects) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]float64
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Effects, len(raw))
	for name, delta := range raw {
		k, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		out[k] = delta
	}
	*e = out
	return nil
}

// Validate rejects keys outside the tracked set.
func (e Effects) Validate() error {
	for k := range e {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownKey, string(k))
		}
	}
	return nil
}

// Apply adds every delta to store, in status-panel key order.
func (e Effects) Apply(store *Store) {
	for _, k := range allKeys {
		if d, ok := e[k]; ok {
			store.Add(k, d)
		}
	}
}
