package prefs

import (
	"fmt"
	"sort"
)

// StaticRegistry is a map-backed implementation of [ThemeRegistry] and
// [LanguageRegistry] for identifier sets known at startup.
type StaticRegistry struct {
	known  map[string]struct{}
	active string
}

// NewStaticRegistry builds a registry over the given identifiers. The first
// identifier, sorted, is the initial active one.
func NewStaticRegistry(ids ...string) *StaticRegistry {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	r := &StaticRegistry{known: known}
	if len(ids) > 0 {
		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		r.active = sorted[0]
	}
	return r
}

// Exists reports whether the identifier is registered.
func (r *StaticRegistry) Exists(id string) bool {
	_, ok := r.known[id]
	return ok
}

// Activate makes the identifier the active one.
func (r *StaticRegistry) Activate(id string) error {
	if !r.Exists(id) {
		return fmt.Errorf("unknown identifier: %q", id)
	}
	r.active = id
	return nil
}

// Active returns the currently active identifier.
func (r *StaticRegistry) Active() string {
	return r.active
}
