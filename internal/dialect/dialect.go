// Package dialect holds database-family-specific identifier quoting rules.
// Dialects are pure string functions; a registry maps a name key to its
// implementation and is read-only after construction, so it is safe to share
// across concurrent generation requests.
package dialect

import (
	"sort"

	"github.com/tableforge/tableforge/internal/model"
)

// Dialect wraps identifiers according to one database family's quoting rules.
type Dialect interface {
	// Name returns the registry key for this dialect.
	Name() string
	// QuoteIdentifier wraps a table or column name in the dialect's
	// identifier quotes, escaping embedded quote characters.
	QuoteIdentifier(name string) string
}

// Registry resolves dialect names to implementations.
type Registry struct {
	dialects map[string]Dialect
}

// NewRegistry builds a registry over the given dialects. The default registry
// contains only the MySQL dialect; additional families register here.
func NewRegistry(dialects ...Dialect) *Registry {
	m := make(map[string]Dialect, len(dialects))
	for _, d := range dialects {
		m[d.Name()] = d
	}
	return &Registry{dialects: m}
}

// DefaultRegistry returns a registry with every built-in dialect.
func DefaultRegistry() *Registry {
	return NewRegistry(MySQL{})
}

// Resolve returns the dialect registered under name. An unknown name is a
// configuration error, never a silent fallback.
func (r *Registry) Resolve(name string) (Dialect, error) {
	d, ok := r.dialects[name]
	if !ok {
		return nil, model.ConfigurationError("unknown sql dialect %q", name)
	}
	return d, nil
}

// Names returns the registered dialect names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
