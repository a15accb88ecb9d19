package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownDialect is returned by Lookup for names nothing registered.
var ErrUnknownDialect = errors.New("unknown dialect")

var registry = struct {
	sync.RWMutex
	byName map[string]*Dialect
}{byName: make(map[string]*Dialect)}

// Register adds d under its lower-cased name. Dialect packages call it
// from init; registering a name twice panics.
func Register(d *Dialect) {
	registry.Lock()
	defer registry.Unlock()
	key := strings.ToLower(d.Name)
	if _, dup := registry.byName[key]; dup {
		panic("dialect: Register called twice for " + key)
	}
	registry.byName[key] = d
}

// Get returns the dialect registered under name, ignoring case.
func Get(name string) (*Dialect, bool) {
	registry.RLock()
	defer registry.RUnlock()
	d, ok := registry.byName[strings.ToLower(name)]
	return d, ok
}

// Lookup is Get with an error naming the registered dialects.
func Lookup(name string) (*Dialect, error) {
	if d, ok := Get(name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDialect, name, strings.Join(List(), ", "))
}

// List returns the registered names, sorted.
func List() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
