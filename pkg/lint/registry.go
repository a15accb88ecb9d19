package lint

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// rules is filled from init() in rules.go and read-only afterwards,
// apart from tests that register throwaway rules.
var rules = struct {
	sync.RWMutex
	byID map[string]RuleDef
}{byID: map[string]RuleDef{}}

// Register makes rule available to analyzers. A rule without an ID or
// Check, or one whose ID is taken, panics.
func Register(rule RuleDef) {
	if rule.ID == "" || rule.Check == nil {
		panic("lint: Register needs an ID and a Check")
	}
	rules.Lock()
	defer rules.Unlock()
	if _, dup := rules.byID[rule.ID]; dup {
		panic(fmt.Sprintf("lint: rule %s registered twice", rule.ID))
	}
	rules.byID[rule.ID] = rule
}

// GetAll lists the registered rules by ID.
func GetAll() []RuleDef {
	rules.RLock()
	out := make([]RuleDef, 0, len(rules.byID))
	for _, r := range rules.byID {
		out = append(out, r)
	}
	rules.RUnlock()
	slices.SortFunc(out, func(a, b RuleDef) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// GetByID finds a rule; IDs are matched case-insensitively.
func GetByID(id string) (RuleDef, bool) {
	rules.RLock()
	defer rules.RUnlock()
	r, ok := rules.byID[strings.ToUpper(id)]
	return r, ok
}

// GetByGroup lists the rules of one group by ID.
func GetByGroup(group string) []RuleDef {
	return slices.DeleteFunc(GetAll(), func(r RuleDef) bool { return r.Group != group })
}
