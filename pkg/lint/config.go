package lint

import "fmt"

// Config switches rules off and overrides their severities. The zero
// value and a nil *Config run every rule at its default severity.
type Config struct {
	disabled map[string]struct{}
	severity  map[string]Severity
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{disabled: map[string]struct{}{}, severity: map[string]Severity{}}
}

// ParseConfig builds a Config from the lint section of the config
// file. Rule IDs must be registered and severities must parse.
func ParseConfig(disabled []string, severities map[string]string) (*Config, error) {
	c := NewConfig()
	for _, id := range disabled {
		r, ok := GetByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown lint rule %q", id)
		}
		c.Disable(r.ID)
	}
	for id, name := range severities {
		r, ok := GetByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown lint rule %q", id)
		}
		sev, ok := ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("lint rule %s: unknown severity %q", r.ID, name)
		}
		c.SetSeverity(r.ID, sev)
	}
	return c, nil
}

// IsDisabled reports whether ruleID is switched off.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	_, off := c.disabled[ruleID]
	return off
}

// GetSeverity returns the override for ruleID, or def.
func (c *Config) GetSeverity(ruleID string, def Severity) Severity {
	if c == nil {
		return def
	}
	if sev, ok := c.severity[ruleID]; ok {
		return sev
	}
	return def
}

// Disable switches ruleID off.
func (c *Config) Disable(ruleID string) *Config {
	if c.disabled == nil {
		c.disabled = map[string]struct{}{}
	}
	c.disabled[ruleID] = struct{}{}
	return c
}

// SetSeverity reports ruleID findings at sev.
func (c *Config) SetSeverity(ruleID string, sev Severity) *Config {
	if c.severity == nil {
		c.severity = map[string]Severity{}
	}
	c.severity[ruleID] = sev
	return c
}
