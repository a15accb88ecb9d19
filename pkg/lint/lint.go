// Package lint runs static checks over parse trees.
//
// Rules are plain RuleDef values registered from init(). An Analyzer walks
// a statement tree once per enabled rule and collects the diagnostics,
// applying the severity overrides from its Config.
package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/token"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Severity ranks findings. Lower values are more severe, so sorting by
// Severity puts errors first.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

var severityNames = [...]string{"error", "warning", "info", "hint"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	sev, ok := ParseSeverity(string(b))
	if !ok {
		return fmt.Errorf("unknown severity %q", b)
	}
	*s = sev
	return nil
}

// ParseSeverity maps a case-insensitive name to its Severity. For an
// unknown name it returns SeverityWarning and false.
func ParseSeverity(name string) (Severity, bool) {
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			return Severity(i), true
		}
	}
	return SeverityWarning, false
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule" yaml:"rule"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
	Pos      token.Position `json:"-" yaml:"-"`
	EndPos   token.Position `json:"-" yaml:"-"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", d.Pos, d.Severity, d.RuleID, d.Message)
}

// CheckFunc inspects one node and reports findings for it. It is called
// for every rule node of the tree in pre-order.
type CheckFunc func(n *tree.Node) []string

// RuleDef describes a single rule.
type RuleDef struct {
	ID          string
	Name        string
	Group       string
	Description string
	Severity    Severity
	Check       CheckFunc
}

func (r RuleDef) diagnostic(n *tree.Node, msg string) Diagnostic {
	return Diagnostic{
		RuleID:   r.ID,
		Severity: r.Severity,
		Message:  msg,
		Pos:      n.Span.Start,
		EndPos:   n.Span.End,
	}
}
