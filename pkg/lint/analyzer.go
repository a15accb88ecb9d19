package lint

import (
	"sort"

	"github.com/leapstack-labs/oraparse/pkg/tree"
)

// Analyzer runs lint rules against parse trees.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs every enabled rule against root. Diagnostics are ordered
// by position, then rule ID.
func (a *Analyzer) Analyze(root *tree.Node) []Diagnostic {
	if root == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) || rule.Check == nil {
			continue
		}
		for _, n := range root.Find(func(n *tree.Node) bool { return n.Kind.IsRule() }) {
			for _, msg := range rule.Check(n) {
				d := rule.diagnostic(n, msg)
				d.Severity = a.config.GetSeverity(rule.ID, d.Severity)
				diagnostics = append(diagnostics, d)
			}
		}
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Pos.Offset != diagnostics[j].Pos.Offset {
			return diagnostics[i].Pos.Offset < diagnostics[j].Pos.Offset
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})
	return diagnostics
}
