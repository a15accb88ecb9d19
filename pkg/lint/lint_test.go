package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/lint"
	"github.com/leapstack-labs/oraparse/pkg/parser"
	"github.com/leapstack-labs/oraparse/pkg/tree"
)

func analyze(t *testing.T, sql string, cfg *lint.Config) []lint.Diagnostic {
	t.Helper()
	res, err := parser.Parse(sql, tree.Select)
	require.NoError(t, err)
	return lint.NewAnalyzer(cfg).Analyze(res.Root)
}

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, 0, len(diags))
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	return ids
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{"clean", "SELECT a, b FROM t WHERE a IS NULL", []string{}},
		{"distinct with group by", "SELECT DISTINCT a FROM t GROUP BY a", []string{"AM01"}},
		{"all with group by", "SELECT ALL a FROM t GROUP BY a", []string{}},
		{"equals null", "SELECT a FROM t WHERE a = NULL", []string{"CV01"}},
		{"null on the left", "SELECT a FROM t WHERE NULL <> a", []string{"CV01"}},
		{"not in subquery", "SELECT a FROM t WHERE a NOT IN (SELECT b FROM u)", []string{"AM02"}},
		{"not in list", "SELECT a FROM t WHERE a NOT IN (1, 2)", []string{}},
		{"select star", "SELECT * FROM t", []string{"ST01"}},
		{"qualified star", "SELECT t.* FROM t", []string{"ST01"}},
		{"outer join marker", "SELECT a FROM t, u WHERE t.id = u.id(+)", []string{"OR01"}},
		{"rownum greater", "SELECT a FROM t WHERE ROWNUM > 1", []string{"OR02"}},
		{"rownum equals two", "SELECT a FROM t WHERE ROWNUM = 2", []string{"OR02"}},
		{"rownum limit", "SELECT a FROM t WHERE ROWNUM <= 10", []string{}},
		{"rownum first row", "SELECT a FROM t WHERE ROWNUM = 1", []string{}},
		{"ordered by position", "SELECT * FROM t WHERE a = NULL", []string{"ST01", "CV01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ruleIDs(analyze(t, tt.sql, nil)))
		})
	}
}

func TestDiagnosticPosition(t *testing.T) {
	diags := analyze(t, "SELECT a\nFROM t\nWHERE a = NULL", nil)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, 3, d.Pos.Line)
	assert.Equal(t, 7, d.Pos.Column)
	assert.Equal(t, lint.SeverityError, d.Severity)
	assert.Contains(t, d.Message, "IS NULL")
	assert.Equal(t, "3:7: error [CV01] "+d.Message, d.String())
}

func TestConfig(t *testing.T) {
	sql := "SELECT * FROM t WHERE a = NULL"

	cfg := lint.NewConfig().Disable("ST01").SetSeverity("CV01", lint.SeverityHint)
	diags := analyze(t, sql, cfg)
	require.Len(t, diags, 1)
	assert.Equal(t, "CV01", diags[0].RuleID)
	assert.Equal(t, lint.SeverityHint, diags[0].Severity)

	parsed, err := lint.ParseConfig([]string{"CV01"}, map[string]string{"ST01": "error"})
	require.NoError(t, err)
	diags = analyze(t, sql, parsed)
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)

	_, err = lint.ParseConfig([]string{"XX99"}, nil)
	require.ErrorContains(t, err, "unknown lint rule")
	_, err = lint.ParseConfig(nil, map[string]string{"CV01": "fatal"})
	require.ErrorContains(t, err, "unknown severity")
}

func TestRegistry(t *testing.T) {
	all := lint.GetAll()
	require.Len(t, all, 6)
	assert.Equal(t, "AM01", all[0].ID)

	rule, ok := lint.GetByID("OR02")
	require.True(t, ok)
	assert.Equal(t, "oracle.rownum_comparison", rule.Name)

	assert.Len(t, lint.GetByGroup("oracle"), 2)
	assert.Empty(t, lint.GetByGroup("missing"))

	_, ok = lint.GetByID("or02")
	assert.True(t, ok)
	assert.Panics(t, func() { lint.Register(rule) })
	assert.Panics(t, func() { lint.Register(lint.RuleDef{ID: "XX01"}) })
	require.Len(t, lint.GetAll(), 6)

	var zero lint.Config
	assert.False(t, zero.IsDisabled("CV01"))
	zero.Disable("CV01")
	assert.True(t, zero.IsDisabled("CV01"))
}

func TestSeverity(t *testing.T) {
	for _, s := range []lint.Severity{lint.SeverityError, lint.SeverityWarning, lint.SeverityInfo, lint.SeverityHint} {
		got, ok := lint.ParseSeverity(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	got, ok := lint.ParseSeverity("loud")
	assert.False(t, ok)
	assert.Equal(t, lint.SeverityWarning, got)
	assert.Equal(t, "unknown", lint.Severity(9).String())
}

func TestAnalyzeNil(t *testing.T) {
	assert.Nil(t, lint.NewAnalyzer(nil).Analyze(nil))
}
