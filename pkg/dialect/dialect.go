// Package dialect holds the data tables the parser consults for
// dialect-specific decisions: aggregate function names, data type names,
// pseudo columns and binary operator precedence.
//
// A Dialect is built once with the fluent Builder and never mutated, so a
// single value is shared by every parse. Concrete dialects are registered
// from pkg/dialects/*/ packages.
package dialect

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/oraparse/pkg/token"
)

// Binary operator precedence levels for bit expressions, loosest first.
const (
	PrecedenceNone           = iota
	PrecedenceBitOr          // |
	PrecedenceBitXor         // ^
	PrecedenceBitAnd         // &
	PrecedenceShift          // << >>
	PrecedenceAdditive       // + - ||
	PrecedenceMultiplicative // * / % MOD
	PrecedencePower          // **
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name string

	aggregates    map[string]struct{}
	dataTypes     map[string]struct{}
	pseudoColumns map[string]struct{}
	comparisons   map[token.TokenType]struct{}
	precedence    map[token.TokenType]int
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// NormalizeName folds an unquoted name the way the dialect resolves it.
func (d *Dialect) NormalizeName(name string) string {
	return strings.ToUpper(name)
}

// IsAggregate returns true if the function is an aggregate function.
func (d *Dialect) IsAggregate(name string) bool {
	_, ok := d.aggregates[d.NormalizeName(name)]
	return ok
}

// IsDataType returns true if the name starts a data type.
func (d *Dialect) IsDataType(name string) bool {
	_, ok := d.dataTypes[d.NormalizeName(name)]
	return ok
}

// IsPseudoColumn returns true if the name is a pseudo column such as ROWNUM.
func (d *Dialect) IsPseudoColumn(name string) bool {
	_, ok := d.pseudoColumns[d.NormalizeName(name)]
	return ok
}

// IsComparison returns true if t is a comparison operator.
func (d *Dialect) IsComparison(t token.TokenType) bool {
	_, ok := d.comparisons[t]
	return ok
}

// Precedence returns the precedence level for a binary operator token.
// Returns PrecedenceNone if the token is not a binary operator.
func (d *Dialect) Precedence(t token.TokenType) int {
	if p, ok := d.precedence[t]; ok {
		return p
	}
	return PrecedenceNone
}

// Aggregates returns the aggregate function names, sorted.
func (d *Dialect) Aggregates() []string {
	return sortedKeys(d.aggregates)
}

// DataTypes returns the data type names, sorted.
func (d *Dialect) DataTypes() []string {
	return sortedKeys(d.dataTypes)
}

// PseudoColumns returns the pseudo column names, sorted.
func (d *Dialect) PseudoColumns() []string {
	return sortedKeys(d.pseudoColumns)
}

// QuoteIdentifier quotes a name with double quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteIdentifierIfNeeded quotes a name only if it would not survive as a
// bare identifier: reserved words, names that are not already upper case,
// and names with characters outside the identifier set.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if name == "" || token.IsReservedWord(name) || name != d.NormalizeName(name) {
		return d.QuoteIdentifier(name)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		ok := c >= 'A' && c <= 'Z' || c == '_' || i > 0 && (c >= '0' && c <= '9' || c == '$' || c == '#')
		if !ok {
			return d.QuoteIdentifier(name)
		}
	}
	return name
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name:          name,
			aggregates:    make(map[string]struct{}),
			dataTypes:     make(map[string]struct{}),
			pseudoColumns: make(map[string]struct{}),
			comparisons:   make(map[token.TokenType]struct{}),
			precedence:    make(map[token.TokenType]int),
		},
	}
}

// Extend starts a builder from a copy of an existing dialect.
func Extend(base *Dialect, name string) *Builder {
	b := NewDialect(name)
	for k := range base.aggregates {
		b.dialect.aggregates[k] = struct{}{}
	}
	for k := range base.dataTypes {
		b.dialect.dataTypes[k] = struct{}{}
	}
	for k := range base.pseudoColumns {
		b.dialect.pseudoColumns[k] = struct{}{}
	}
	for k := range base.comparisons {
		b.dialect.comparisons[k] = struct{}{}
	}
	for k, v := range base.precedence {
		b.dialect.precedence[k] = v
	}
	return b
}

// Aggregates adds aggregate functions to the dialect.
func (b *Builder) Aggregates(funcs ...string) *Builder {
	for _, f := range funcs {
		b.dialect.aggregates[b.dialect.NormalizeName(f)] = struct{}{}
	}
	return b
}

// DataTypes adds the leading word of data type names.
func (b *Builder) DataTypes(types ...string) *Builder {
	for _, t := range types {
		b.dialect.dataTypes[b.dialect.NormalizeName(t)] = struct{}{}
	}
	return b
}

// PseudoColumns adds pseudo column names.
func (b *Builder) PseudoColumns(names ...string) *Builder {
	for _, n := range names {
		b.dialect.pseudoColumns[b.dialect.NormalizeName(n)] = struct{}{}
	}
	return b
}

// Comparisons registers comparison operator tokens.
func (b *Builder) Comparisons(types ...token.TokenType) *Builder {
	for _, t := range types {
		b.dialect.comparisons[t] = struct{}{}
	}
	return b
}

// AddInfix registers a binary operator with precedence.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	return b
}

// RemoveInfix drops a binary operator.
func (b *Builder) RemoveInfix(t token.TokenType) *Builder {
	delete(b.dialect.precedence, t)
	return b
}

// Build returns a snapshot of the dialect; later builder calls do not
// change it.
func (b *Builder) Build() *Dialect {
	return Extend(b.dialect, b.dialect.Name).dialect
}
