package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/dialects/oracle"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

func TestRegistered(t *testing.T) {
	d, ok := dialect.Get("ORACLE")
	require.True(t, ok)
	assert.Same(t, oracle.Oracle, d)
	assert.Contains(t, dialect.List(), "oracle")

	d, err := dialect.Lookup("Oracle")
	require.NoError(t, err)
	assert.Same(t, oracle.Oracle, d)

	_, err = dialect.Lookup("db2")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
	assert.Contains(t, err.Error(), "available: oracle")

	assert.Panics(t, func() { dialect.Register(oracle.Oracle) })
}

func TestTables(t *testing.T) {
	d := oracle.Oracle

	for _, name := range []string{"count", "Max", "SUM"} {
		assert.True(t, d.IsAggregate(name), name)
	}
	assert.False(t, d.IsAggregate("listagg"))

	assert.True(t, d.IsDataType("varchar2"))
	assert.True(t, d.IsDataType("BINARY_DOUBLE"))
	assert.False(t, d.IsDataType("emp"))

	assert.True(t, d.IsPseudoColumn("rownum"))
	assert.True(t, d.IsPseudoColumn("SYSDATE"))
	assert.False(t, d.IsPseudoColumn("ename"))

	assert.True(t, d.IsComparison(token.LE))
	assert.False(t, d.IsComparison(token.SAFE_EQ))
}

func TestPrecedenceOrder(t *testing.T) {
	d := oracle.Oracle
	chain := []token.TokenType{token.PIPE, token.CARET, token.AMPERSAND, token.LSHIFT, token.PLUS, token.STAR, token.DSTAR}
	for i := 1; i < len(chain); i++ {
		assert.Less(t, d.Precedence(chain[i-1]), d.Precedence(chain[i]), chain[i].String())
	}
	assert.Equal(t, d.Precedence(token.PLUS), d.Precedence(token.DPIPE))
	assert.Equal(t, d.Precedence(token.STAR), d.Precedence(token.MOD))
	assert.Equal(t, dialect.PrecedenceNone, d.Precedence(token.EQ))
}

func TestExtend(t *testing.T) {
	d := dialect.Extend(oracle.Oracle, "oracle-lite").
		Aggregates("LISTAGG").
		RemoveInfix(token.DSTAR).
		Build()

	assert.True(t, d.IsAggregate("listagg"))
	assert.True(t, d.IsAggregate("count"))
	assert.Equal(t, dialect.PrecedenceNone, d.Precedence(token.DSTAR))
	assert.NotEqual(t, dialect.PrecedenceNone, oracle.Oracle.Precedence(token.DSTAR))
	assert.False(t, oracle.Oracle.IsAggregate("listagg"))
}

func TestQuoteIdentifierIfNeeded(t *testing.T) {
	d := oracle.Oracle
	tests := []struct{ in, want string }{
		{"EMP", "EMP"},
		{"EMP_1$", "EMP_1$"},
		{"emp", `"emp"`},
		{"SELECT", `"SELECT"`},
		{"1X", `"1X"`},
		{`A"B`, `"A""B"`},
		{"", `""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.QuoteIdentifierIfNeeded(tt.in), tt.in)
	}
	assert.Equal(t, []string{"AVG", "COUNT", "MAX", "MIN", "SUM"}, d.Aggregates())
}
