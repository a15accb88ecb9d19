// Package oracle provides the Oracle dialect tables.
package oracle

import (
	"github.com/leapstack-labs/oraparse/pkg/dialect"
	"github.com/leapstack-labs/oraparse/pkg/token"
)

func init() {
	dialect.Register(Oracle)
}

// Oracle is the Oracle Database dialect.
var Oracle = dialect.NewDialect("oracle").
	Aggregates("MAX", "MIN", "SUM", "COUNT", "AVG").
	DataTypes(
		"CHAR", "CHARACTER", "VARCHAR", "VARCHAR2", "NCHAR", "NVARCHAR2",
		"NUMBER", "NUMERIC", "DECIMAL", "DEC", "INTEGER", "INT", "SMALLINT", "BIGINT",
		"FLOAT", "REAL", "DOUBLE", "BINARY_FLOAT", "BINARY_DOUBLE",
		"PLS_INTEGER", "BINARY_INTEGER", "NATURALN", "POSITIVE", "POSITIVEN",
		"SIGNTYPE", "SIMPLE_INTEGER",
		"DATE", "TIMESTAMP", "INTERVAL",
		"LONG", "RAW", "BLOB", "CLOB", "NCLOB", "BFILE",
		"ROWID", "UROWID", "MLSLABEL", "BOOLEAN", "JSON", "XMLTYPE", "TEXT",
	).
	PseudoColumns("ROWNUM", "LEVEL", "ROWID", "SYSDATE", "SYSTIMESTAMP", "USER", "UID").
	Comparisons(token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE).
	AddInfix(token.PIPE, dialect.PrecedenceBitOr).
	AddInfix(token.CARET, dialect.PrecedenceBitXor).
	AddInfix(token.AMPERSAND, dialect.PrecedenceBitAnd).
	AddInfix(token.LSHIFT, dialect.PrecedenceShift).
	AddInfix(token.RSHIFT, dialect.PrecedenceShift).
	AddInfix(token.PLUS, dialect.PrecedenceAdditive).
	AddInfix(token.MINUS, dialect.PrecedenceAdditive).
	AddInfix(token.DPIPE, dialect.PrecedenceAdditive).
	AddInfix(token.STAR, dialect.PrecedenceMultiplicative).
	AddInfix(token.SLASH, dialect.PrecedenceMultiplicative).
	AddInfix(token.PERCENT, dialect.PrecedenceMultiplicative).
	AddInfix(token.MOD, dialect.PrecedenceMultiplicative).
	AddInfix(token.DSTAR, dialect.PrecedencePower).
	Build()
