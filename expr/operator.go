// Package expr defines the filter expression vocabulary shared by scan
// planning and partition pruning.
//
// Expressions at this layer are deliberately untyped: a Filter carries a
// field name, a comparison Operator, and the literal value as text. Binding
// a filter to a concrete column type happens later, against a table schema
// (see the partition package). This keeps the vocabulary independent of any
// engine's value representation.
//
// Only binary comparisons combined with AND are supported. There is no OR,
// NOT, or nesting: a filter set is a flat conjunction.
package expr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOperator is returned when an operator token is not part of
// the supported vocabulary.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// Operator is a binary comparison operator in a filter expression.
type Operator int

const (
	Eq Operator = iota // =
	Ne                 // !=
	Lt                 // <
	Lte                // <=
	Gt                 // >
	Gte                // >=
)

// operatorTokens maps each Operator to its canonical token. It is the single
// source of truth for both parsing and formatting.
var operatorTokens = [...]string{
	Eq:  "=",
	Ne:  "!=",
	Lt:  "<",
	Lte: "<=",
	Gt:  ">",
	Gte: ">=",
}

// ParseOperator converts an operator token into an Operator. Matching is
// case-insensitive. Unknown tokens return an error wrapping
// ErrUnsupportedOperator.
func ParseOperator(token string) (Operator, error) {
	for op, tok := range operatorTokens {
		if strings.EqualFold(token, tok) {
			return Operator(op), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, token)
}

// String returns the canonical token for the operator, so that formatting an
// operator and parsing it back round-trips.
func (o Operator) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorTokens[o]
}

// Valid reports whether o is one of the defined operators.
func (o Operator) Valid() bool {
	return o >= Eq && o <= Gte
}

// Operators returns all supported operators in declaration order.
func Operators() []Operator {
	ops := make([]Operator, len(operatorTokens))
	for i := range operatorTokens {
		ops[i] = Operator(i)
	}
	return ops
}
