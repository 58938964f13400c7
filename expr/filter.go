package expr

import "fmt"

// Filter is a single comparison predicate over one column, with the literal
// kept as unparsed text. Filters in a set are combined with AND.
type Filter struct {
	// FieldName is the column the filter applies to.
	FieldName string

	// Operator is the comparison to perform.
	Operator Operator

	// Value is the comparison literal, uninterpreted. It is cast to the
	// column's type when the filter is bound to a schema.
	Value string
}

// NewFilter builds a Filter from its textual parts, parsing the operator
// token. The field name and value are taken as-is.
func NewFilter(field, operator, value string) (Filter, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return Filter{}, fmt.Errorf("filter on %q: %w", field, err)
	}
	return Filter{FieldName: field, Operator: op, Value: value}, nil
}

// String renders the filter as "field op value".
func (f Filter) String() string {
	return fmt.Sprintf("%s %s %s", f.FieldName, f.Operator, f.Value)
}
