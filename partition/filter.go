package partition

import (
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"

	"github.com/hugr-lab/laketable-go/expr"
	"github.com/hugr-lab/laketable-go/internal/recovery"
)

// Filter is a predicate bound to one partition column: the schema field,
// the comparison operator, and the literal already cast to the field's type
// as a one-element array. Immutable after construction.
type Filter struct {
	field arrow.Field
	op    expr.Operator
	value arrow.Array
}

// NewFilter binds f to the partition schema. The named field must exist in
// the schema and the literal must cast losslessly to the field's type;
// either failure aborts the bind.
func NewFilter(f expr.Filter, schema *arrow.Schema) (Filter, error) {
	if !f.Operator.Valid() {
		return Filter{}, fmt.Errorf("%w: %s", expr.ErrUnsupportedOperator, f.Operator)
	}

	indices := schema.FieldIndices(f.FieldName)
	if len(indices) == 0 {
		return Filter{}, fmt.Errorf("%w: %q", ErrFieldNotFound, f.FieldName)
	}
	field := schema.Field(indices[0])

	value, err := castValue(f.Value, field.Type)
	if err != nil {
		return Filter{}, fmt.Errorf("filter %q: %w", f, err)
	}

	return Filter{field: field, op: f.Operator, value: value}, nil
}

// Field returns the partition schema field the filter is bound to.
func (f Filter) Field() arrow.Field {
	return f.field
}

// Operator returns the filter's comparison operator.
func (f Filter) Operator() expr.Operator {
	return f.op
}

// castValue converts a textual partition value into a one-element array of
// type dt. The conversion is strict: a value that does not fully parse as
// dt is an error, never a silent coercion. Errors wrap ErrUnsupportedCast.
func castValue(value string, dt arrow.DataType) (arrow.Array, error) {
	arr, err := recovery.RecoverToValue(slog.Default(), "CastPartitionValue", func() (arrow.Array, error) {
		sc, err := scalar.ParseScalar(dt, value)
		if err != nil {
			return nil, err
		}
		return scalar.MakeArrayFromScalar(sc, 1, memory.DefaultAllocator)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q as %s: %v", ErrUnsupportedCast, value, dt, err)
	}
	return arr, nil
}
