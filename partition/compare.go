package partition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/compute"

	"github.com/hugr-lab/laketable-go/expr"
	"github.com/hugr-lab/laketable-go/internal/recovery"
)

// kernelNames maps each operator to its comparison function in the compute
// registry.
var kernelNames = map[expr.Operator]string{
	expr.Eq:  "equal",
	expr.Ne:  "not_equal",
	expr.Lt:  "less",
	expr.Lte: "less_equal",
	expr.Gt:  "greater",
	expr.Gte: "greater_equal",
}

// compareValues evaluates "left op right" through the compute registry and
// returns the verdict at row 0. Both arrays must hold exactly one non-null
// element of the same type. Kernel panics come back as errors.
func compareValues(ctx context.Context, op expr.Operator, left, right arrow.Array) (bool, error) {
	name, ok := kernelNames[op]
	if !ok {
		return false, fmt.Errorf("%w: %s", expr.ErrUnsupportedOperator, op)
	}

	return recovery.RecoverToValue(slog.Default(), "ComparePartitionValue", func() (bool, error) {
		lhs, rhs := compute.NewDatum(left), compute.NewDatum(right)
		defer lhs.Release()
		defer rhs.Release()

		out, err := compute.CallFunction(ctx, name, nil, lhs, rhs)
		if err != nil {
			return false, fmt.Errorf("comparison %s on %s: %w", name, left.DataType(), err)
		}
		defer out.Release()

		ad, ok := out.(*compute.ArrayDatum)
		if !ok {
			return false, fmt.Errorf("comparison %s returned a %s datum, want array", name, out.Kind())
		}
		arr := ad.MakeArray()
		defer arr.Release()

		verdict, ok := arr.(*array.Boolean)
		if !ok {
			return false, fmt.Errorf("comparison %s returned %s, want boolean", name, arr.DataType())
		}
		if verdict.IsNull(0) {
			return false, fmt.Errorf("comparison %s on %s produced a null verdict", name, left.DataType())
		}
		return verdict.Value(0), nil
	})
}
