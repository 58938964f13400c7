package partition

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/laketable-go/expr"
)

func testSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "date", Type: arrow.FixedWidthTypes.Date32},
		{Name: "category", Type: arrow.BinaryTypes.String},
		{Name: "count", Type: arrow.PrimitiveTypes.Int32},
	}, nil)
}

func TestNewFilter(t *testing.T) {
	schema := testSchema()

	tests := []struct {
		name    string
		filter  expr.Filter
		wantErr error
	}{
		{
			name:   "date filter",
			filter: expr.Filter{FieldName: "date", Operator: expr.Gt, Value: "2023-01-01"},
		},
		{
			name:   "string filter",
			filter: expr.Filter{FieldName: "category", Operator: expr.Eq, Value: "A"},
		},
		{
			name:   "int filter",
			filter: expr.Filter{FieldName: "count", Operator: expr.Lte, Value: "100"},
		},
		{
			name:    "unknown field",
			filter:  expr.Filter{FieldName: "region", Operator: expr.Eq, Value: "EU"},
			wantErr: ErrFieldNotFound,
		},
		{
			name:    "unknown field is an invalid path error",
			filter:  expr.Filter{FieldName: "region", Operator: expr.Eq, Value: "EU"},
			wantErr: ErrInvalidPartitionPath,
		},
		{
			name:    "uncastable int literal",
			filter:  expr.Filter{FieldName: "count", Operator: expr.Eq, Value: "not_a_number"},
			wantErr: ErrUnsupportedCast,
		},
		{
			name:    "uncastable date literal",
			filter:  expr.Filter{FieldName: "date", Operator: expr.Lt, Value: "03"},
			wantErr: ErrUnsupportedCast,
		},
		{
			name:    "invalid operator",
			filter:  expr.Filter{FieldName: "count", Operator: expr.Operator(99), Value: "1"},
			wantErr: expr.ErrUnsupportedOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFilter(tt.filter, schema)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewFilter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFilter() error = %v", err)
			}
			if got.Field().Name != tt.filter.FieldName {
				t.Errorf("Field().Name = %q, want %q", got.Field().Name, tt.filter.FieldName)
			}
			if got.Operator() != tt.filter.Operator {
				t.Errorf("Operator() = %v, want %v", got.Operator(), tt.filter.Operator)
			}
			if got.value == nil || got.value.Len() != 1 {
				t.Error("bound literal is not a one-element array")
			}
		})
	}
}

func TestNewFilterAllOperators(t *testing.T) {
	schema := testSchema()
	for _, op := range expr.Operators() {
		f, err := NewFilter(expr.Filter{FieldName: "count", Operator: op, Value: "42"}, schema)
		if err != nil {
			t.Errorf("NewFilter(count %s 42) error = %v", op, err)
			continue
		}
		if f.Operator() != op {
			t.Errorf("Operator() = %v, want %v", f.Operator(), op)
		}
	}
}

func TestCastValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		dt      arrow.DataType
		wantErr bool
	}{
		{name: "date", value: "2023-01-01", dt: arrow.FixedWidthTypes.Date32},
		{name: "string", value: "A", dt: arrow.BinaryTypes.String},
		{name: "int", value: "100", dt: arrow.PrimitiveTypes.Int32},
		{name: "negative int", value: "-7", dt: arrow.PrimitiveTypes.Int32},
		{name: "float", value: "1.5", dt: arrow.PrimitiveTypes.Float64},
		{name: "bool", value: "true", dt: arrow.FixedWidthTypes.Boolean},
		{name: "garbage int", value: "ten", dt: arrow.PrimitiveTypes.Int32, wantErr: true},
		{name: "garbage date", value: "yesterday", dt: arrow.FixedWidthTypes.Date32, wantErr: true},
		{name: "empty int", value: "", dt: arrow.PrimitiveTypes.Int32, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := castValue(tt.value, tt.dt)
			if (err != nil) != tt.wantErr {
				t.Errorf("castValue(%q, %s) error = %v, wantErr %v", tt.value, tt.dt, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedCast) {
					t.Errorf("castValue() error = %v, want ErrUnsupportedCast", err)
				}
				return
			}
			defer arr.Release()
			if arr.Len() != 1 {
				t.Errorf("castValue() array length = %d, want 1", arr.Len())
			}
			if !arrow.TypeEqual(arr.DataType(), tt.dt) {
				t.Errorf("castValue() type = %s, want %s", arr.DataType(), tt.dt)
			}
		})
	}
}
