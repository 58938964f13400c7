package expr

import (
	"errors"
	"testing"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		operator string
		value    string
		want     Filter
		wantErr  bool
	}{
		{
			name:     "equality",
			field:    "category",
			operator: "=",
			value:    "A",
			want:     Filter{FieldName: "category", Operator: Eq, Value: "A"},
		},
		{
			name:     "range",
			field:    "date",
			operator: ">",
			value:    "2023-01-01",
			want:     Filter{FieldName: "date", Operator: Gt, Value: "2023-01-01"},
		},
		{
			name:     "unknown operator",
			field:    "category",
			operator: "~",
			value:    "A",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFilter(tt.field, tt.operator, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFilter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedOperator) {
					t.Errorf("NewFilter() error = %v, want ErrUnsupportedOperator", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("NewFilter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	f := Filter{FieldName: "count", Operator: Lte, Value: "100"}
	if got, want := f.String(), "count <= 100"; got != want {
		t.Errorf("Filter.String() = %q, want %q", got, want)
	}
}
