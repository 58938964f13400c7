package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPartitionPath is returned when a partition path cannot be
	// decomposed against the partition schema and layout.
	ErrInvalidPartitionPath = errors.New("invalid partition path")

	// ErrFieldNotFound is returned when a filter names a column that is not
	// part of the partition schema. It wraps ErrInvalidPartitionPath: a
	// filter that cannot bind describes paths that cannot exist.
	ErrFieldNotFound = fmt.Errorf("%w: field not in partition schema", ErrInvalidPartitionPath)

	// ErrUnsupportedCast is returned when a textual value cannot be
	// converted into a partition column's type.
	ErrUnsupportedCast = errors.New("unsupported partition value cast")
)
