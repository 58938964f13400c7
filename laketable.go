package laketable

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/laketable-go/config"
	"github.com/hugr-lab/laketable-go/expr"
	"github.com/hugr-lab/laketable-go/partition"
)

// Table describes a lakehouse table to the pruning layer.
type Table struct {
	// Schema is the table's Arrow schema and must cover every partition
	// column named in Configs.
	// REQUIRED: MUST NOT be nil.
	Schema *arrow.Schema

	// Configs carries the table properties, including the partition column
	// list (config.KeyPartitionFields) and the path layout flags.
	// OPTIONAL: The zero bag describes an unpartitioned table with the
	// default layout.
	Configs config.Configs
}

// Standard errors returned by the laketable package.
var (
	// ErrInvalidTable indicates Table validation failed.
	ErrInvalidTable = errors.New("invalid table")
)

// Validate checks the table definition: the schema must be present, the
// properties this library understands must parse, and every configured
// partition field must exist in the schema.
func (t Table) Validate() error {
	if t.Schema == nil {
		return fmt.Errorf("%w: schema is required", ErrInvalidTable)
	}
	if err := t.Configs.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	for _, name := range t.Configs.StringSlice(config.KeyPartitionFields) {
		if len(t.Schema.FieldIndices(name)) == 0 {
			return fmt.Errorf("%w: partition field %q not in schema", ErrInvalidTable, name)
		}
	}
	return nil
}

// PartitionSchema projects the partition columns out of the table schema in
// the order declared by config.KeyPartitionFields. That order is the
// partition path segment order. An unpartitioned table yields an empty
// schema.
func (t Table) PartitionSchema() (*arrow.Schema, error) {
	if t.Schema == nil {
		return nil, fmt.Errorf("%w: schema is required", ErrInvalidTable)
	}

	names := t.Configs.StringSlice(config.KeyPartitionFields)
	fields := make([]arrow.Field, 0, len(names))
	for _, name := range names {
		indices := t.Schema.FieldIndices(name)
		if len(indices) == 0 {
			return nil, fmt.Errorf("%w: partition field %q not in schema", ErrInvalidTable, name)
		}
		fields = append(fields, t.Schema.Field(indices[0]))
	}
	return arrow.NewSchema(fields, nil), nil
}

// NewPruner compiles filters against the table's partition schema and
// layout. Filters must reference partition columns only; predicates over
// data columns belong to the scan itself, not to pruning.
func (t Table) NewPruner(filters ...expr.Filter) (*partition.Pruner, error) {
	schema, err := t.PartitionSchema()
	if err != nil {
		return nil, err
	}
	return partition.NewPruner(filters, schema, t.Configs)
}

// PartitionLister enumerates a table's partition paths, relative to the
// table's base path. Implementations typically wrap a storage listing.
// Implementations MUST be goroutine-safe.
type PartitionLister interface {
	// PartitionPaths returns all partition paths of the table.
	// MUST respect context cancellation and deadlines.
	PartitionPaths(ctx context.Context) ([]string, error)
}

// PrunedPartitions lists the table's partitions and drops those the filters
// rule out. With no filters the listing is returned untouched. Filter
// compilation and listing errors are returned; per-path evaluation never
// fails and keeps questionable partitions instead.
func (t Table) PrunedPartitions(ctx context.Context, lister PartitionLister, filters ...expr.Filter) ([]string, error) {
	pruner, err := t.NewPruner(filters...)
	if err != nil {
		return nil, err
	}

	paths, err := lister.PartitionPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}
	if pruner.IsEmpty() {
		return paths, nil
	}

	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if pruner.ShouldInclude(path) {
			kept = append(kept, path)
		}
	}
	slog.Debug("Pruned partitions",
		"table", t.Configs.String(config.KeyTableName, ""),
		"total", len(paths),
		"kept", len(kept),
	)
	return kept, nil
}
