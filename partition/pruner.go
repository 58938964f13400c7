// Package partition decides which partitions of a lakehouse table a query
// must scan.
//
// A Pruner is built once per query from AND-combined filters, the table's
// partition schema, and the table's path layout configuration, then asked
// once per candidate partition whether that partition can satisfy every
// filter. Evaluation is fail open: a path that cannot be parsed or compared
// is always included, so an evaluation error can cost scan work but never
// drop data.
//
// Partition paths are the directory paths relative to the table's base
// path, one segment per partition column in schema order. With hive-style
// layout each segment is "name=value"; otherwise a segment is the bare
// value. Paths may additionally be percent-encoded as a whole.
package partition

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/laketable-go/config"
	"github.com/hugr-lab/laketable-go/expr"
)

// Pruner answers, for one query, whether a partition path can satisfy every
// filter. Immutable after construction and safe for concurrent use by any
// number of goroutines sharing the same pointer.
type Pruner struct {
	schema     *arrow.Schema
	hiveStyle  bool
	urlEncoded bool
	filters    []Filter
}

// NewPruner compiles andFilters against the partition schema, reading the
// path layout from the table configuration. Compilation is all-or-nothing:
// the first filter that fails to bind aborts construction, as does an
// unparseable layout flag.
func NewPruner(andFilters []expr.Filter, schema *arrow.Schema, conf config.Configs) (*Pruner, error) {
	hive, err := conf.Bool(config.KeyHiveStylePartitioning, false)
	if err != nil {
		return nil, err
	}
	encoded, err := conf.Bool(config.KeyURLEncodePartitionPath, false)
	if err != nil {
		return nil, err
	}

	filters := make([]Filter, 0, len(andFilters))
	for _, f := range andFilters {
		bound, err := NewFilter(f, schema)
		if err != nil {
			return nil, err
		}
		filters = append(filters, bound)
	}

	return &Pruner{
		schema:     schema,
		hiveStyle:  hive,
		urlEncoded: encoded,
		filters:    filters,
	}, nil
}

// Empty returns a pruner with no filters and an empty partition schema.
// It includes every partition.
func Empty() *Pruner {
	return &Pruner{schema: arrow.NewSchema(nil, nil)}
}

// IsEmpty reports whether the pruner has no filters to apply. Callers can
// skip per-partition evaluation entirely when true.
func (p *Pruner) IsEmpty() bool {
	return len(p.filters) == 0
}

// Schema returns the partition schema the pruner is bound to. The schema is
// shared, not copied; it must not be mutated.
func (p *Pruner) Schema() *arrow.Schema {
	return p.schema
}

// ShouldInclude reports whether the partition at path can satisfy every
// filter. It never fails: paths that cannot be parsed and values that
// cannot be compared keep the partition in the scan.
func (p *Pruner) ShouldInclude(path string) bool {
	segments, err := p.parseSegments(path)
	if err != nil {
		return includeOnError(err, path)
	}
	defer releaseSegments(segments)

	for _, f := range p.filters {
		if !p.filterIncludes(f, segments, path) {
			return false
		}
	}
	return true
}

// ValidatePath checks that path decomposes cleanly against the partition
// schema and layout. ShouldInclude swallows decomposition errors in favor
// of including the partition; ValidatePath surfaces them instead, for
// diagnostics and layout verification.
func (p *Pruner) ValidatePath(path string) error {
	segments, err := p.parseSegments(path)
	if err != nil {
		return err
	}
	releaseSegments(segments)
	return nil
}

// filterIncludes reports the verdict of a single filter over the parsed
// segments.
func (p *Pruner) filterIncludes(f Filter, segments map[string]arrow.Array, path string) bool {
	segment, ok := segments[f.field.Name]
	if !ok {
		// A filter over a field the path does not carry cannot exclude
		// the partition.
		return true
	}

	verdict, err := compareValues(context.Background(), f.op, segment, f.value)
	if err != nil {
		return includeOnError(err, path)
	}
	return verdict
}

// parseSegments decomposes path into typed per-column values keyed by field
// name. The path must have exactly one segment per partition schema field,
// in schema order. Hive-style segments must name the field at their
// position. The caller releases the returned arrays.
func (p *Pruner) parseSegments(path string) (map[string]arrow.Array, error) {
	if p.urlEncoded {
		decoded, err := url.PathUnescape(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPartitionPath, path, err)
		}
		path = decoded
	}

	parts := strings.Split(path, "/")
	if len(parts) != p.schema.NumFields() {
		return nil, fmt.Errorf("%w: want %d segment(s), got %d",
			ErrInvalidPartitionPath, p.schema.NumFields(), len(parts))
	}

	segments := make(map[string]arrow.Array, len(parts))
	for i, part := range parts {
		field := p.schema.Field(i)

		raw := part
		if p.hiveStyle {
			name, value, found := strings.Cut(part, "=")
			if !found {
				releaseSegments(segments)
				return nil, fmt.Errorf("%w: segment %q is not name=value", ErrInvalidPartitionPath, part)
			}
			if name != field.Name {
				releaseSegments(segments)
				return nil, fmt.Errorf("%w: segment %d names %q, schema field is %q",
					ErrInvalidPartitionPath, i, name, field.Name)
			}
			raw = value
		}

		value, err := castValue(raw, field.Type)
		if err != nil {
			releaseSegments(segments)
			return nil, fmt.Errorf("segment %q: %w", field.Name, err)
		}
		segments[field.Name] = value
	}
	return segments, nil
}

func releaseSegments(segments map[string]arrow.Array) {
	for _, arr := range segments {
		arr.Release()
	}
}

// includeOnError is the single fail-open decision point. Every evaluation
// error routes through here: the partition stays in the scan and the cause
// is reported at debug level.
func includeOnError(err error, path string) bool {
	slog.Debug("Including partition after evaluation error",
		"path", path,
		"error", err,
	)
	return true
}
