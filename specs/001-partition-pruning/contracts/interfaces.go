// Package contracts defines the public interfaces for partition pruning.
// This file documents the API contract across the expr, partition, and
// root laketable packages.
//
// NOTE: This is a design document, not actual code. The implementation
// lives in the expr/, partition/, and root packages.
package contracts

// =============================================================================
// FILTER VOCABULARY (expr package)
// =============================================================================

// Operator is a binary comparison operator. The vocabulary is closed:
// =, !=, <, <=, >, >=. Formatting an operator and parsing the result
// round-trips.
//
// type Operator int
//
// const (
//     Eq Operator = iota
//     Ne
//     Lt
//     Lte
//     Gt
//     Gte
// )
//
// func ParseOperator(token string) (Operator, error)
// func (o Operator) String() string
// func (o Operator) Valid() bool
// func Operators() []Operator

// Filter is an untyped comparison predicate. Filter sets are flat
// conjunctions: no OR, NOT, or nesting.
//
// Example:
//
//	f, err := expr.NewFilter("date", ">", "2023-01-01")
//	if err != nil {
//	    // Unknown operator token
//	    return err
//	}
//
// type Filter struct {
//     FieldName string
//     Operator  Operator
//     Value     string // uninterpreted literal
// }
//
// func NewFilter(field, operator, value string) (Filter, error)

// =============================================================================
// PRUNING API (partition package)
// =============================================================================

// NewPruner compiles AND-combined filters against the partition schema and
// the table's path layout configuration.
//
// Contract:
//   - Compilation is all-or-nothing: any filter that cannot bind aborts.
//   - A filter field missing from the schema wraps ErrFieldNotFound.
//   - A literal that does not cast to the field's type wraps
//     ErrUnsupportedCast. Casts are strict: no partial parses, no silent
//     coercions.
//   - Layout flags come from config.KeyHiveStylePartitioning and
//     config.KeyURLEncodePartitionPath; a set but unparseable flag aborts.
//   - The schema is shared, never copied or mutated.
//
// func NewPruner(andFilters []expr.Filter, schema *arrow.Schema, conf config.Configs) (*Pruner, error)

// ShouldInclude reports whether the partition at path can satisfy every
// filter.
//
// Contract:
//   - Never returns an error and never panics. Undecomposable paths,
//     uncastable segment values, and failed comparisons keep the partition
//     (fail open).
//   - Pure: same pruner and path always produce the same verdict.
//   - Safe for concurrent callers sharing the *Pruner.
//   - Segment count must equal the schema field count; segments bind to
//     fields by position. Hive-style segments must name the field at their
//     position.
//   - With URL encoding enabled the whole path is percent-decoded before
//     splitting on "/".
//
// func (p *Pruner) ShouldInclude(path string) bool

// ValidatePath surfaces the decomposition errors ShouldInclude swallows,
// for diagnostics and layout verification.
//
// func (p *Pruner) ValidatePath(path string) error

// Empty returns a pruner with no filters that includes every partition.
// IsEmpty lets callers skip evaluation when no filters apply.
//
// func Empty() *Pruner
// func (p *Pruner) IsEmpty() bool
// func (p *Pruner) Schema() *arrow.Schema

// =============================================================================
// TABLE FACADE (root package)
// =============================================================================

// Table glues a schema and a property bag to the pruning layer.
//
// type Table struct {
//     Schema  *arrow.Schema  // REQUIRED
//     Configs config.Configs // OPTIONAL
// }
//
// func (t Table) Validate() error
// func (t Table) PartitionSchema() (*arrow.Schema, error) // config order
// func (t Table) NewPruner(filters ...expr.Filter) (*partition.Pruner, error)

// PartitionLister is the storage-side collaborator that enumerates
// partition paths. Implementations MUST be goroutine-safe and respect
// context cancellation.
//
// type PartitionLister interface {
//     PartitionPaths(ctx context.Context) ([]string, error)
// }
//
// func (t Table) PrunedPartitions(ctx context.Context, lister PartitionLister, filters ...expr.Filter) ([]string, error)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// All sentinels are errors.Is-checkable through wrap chains:
//
//   - expr.ErrUnsupportedOperator: unknown operator token
//   - partition.ErrInvalidPartitionPath: path does not decompose
//   - partition.ErrFieldNotFound: filter field outside the partition
//     schema (wraps ErrInvalidPartitionPath)
//   - partition.ErrUnsupportedCast: literal or segment does not cast
//   - config.ErrInvalidValue: set property does not parse
//   - laketable.ErrInvalidTable: table definition rejected
//
// Construction errors surface; evaluation errors never do (fail open).
