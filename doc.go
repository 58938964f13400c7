// Package laketable provides partition pruning for lakehouse tables whose
// partitions are identified by directory paths.
//
// The laketable package decides which partitions a query must scan by:
//   - Binding untyped column filters to the table's Arrow partition schema
//   - Decomposing partition paths per the table's configured layout
//   - Comparing typed values through Arrow compute kernels
//   - Failing open, so pruning errors cost scan work but never drop data
//
// # Quick Start
//
// Prune partition paths against a filter set in a few lines:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/apache/arrow-go/v18/arrow"
//
//	    "github.com/hugr-lab/laketable-go"
//	    "github.com/hugr-lab/laketable-go/config"
//	    "github.com/hugr-lab/laketable-go/expr"
//	)
//
//	func main() {
//	    table := laketable.Table{
//	        Schema: arrow.NewSchema([]arrow.Field{
//	            {Name: "date", Type: arrow.FixedWidthTypes.Date32},
//	            {Name: "category", Type: arrow.BinaryTypes.String},
//	            {Name: "count", Type: arrow.PrimitiveTypes.Int32},
//	        }, nil),
//	        Configs: config.New(map[string]string{
//	            "laketable.partition.fields":     "date,category,count",
//	            "laketable.partition.hive-style": "true",
//	        }),
//	    }
//
//	    afterNewYear, _ := expr.NewFilter("date", ">", "2023-01-01")
//	    pruner, _ := table.NewPruner(afterNewYear)
//
//	    for _, path := range []string{
//	        "date=2023-02-01/category=A/count=10",
//	        "date=2022-12-31/category=B/count=20",
//	    } {
//	        fmt.Println(path, pruner.ShouldInclude(path))
//	    }
//	}
//
// # Architecture
//
// The package splits the problem across three layers:
//
//   - expr: the untyped filter vocabulary (field, operator, literal)
//   - partition: filter binding, path decomposition, typed comparison
//   - config: the table property bag carrying the partition layout
//
// The root package ties them together: Table derives the partition schema
// from the table schema and configuration, builds pruners, and applies them
// to partition listings.
//
// # Partition Path Layouts
//
// A partition path is the directory path relative to the table's base path,
// one segment per partition column, in partition schema order:
//
//	hive-style            date=2023-02-01/category=A/count=10
//	bare values           2023-02-01/A/10
//	percent-encoded       date%3D2023-02-01%2Fcategory%3DA%2Fcount%3D10
//
// The layout is declared in table configuration via
// config.KeyHiveStylePartitioning and config.KeyURLEncodePartitionPath.
//
// # Fail-Open Evaluation
//
// Pruner.ShouldInclude never returns an error. A path that does not match
// the schema, a value that does not cast, or a comparison the kernel
// registry cannot serve all keep the partition in the scan. Construction is
// the opposite: NewPruner rejects filters that cannot bind, so a filter set
// that compiles is known good before the first path is seen. Use
// Pruner.ValidatePath to surface path problems in diagnostics.
//
// # Logging
//
// The package uses log/slog.Default() for all internal logging. Users can
// configure logging by calling slog.SetDefault() before use. Fail-open
// inclusion decisions are reported at debug level.
//
// # Memory Management
//
// Arrow uses manual reference counting. The pruner releases every array it
// creates while parsing paths; arrays held by compiled filters live until
// the pruner is garbage collected.
package laketable
