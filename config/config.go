// Package config provides the typed table property bag consumed by the
// pruning layer.
//
// Properties are plain string key-value pairs as stored in table metadata.
// Typed accessors (Bool, UUID, StringSlice) parse values on read; keys with
// a registered default return that default when unset, while a set but
// unparseable value is an error. Unknown keys are carried untouched, so a
// bag shared with other tooling stays intact.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidValue is returned when a set property cannot be parsed as the
// key's declared type.
var ErrInvalidValue = errors.New("invalid configuration value")

// Key identifies a table property.
type Key string

// Table properties understood by this library.
const (
	// KeyTableName is the human-readable table name.
	KeyTableName Key = "laketable.table.name"

	// KeyTableID is the table's unique identifier, a UUID string.
	KeyTableID Key = "laketable.table.id"

	// KeyBasePath is the root location of the table's data files.
	KeyBasePath Key = "laketable.table.base-path"

	// KeyPartitionFields lists the partition column names, comma separated.
	// Its order defines the order of partition path segments.
	KeyPartitionFields Key = "laketable.partition.fields"

	// KeyHiveStylePartitioning selects name=value partition path segments
	// instead of bare values. Boolean, default false.
	KeyHiveStylePartitioning Key = "laketable.partition.hive-style"

	// KeyURLEncodePartitionPath marks partition paths as percent-encoded.
	// Boolean, default false.
	KeyURLEncodePartitionPath Key = "laketable.partition.url-encode"
)

// Configs is an immutable bag of table properties. The zero value is an
// empty bag where every typed accessor returns its default.
type Configs struct {
	props map[string]string
}

// New copies props into a Configs bag. The input map is not retained.
func New(props map[string]string) Configs {
	m := make(map[string]string, len(props))
	for k, v := range props {
		m[k] = v
	}
	return Configs{props: m}
}

// Len returns the number of set properties.
func (c Configs) Len() int {
	return len(c.props)
}

// Get returns the raw value for key and whether it is set.
func (c Configs) Get(key Key) (string, bool) {
	v, ok := c.props[string(key)]
	return v, ok
}

// String returns the value for key, or def when the key is unset.
func (c Configs) String(key Key, def string) string {
	if v, ok := c.props[string(key)]; ok {
		return v
	}
	return def
}

// Bool returns the value for key parsed as a boolean, or def when the key
// is unset. A set but unparseable value is an error wrapping
// ErrInvalidValue.
func (c Configs) Bool(key Key, def bool) (bool, error) {
	v, ok := c.props[string(key)]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, v)
	}
	return b, nil
}

// UUID returns the value for key parsed as a UUID. Unset and unparseable
// values both wrap ErrInvalidValue.
func (c Configs) UUID(key Key) (uuid.UUID, error) {
	v, ok := c.props[string(key)]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s is not set", ErrInvalidValue, key)
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s=%q is not a UUID", ErrInvalidValue, key, v)
	}
	return id, nil
}

// StringSlice returns the value for key split on commas, with surrounding
// whitespace trimmed and empty entries dropped. An unset or blank key
// returns nil.
func (c Configs) StringSlice(key Key) []string {
	v, ok := c.props[string(key)]
	if !ok {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Validate parses every set property this library understands and returns
// the first error. Unknown keys are ignored.
func (c Configs) Validate() error {
	if _, err := c.Bool(KeyHiveStylePartitioning, false); err != nil {
		return err
	}
	if _, err := c.Bool(KeyURLEncodePartitionPath, false); err != nil {
		return err
	}
	if _, ok := c.Get(KeyTableID); ok {
		if _, err := c.UUID(KeyTableID); err != nil {
			return err
		}
	}
	return nil
}
