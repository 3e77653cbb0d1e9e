// Package types implements backend-agnostic logical types: values are
// declared using generic types (integer, unicode string, interval, ...)
// and resolved on demand into the concrete type a particular database
// backend needs for conversion, comparison, and DDL.
package types

import (
	"fmt"
	"reflect"
	"sync"
)

// BindFunc converts an application value into the form the backend
// driver expects. A nil BindFunc means no conversion is needed.
type BindFunc func(value any) (any, error)

// ResultFunc converts a raw backend value into an application value.
// A nil ResultFunc means no conversion is needed.
type ResultFunc func(value any) (any, error)

// RawKind identifies the backend's own type for a result column, in
// whatever form the backend reports it: a PostgreSQL OID, a SQLite
// declared type, and so on. The core only threads it through to the
// resolved concrete type.
type RawKind = any

// Dialect is the backend context a type resolves against.
type Dialect interface {
	// Family and Version form a stable identity used as the
	// specialization cache key.
	Family() string
	Version() string

	// TypeDescriptor returns the concrete type to use for typ on this
	// backend: either typ itself, meaning no substitution, or a new
	// backend-specific instance.
	TypeDescriptor(typ Type) Type

	// Encoding is the character encoding the backend expects.
	Encoding() string

	SupportsNativeBoolean() bool
	SupportsNativeEnum() bool

	// ReturnsDecodedText reports whether the backend driver already
	// returns text values as strings rather than raw bytes.
	ReturnsDecodedText() bool
}

// Type is the contract every logical type implements. Concrete types
// embed Base, directly or through another concrete type, to pick up
// the default behavior and the specialization cache.
type Type interface {
	fmt.Stringer

	// Class is the static identity of this type in the generic
	// hierarchy.
	Class() *Class

	// Affinity is the generic family this type belongs to for
	// comparison and operator inference purposes.
	Affinity() *Class

	// BindProcessor returns the conversion applied to values headed
	// for the backend, or nil when none is needed.
	BindProcessor(d Dialect) BindFunc

	// ResultProcessor returns the conversion applied to values read
	// from the backend, or nil when none is needed.
	ResultProcessor(d Dialect, raw RawKind) ResultFunc

	CopyValue(v any) any
	CompareValues(x, y any) bool

	// IsMutable reports whether values of this type can change in
	// place, in which case identity alone never proves a value
	// unchanged.
	IsMutable() bool

	impls() *implCache
}

type implKey struct {
	family  string
	version string
}

type implCache struct {
	m sync.Map // implKey -> Type
}

// Base supplies the default type behavior and the per-instance
// specialization cache.
type Base struct {
	class *Class
	cache implCache
}

func MakeBase(class *Class) Base {
	return Base{class: class}
}

func (b *Base) Class() *Class {
	return b.class
}

func (b *Base) Affinity() *Class {
	return b.class.Affinity()
}

func (b *Base) String() string {
	return b.class.Name()
}

func (b *Base) BindProcessor(d Dialect) BindFunc {
	return nil
}

func (b *Base) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	return nil
}

func (b *Base) CopyValue(v any) any {
	return v
}

func (b *Base) CompareValues(x, y any) bool {
	return reflect.DeepEqual(x, y)
}

func (b *Base) IsMutable() bool {
	return false
}

func (b *Base) impls() *implCache {
	return &b.cache
}

// Resolve returns the concrete type to use for typ on dialect d,
// memoized per backend identity. The memoization is deliberately
// lock-free: resolution is a pure function of the type's configuration
// and the backend identity, so concurrent callers racing on a miss
// compute equivalent values and LoadOrStore keeps exactly one.
func Resolve(typ Type, d Dialect) Type {
	key := implKey{family: d.Family(), version: d.Version()}
	cache := typ.impls()
	if v, ok := cache.m.Load(key); ok {
		return v.(Type)
	}
	if dec, ok := typ.(decorated); ok {
		return resolveDecorator(dec, d, key)
	}
	v, _ := cache.m.LoadOrStore(key, d.TypeDescriptor(typ))
	return v.(Type)
}

// Replacement is one entry in a dialect's colspec table: the class of
// the backend-specific type and a constructor that rebuilds a generic
// instance as that type, carrying its configuration across.
type Replacement struct {
	Class *Class
	Adapt func(Type) Type
}

// ColSpecs maps generic type classes to their backend-specific
// replacements.
type ColSpecs map[*Class]Replacement

// Merge returns a copy of cs with overrides applied.
func (cs ColSpecs) Merge(overrides ColSpecs) ColSpecs {
	merged := make(ColSpecs, len(cs)+len(overrides))
	for c, r := range cs {
		merged[c] = r
	}
	for c, r := range overrides {
		merged[c] = r
	}
	return merged
}

// AdaptType substitutes typ through colspecs: the ancestry is searched
// most specific first and the first matching entry wins. When typ is
// already an instance of the matched replacement class it is returned
// unchanged. A type with no entry is also returned unchanged, so a
// backend lacking a native representation still gets a usable opaque
// passthrough.
func AdaptType(typ Type, colspecs ColSpecs) Type {
	for _, c := range typ.Class().Ancestry() {
		r, ok := colspecs[c]
		if !ok {
			continue
		}
		if typ.Class().DescendsFrom(r.Class) {
			return typ
		}
		return r.Adapt(typ)
	}
	return typ
}
