// Package postgres is the PostgreSQL backend context: native
// booleans, enumerated types, intervals, and uuids, with numerics
// bound as text to avoid float round trips.
package postgres

import (
	log "github.com/sirupsen/logrus"

	"github.com/lib/pq/oid"

	"github.com/tychodb/tycho/dialect"
	"github.com/tychodb/tycho/types"
)

// Native type classes, registered below the generic ones so that
// affinity grouping recognizes them as the same families.
var (
	NumericClass  = types.NewClass("pg numeric", types.NumericClass)
	IntervalClass = types.NewClass("pg interval", types.IntervalClass)
	EnumClass     = types.NewClass("pg enum", types.EnumClass)
	UuidClass     = types.NewClass("pg uuid", types.UuidClass)
)

// Dialect is the PostgreSQL backend context.
type Dialect struct {
	dialect.Dialect

	// WarnUnknownKinds logs a warning whenever an OID cannot be mapped
	// to a logical type; the value always degrades to the null type
	// either way.
	WarnUnknownKinds bool
}

func New(version string) *Dialect {
	return &Dialect{
		Dialect: dialect.Make(dialect.Config{
			Family:        "postgresql",
			Version:       version,
			ColSpecs:      colSpecs,
			NativeBoolean: true,
			NativeEnum:    true,
			DecodedText:   true,
		}),
		WarnUnknownKinds: true,
	}
}

// The Adapt functions substitute only the generic structs they know
// how to copy. A user-defined subtype registered below a generic
// class walks to the same entry; it is returned unchanged rather than
// flattened into the native replacement.
var colSpecs = types.ColSpecs{
	types.NumericClass: {
		Class: NumericClass,
		Adapt: func(t types.Type) types.Type {
			n, ok := t.(*types.Numeric)
			if !ok {
				return t
			}
			return &Numeric{Numeric: types.Numeric{
				Base:      types.MakeBase(NumericClass),
				Precision: n.Precision,
				Scale:     n.Scale,
				AsDecimal: n.AsDecimal,
			}}
		},
	},
	// Float maps to itself so that it never picks up the Numeric
	// substitution above.
	types.FloatClass: {
		Class: types.FloatClass,
		Adapt: func(t types.Type) types.Type { return t },
	},
	types.IntervalClass: {
		Class: IntervalClass,
		Adapt: func(t types.Type) types.Type {
			iv, ok := t.(*types.Interval)
			if !ok || !iv.Native {
				return t
			}
			return NewInterval(iv.SecondPrecision)
		},
	},
	types.EnumClass: {
		Class: EnumClass,
		Adapt: func(t types.Type) types.Type {
			e, ok := t.(*types.Enum)
			if !ok || !e.Native {
				return t
			}
			return newEnum(e)
		},
	},
	types.UuidClass: {
		Class: UuidClass,
		Adapt: func(t types.Type) types.Type {
			u, ok := t.(*types.Uuid)
			if !ok {
				return t
			}
			return &Uuid{Uuid: types.Uuid{
				Base:     types.MakeBase(UuidClass),
				AsString: u.AsString,
			}}
		},
	},
}

// TypeForOID maps a result column's OID back to a logical type.
// Unrecognized OIDs degrade to the null type: the value is preserved
// as opaque rather than dropped.
func (d *Dialect) TypeForOID(o oid.Oid) types.Type {
	if typ, ok := oidTypes[o]; ok {
		return typ
	}
	if d.WarnUnknownKinds {
		log.Warnf("postgres: no logical type for oid %d (%s)", o, oid.TypeName[o])
	}
	return types.Null
}

var oidTypes = map[oid.Oid]types.Type{
	oid.T_bool:        types.NewBoolean(),
	oid.T_int2:        types.NewSmallInt(),
	oid.T_int4:        types.NewInteger(),
	oid.T_int8:        types.NewBigInt(),
	oid.T_float4:      types.NewFloat(0),
	oid.T_float8:      types.NewFloat(0),
	oid.T_numeric:     types.NewNumeric(0, 0),
	oid.T_bpchar:      types.NewString(0),
	oid.T_varchar:     types.NewString(0),
	oid.T_text:        types.NewText(),
	oid.T_bytea:       types.NewLargeBinary(0),
	oid.T_date:        types.NewDate(),
	oid.T_time:        types.NewTime(false),
	oid.T_timetz:      types.NewTime(true),
	oid.T_timestamp:   types.NewDateTime(false),
	oid.T_timestamptz: types.NewDateTime(true),
	oid.T_interval:    NewInterval(0),
	oid.T_uuid:        types.NewUuid(),
}
