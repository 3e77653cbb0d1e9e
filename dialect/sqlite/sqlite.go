// Package sqlite is the SQLite backend context. SQLite has no native
// temporal or boolean storage: dates and times travel as text,
// booleans as integers.
package sqlite

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tychodb/tycho/dialect"
	"github.com/tychodb/tycho/types"
)

var (
	DateClass     = types.NewClass("sqlite date", types.DateClass)
	TimeClass     = types.NewClass("sqlite time", types.TimeClass)
	DateTimeClass = types.NewClass("sqlite datetime", types.DateTimeClass)
)

type Dialect struct {
	dialect.Dialect

	// WarnUnknownKinds logs a warning whenever a declared column type
	// cannot be mapped back to a logical type.
	WarnUnknownKinds bool
}

func New(version string) *Dialect {
	return &Dialect{
		Dialect: dialect.Make(dialect.Config{
			Family:      "sqlite",
			Version:     version,
			ColSpecs:    colSpecs,
			DecodedText: true,
		}),
		WarnUnknownKinds: true,
	}
}

// The Adapt functions substitute only the generic structs; a
// user-defined subtype walking to the same entry is returned
// unchanged.
var colSpecs = types.ColSpecs{
	types.DateClass: {
		Class: DateClass,
		Adapt: func(t types.Type) types.Type {
			if _, ok := t.(*types.Date); !ok {
				return t
			}
			return NewDate()
		},
	},
	types.TimeClass: {
		Class: TimeClass,
		Adapt: func(t types.Type) types.Type {
			tt, ok := t.(*types.Time)
			if !ok {
				return t
			}
			return NewTime(tt.Timezone)
		},
	},
	types.DateTimeClass: {
		Class: DateTimeClass,
		Adapt: func(t types.Type) types.Type {
			dt, ok := t.(*types.DateTime)
			if !ok {
				return t
			}
			return NewDateTime(dt.Timezone)
		},
	},
}

// TypeForDecl maps a declared column type from the catalog back to a
// logical type. Unrecognized declarations degrade to the null type:
// the column stays usable with values passed through untouched.
func (d *Dialect) TypeForDecl(decl string) types.Type {
	name := decl
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}
	name = strings.ToUpper(strings.TrimSpace(name))

	if typ, ok := declTypes[name]; ok {
		return typ
	}
	if d.WarnUnknownKinds {
		log.Warnf("sqlite: no logical type for declared type %q", decl)
	}
	return types.Null
}

var declTypes = map[string]types.Type{
	"BOOLEAN":   types.NewBoolean(),
	"SMALLINT":  types.NewSmallInt(),
	"INT":       types.NewInteger(),
	"INTEGER":   types.NewInteger(),
	"BIGINT":    types.NewBigInt(),
	"FLOAT":     types.NewFloat(0),
	"REAL":      types.NewFloat(0),
	"DOUBLE":    types.NewFloat(0),
	"NUMERIC":   types.NewNumeric(0, 0),
	"DECIMAL":   types.NewNumeric(0, 0),
	"CHAR":      types.NewString(0),
	"VARCHAR":   types.NewString(0),
	"NCHAR":     types.NewUnicode(0),
	"NVARCHAR":  types.NewUnicode(0),
	"TEXT":      types.NewText(),
	"CLOB":      types.NewText(),
	"BLOB":      types.NewLargeBinary(0),
	"DATE":      NewDate(),
	"TIME":      NewTime(false),
	"DATETIME":  NewDateTime(false),
	"TIMESTAMP": NewDateTime(false),
}
