package types

import (
	"fmt"
	"strings"
)

// Enum constrains a string column to a fixed set of labels. Backends
// with a native enumerated type substitute a type that is created
// before, and dropped after, the owning containers; everywhere else
// the column is a VARCHAR with a check constraint.
type Enum struct {
	StringType
	Schema SchemaInfo
	Values []string
	Native bool
}

func NewEnum(name string, values ...string) *Enum {
	return NewSchemaEnum(SchemaInfo{Name: name}, values...)
}

// NewSchemaEnum builds an Enum bound to an explicit schema identity;
// with info.Catalog set the type is created within catalog-level
// create and drop operations regardless of table usage.
func NewSchemaEnum(info SchemaInfo, values ...string) *Enum {
	length := 0
	for _, v := range values {
		if len(v) > length {
			length = len(v)
		}
	}
	e := &Enum{
		StringType: StringType{Base: MakeBase(EnumClass), Length: length},
		Schema:     info,
		Values:     values,
		Native:     true,
	}
	BindSchemaType(e, e.Schema)
	return e
}

func (e *Enum) AttachTo(table TableTarget, column string) {
	if e.Native {
		AttachSchemaType(e, e.Schema, table)
	}
	if ct, ok := table.(ConstraintTarget); ok {
		native := e.Native
		ct.AppendConstraint(e.Schema.Name,
			fmt.Sprintf("%s IN (%s)", column, quoteLabels(e.Values)),
			func(d Dialect) bool {
				return !native || !d.SupportsNativeEnum()
			})
	}
}

func quoteLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = "'" + strings.ReplaceAll(l, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
