package types

// DDL lifecycle events.
const (
	BeforeCreate = "before-create"
	AfterDrop    = "after-drop"
)

// DDLListener is a lifecycle callback invoked with the triggering
// container and the executor for the active backend.
type DDLListener func(target any, x Executor) error

// SchemaEventTarget is the DDL lifecycle event sink owning containers
// provide. Listeners are keyed by (event, owner): re-registering the
// same owner must be a no-op, and the container owns the registration
// so the type never holds a reference back to it.
type SchemaEventTarget interface {
	AddDDLListener(event string, owner any, fn DDLListener)
}

// TableTarget is the table-shaped container a type attaches to.
type TableTarget interface {
	SchemaEventTarget

	// Catalog is the table's top-level container, or nil.
	Catalog() SchemaEventTarget
}

// ConstraintTarget is implemented by tables accepting check
// constraints. The rule decides per dialect whether the constraint is
// emitted at all.
type ConstraintTarget interface {
	AppendConstraint(name string, check string, rule func(d Dialect) bool)
}

// Executor runs DDL against a backend on behalf of lifecycle
// listeners.
type Executor interface {
	Dialect() Dialect
	Execute(stmt string, args ...any) error
}

// SchemaAttacher is implemented by types that participate in the DDL
// lifecycle of their owning containers; the schema model calls
// AttachTo when a column using the type is added to a table.
type SchemaAttacher interface {
	AttachTo(table TableTarget, column string)
}

// SchemaDDL is implemented by backend types that exist as named
// objects and require explicit CREATE and DROP statements.
type SchemaDDL interface {
	CreateDDL(x Executor) error
	DropDDL(x Executor) error
}

// SchemaInfo carries the identity of a type that may exist as a named
// object on the backend: its name, optional owning schema, quoting
// preference, and an optional explicit catalog-level container.
type SchemaInfo struct {
	Name    string
	Schema  string
	Quote   bool
	Catalog SchemaEventTarget
}

// BindSchemaType registers typ's lifecycle listeners on its explicit
// catalog container, when it has one. Called at construction.
func BindSchemaType(typ Type, info SchemaInfo) {
	if info.Catalog != nil {
		info.Catalog.AddDDLListener(BeforeCreate, typ, createListener(typ))
		info.Catalog.AddDDLListener(AfterDrop, typ, dropListener(typ))
	}
}

// AttachSchemaType registers typ's lifecycle listeners when a column
// using typ is added to a table. The listeners go on the table's
// catalog when it has one, otherwise on the table itself, so the
// backend object is created exactly once no matter how many tables use
// the type. Containers dedupe by owner, so repeated attachment never
// duplicates callbacks. A type bound to an explicit catalog was
// registered at construction and is left alone.
func AttachSchemaType(typ Type, info SchemaInfo, table TableTarget) {
	if info.Catalog != nil {
		return
	}
	target := SchemaEventTarget(table)
	if cat := table.Catalog(); cat != nil {
		target = cat
	}
	target.AddDDLListener(BeforeCreate, typ, createListener(typ))
	target.AddDDLListener(AfterDrop, typ, dropListener(typ))
}

// createListener re-resolves typ against the executor's backend and
// delegates creation to the resolved type, but only when resolution
// produced a genuinely different object: a generic type with no
// backend-specific DDL need is a no-op.
func createListener(typ Type) DDLListener {
	return func(target any, x Executor) error {
		t := Resolve(typ, x.Dialect())
		if t == typ {
			return nil
		}
		if sd, ok := t.(SchemaDDL); ok {
			return sd.CreateDDL(x)
		}
		return nil
	}
}

func dropListener(typ Type) DDLListener {
	return func(target any, x Executor) error {
		t := Resolve(typ, x.Dialect())
		if t == typ {
			return nil
		}
		if sd, ok := t.(SchemaDDL); ok {
			return sd.DropDDL(x)
		}
		return nil
	}
}
