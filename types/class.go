package types

// Class identifies a family of logical types and its position in the
// generic type hierarchy. Classes are static metadata: every type
// reports one, dialects key their substitution tables by them, and the
// operator inference tables are declared in terms of them. The
// ancestry and affinity of a class are fixed at registration, so
// lookups never walk the hierarchy.
type Class struct {
	name     string
	parent   *Class
	affinity *Class
	ancestry []*Class
}

// NewClass registers a class below parent; a nil parent starts a new
// root family. Backends register their native types as classes below
// the generic ones so that affinity grouping recognizes them.
func NewClass(name string, parent *Class) *Class {
	c := &Class{name: name, parent: parent}
	for a := c; a != nil; a = a.parent {
		c.ancestry = append(c.ancestry, a)
	}
	c.affinity = c.ancestry[len(c.ancestry)-1]
	return c
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) Parent() *Class {
	return c.parent
}

// Ancestry is c followed by its ancestors, most specific first.
func (c *Class) Ancestry() []*Class {
	return c.ancestry
}

// Affinity is the root family c belongs to: the least specific
// ancestor that is still a proper type family. Types sharing an
// affinity are interchangeable for comparison and operator inference.
func (c *Class) Affinity() *Class {
	return c.affinity
}

func (c *Class) DescendsFrom(other *Class) bool {
	for a := c; a != nil; a = a.parent {
		if a == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string {
	return c.name
}

var (
	StringClass      = NewClass("string", nil)
	TextClass        = NewClass("text", StringClass)
	UnicodeClass     = NewClass("unicode", StringClass)
	UnicodeTextClass = NewClass("unicode text", TextClass)
	EnumClass        = NewClass("enum", StringClass)
	IntegerClass     = NewClass("integer", nil)
	SmallIntClass    = NewClass("small integer", IntegerClass)
	BigIntClass      = NewClass("big integer", IntegerClass)
	NumericClass     = NewClass("numeric", nil)
	FloatClass       = NewClass("float", NumericClass)
	BooleanClass     = NewClass("boolean", nil)
	DateClass        = NewClass("date", nil)
	TimeClass        = NewClass("time", nil)
	DateTimeClass    = NewClass("datetime", nil)
	LargeBinaryClass = NewClass("large binary", nil)
	IntervalClass    = NewClass("interval", nil)
	UuidClass        = NewClass("uuid", nil)
	NullClass        = NewClass("null", nil)

	// DecoratorClass is the default class of decorators that are not
	// type families of their own; it never matches a dialect's
	// substitution table, so the decorator itself is never substituted
	// unless it registers a class.
	DecoratorClass = NewClass("type decorator", nil)
)
