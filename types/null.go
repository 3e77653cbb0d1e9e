package types

// NullType is an unknown type. It stands in when a backend reports a
// type the library cannot map to a logical one; values pass through
// untouched and the column stays usable as an opaque passthrough.
type NullType struct {
	Base
}

func NewNullType() *NullType {
	return &NullType{MakeBase(NullClass)}
}

func (n *NullType) String() string {
	return "NULL"
}

// Null is the canonical unknown type instance.
var Null Type = NewNullType()
