package types

import "fmt"

// Boolean deals in true and false on the application side, and in
// BOOLEAN or SMALLINT on the backend side. When the backend generates
// an integer column, bind and result values are converted and, with
// CreateConstraint set, a check constraint restricting the column to
// 0 and 1 is attached to the owning table.
type Boolean struct {
	Base
	CreateConstraint bool
	Name             string
}

func NewBoolean() *Boolean {
	return &Boolean{Base: MakeBase(BooleanClass), CreateConstraint: true}
}

func (b *Boolean) String() string {
	return "BOOLEAN"
}

func (b *Boolean) BindProcessor(d Dialect) BindFunc {
	if d.SupportsNativeBoolean() {
		return nil
	}
	return BooleanToInt
}

func (b *Boolean) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	if d.SupportsNativeBoolean() {
		return nil
	}
	return IntToBoolean
}

func (b *Boolean) AttachTo(table TableTarget, column string) {
	if !b.CreateConstraint {
		return
	}
	if ct, ok := table.(ConstraintTarget); ok {
		ct.AppendConstraint(b.Name, fmt.Sprintf("%s IN (0, 1)", column),
			func(d Dialect) bool {
				return !d.SupportsNativeBoolean()
			})
	}
}
