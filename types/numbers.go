package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Integer is a type for whole numbers, INT in SQL.
type Integer struct {
	Base
}

func NewInteger() *Integer {
	return &Integer{MakeBase(IntegerClass)}
}

func (i *Integer) String() string {
	return "INT"
}

func (i *Integer) ExpressionAdaptations() AdaptTable {
	return integerAdaptations
}

// SmallInt generates SMALLINT in DDL and otherwise acts like Integer.
type SmallInt struct {
	Integer
}

func NewSmallInt() *SmallInt {
	return &SmallInt{Integer{MakeBase(SmallIntClass)}}
}

func (i *SmallInt) String() string {
	return "SMALLINT"
}

// BigInt generates BIGINT in DDL and otherwise acts like Integer.
type BigInt struct {
	Integer
}

func NewBigInt() *BigInt {
	return &BigInt{Integer{MakeBase(BigIntClass)}}
}

func (i *BigInt) String() string {
	return "BIGINT"
}

// Numeric is a fixed precision number, DECIMAL or NUMERIC in SQL.
// With AsDecimal set, result values are returned as decimal.Decimal,
// rounded to Scale when Scale is positive; otherwise result values are
// left as the driver returns them. Bind values are sent as float64.
type Numeric struct {
	Base
	Precision int
	Scale     int
	AsDecimal bool
}

func NewNumeric(precision, scale int) *Numeric {
	return &Numeric{
		Base:      MakeBase(NumericClass),
		Precision: precision,
		Scale:     scale,
		AsDecimal: true,
	}
}

func (n *Numeric) String() string {
	if n.Precision == 0 {
		return "NUMERIC"
	}
	return fmt.Sprintf("NUMERIC(%d, %d)", n.Precision, n.Scale)
}

func (n *Numeric) BindProcessor(d Dialect) BindFunc {
	return ToFloat
}

func (n *Numeric) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	if !n.AsDecimal {
		return nil
	}
	if n.Scale > 0 {
		return ToDecimalScale(n.Scale)
	}
	return ToDecimal
}

func (n *Numeric) CompareValues(x, y any) bool {
	if dx, ok := x.(decimal.Decimal); ok {
		if dy, ok := y.(decimal.Decimal); ok {
			return dx.Equal(dy)
		}
	}
	return n.Base.CompareValues(x, y)
}

func (n *Numeric) ExpressionAdaptations() AdaptTable {
	return numericAdaptations
}

// Float is a floating point number. Result values stay float64 unless
// AsDecimal is requested.
type Float struct {
	Numeric
}

func NewFloat(precision int) *Float {
	f := &Float{Numeric{Base: MakeBase(FloatClass), Precision: precision}}
	return f
}

func (f *Float) String() string {
	return "DOUBLE"
}

func (f *Float) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	if !f.AsDecimal {
		return nil
	}
	return ToDecimal
}
