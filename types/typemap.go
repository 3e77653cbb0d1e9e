package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValueKind classifies native application values for default type
// selection.
type ValueKind int

const (
	NullKind ValueKind = iota
	TextKind
	BytesKind
	IntegerKind
	FloatKind
	DecimalKind
	BooleanKind
	DateKind
	DateTimeKind
	TimeKind
	DurationKind
	UuidKind
)

// defaultTypes is the process-wide default type map; it is read-only
// after initialization.
var defaultTypes = map[ValueKind]Type{
	NullKind:     Null,
	TextKind:     NewString(0),
	BytesKind:    NewLargeBinary(0),
	IntegerKind:  integerType,
	FloatKind:    NewFloat(0),
	DecimalKind:  NewNumeric(0, 0),
	BooleanKind:  NewBoolean(),
	DateKind:     dateType,
	DateTimeKind: dateTimeType,
	TimeKind:     timeType,
	DurationKind: intervalType,
	UuidKind:     NewUuid(),
}

// DefaultType returns the default logical type for a value kind.
func DefaultType(k ValueKind) Type {
	if typ, ok := defaultTypes[k]; ok {
		return typ
	}
	return Null
}

// KindOf classifies an application value. Values with no category map
// to NullKind and stay opaque.
func KindOf(v any) ValueKind {
	switch v.(type) {
	case nil:
		return NullKind
	case string:
		return TextKind
	case []byte:
		return BytesKind
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntegerKind
	case float32, float64:
		return FloatKind
	case decimal.Decimal:
		return DecimalKind
	case bool:
		return BooleanKind
	case time.Time:
		return DateTimeKind
	case time.Duration:
		return DurationKind
	case uuid.UUID:
		return UuidKind
	}
	return NullKind
}

// DefaultTypeOf returns the default logical type for a value.
func DefaultTypeOf(v any) Type {
	return DefaultType(KindOf(v))
}
