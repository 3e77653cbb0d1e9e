package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Uuid stores RFC 4122 UUIDs. Backends with a native uuid type
// substitute their own; the generic type stores the value as 32
// hexadecimal characters. With AsString set, values are bound and
// returned as strings rather than uuid.UUID.
type Uuid struct {
	Base
	AsString bool
}

func NewUuid() *Uuid {
	return &Uuid{Base: MakeBase(UuidClass)}
}

func (u *Uuid) String() string {
	return "CHAR(32)"
}

func (u *Uuid) BindProcessor(d Dialect) BindFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case uuid.UUID:
			return hexUuid(v), nil
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, err
			}
			return hexUuid(id), nil
		}
		return nil, fmt.Errorf("types: want a uuid; got %v (%T)", v, v)
	}
}

func (u *Uuid) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	asString := u.AsString
	return func(v any) (any, error) {
		var s string
		switch v := v.(type) {
		case nil:
			return nil, nil
		case uuid.UUID:
			if asString {
				return v.String(), nil
			}
			return v, nil
		case string:
			s = v
		case []byte:
			s = string(v)
		default:
			return nil, fmt.Errorf("types: want a uuid; got %v (%T)", v, v)
		}

		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		if asString {
			return id.String(), nil
		}
		return id, nil
	}
}

func hexUuid(id uuid.UUID) string {
	return fmt.Sprintf("%x", id[:])
}
