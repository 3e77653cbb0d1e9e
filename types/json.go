package types

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// JSONData stores arbitrary structured values as JSON in a large
// binary column. Values are mutable by default, so the surrounding
// machinery must compare by content rather than identity; a Comparator
// can replace the deep comparison.
type JSONData struct {
	Decorator
	Mutable    bool
	Comparator func(x, y any) bool
}

func NewJSONData() *JSONData {
	j := &JSONData{Mutable: true}
	j.Decorator = MakeDecorator(j, NewLargeBinary(0))
	return j
}

func (j *JSONData) String() string {
	return "JSON"
}

func (j *JSONData) ProcessBindParam(v any, d Dialect) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (j *JSONData) ProcessResultValue(v any, d Dialect) (any, error) {
	var b []byte
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, fmt.Errorf("types: want encoded json; got %v (%T)", v, v)
	}

	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Copy returns a fresh JSONData: the function-valued Comparator cannot
// go through the default reflected copy.
func (j *JSONData) Copy() Type {
	cp := &JSONData{Mutable: j.Mutable, Comparator: j.Comparator}
	cp.Decorator = MakeDecorator(cp, j.Inner())
	return cp
}

// CopyValue deep-copies mutable values by a marshal round trip.
func (j *JSONData) CopyValue(v any) any {
	if !j.Mutable || v == nil {
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func (j *JSONData) CompareValues(x, y any) bool {
	if j.Comparator != nil {
		return j.Comparator(x, y)
	}
	return reflect.DeepEqual(x, y)
}

func (j *JSONData) IsMutable() bool {
	return j.Mutable
}
