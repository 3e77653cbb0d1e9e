package types

import (
	"fmt"
	"time"
)

// Epoch is the instant interval values are stored relative to on
// backends without a native INTERVAL type.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Interval is a duration type. Backends with a native INTERVAL type
// substitute their own; everywhere else the value is stored as a
// datetime relative to the epoch. Interval is a decorator over
// DateTime but an affinity of its own: datetime - datetime yields an
// interval, and interval arithmetic stays interval.
type Interval struct {
	Decorator
	Native          bool
	SecondPrecision int
	DayPrecision    int
}

func NewInterval() *Interval {
	iv := &Interval{Native: true}
	iv.Decorator = MakeClassDecorator(IntervalClass, iv, NewDateTime(false))
	return iv
}

func (iv *Interval) String() string {
	return "INTERVAL"
}

func (iv *Interval) ProcessBindParam(v any, d Dialect) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Duration:
		return Epoch.Add(v), nil
	}
	return nil, errWantDuration(v)
}

func (iv *Interval) ProcessResultValue(v any, d Dialect) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v.Sub(Epoch), nil
	case time.Duration:
		return v, nil
	}
	return nil, errWantDuration(v)
}

func (iv *Interval) ExpressionAdaptations() AdaptTable {
	return intervalAdaptations
}

func errWantDuration(v any) error {
	return fmt.Errorf("types: want a duration; got %v (%T)", v, v)
}
