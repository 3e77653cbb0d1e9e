package postgres

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tychodb/tycho/types"
)

// Numeric binds fixed precision values as text: the server parses
// NUMERIC literals exactly, avoiding a float round trip.
type Numeric struct {
	types.Numeric
}

func (n *Numeric) BindProcessor(d types.Dialect) types.BindFunc {
	return types.ToString
}

func (n *Numeric) ResultProcessor(d types.Dialect, raw types.RawKind) types.ResultFunc {
	if !n.AsDecimal {
		return types.ToFloat
	}
	if n.Scale > 0 {
		return types.ToDecimalScale(n.Scale)
	}
	return types.ToDecimal
}

// Interval is the native INTERVAL type. Bind values are rendered in
// seconds, which the server accepts for any magnitude; result values
// parse the postgres interval output format.
type Interval struct {
	types.Base
	SecondPrecision int
}

func NewInterval(secondPrecision int) *Interval {
	return &Interval{Base: types.MakeBase(IntervalClass), SecondPrecision: secondPrecision}
}

func (iv *Interval) String() string {
	if iv.SecondPrecision > 0 {
		return fmt.Sprintf("INTERVAL(%d)", iv.SecondPrecision)
	}
	return "INTERVAL"
}

func (iv *Interval) BindProcessor(d types.Dialect) types.BindFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case time.Duration:
			return fmt.Sprintf("%f seconds", v.Seconds()), nil
		}
		return nil, fmt.Errorf("postgres: want a duration; got %v (%T)", v, v)
	}
}

func (iv *Interval) ResultProcessor(d types.Dialect, raw types.RawKind) types.ResultFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case time.Duration:
			return v, nil
		case string:
			return parseInterval(v)
		case []byte:
			return parseInterval(string(v))
		}
		return nil, fmt.Errorf("postgres: want an interval; got %v (%T)", v, v)
	}
}

// parseInterval handles the postgres interval output format:
// "[N year[s]] [N mon[s]] [N day[s]] [-]HH:MM:SS[.ffffff]". Years and
// months use the usual 360/30 day convention when converted to a
// duration.
func parseInterval(s string) (time.Duration, error) {
	var d time.Duration
	fields := strings.Fields(strings.TrimSpace(s))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.Contains(f, ":") {
			hms, err := parseClock(f)
			if err != nil {
				return 0, fmt.Errorf("postgres: bad interval %q: %s", s, err)
			}
			d += hms
			continue
		}

		if i+1 >= len(fields) {
			return 0, fmt.Errorf("postgres: bad interval %q", s)
		}
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("postgres: bad interval %q: %s", s, err)
		}
		unit := strings.TrimSuffix(fields[i+1], "s")
		i++
		switch unit {
		case "year":
			d += time.Duration(n) * 360 * 24 * time.Hour
		case "mon":
			d += time.Duration(n) * 30 * 24 * time.Hour
		case "day":
			d += time.Duration(n) * 24 * time.Hour
		default:
			return 0, fmt.Errorf("postgres: bad interval unit %q in %q", unit, s)
		}
	}
	return d, nil
}

func parseClock(s string) (time.Duration, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS; got %q", s)
	}
	h, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, err
	}
	m, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(sec*float64(time.Second))
	if neg {
		d = -d
	}
	return d, nil
}

// Enum is the native enumerated type; it exists as a named object on
// the server and is created before, and dropped after, its owning
// containers.
type Enum struct {
	types.Enum
}

func newEnum(e *types.Enum) *Enum {
	pe := &Enum{Enum: types.Enum{
		StringType: types.StringType{Base: types.MakeBase(EnumClass), Length: e.Length},
		Schema:     e.Schema,
		Values:     e.Values,
		Native:     true,
	}}
	return pe
}

// String renders the column type as the enum's name: the named type
// exists on the server.
func (e *Enum) String() string {
	return e.qualifiedName()
}

func (e *Enum) CreateDDL(x types.Executor) error {
	labels := make([]string, len(e.Values))
	for i, v := range e.Values {
		labels[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return x.Execute(fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)",
		e.qualifiedName(), strings.Join(labels, ", ")))
}

func (e *Enum) DropDDL(x types.Executor) error {
	return x.Execute(fmt.Sprintf("DROP TYPE %s", e.qualifiedName()))
}

func (e *Enum) qualifiedName() string {
	name := e.Schema.Name
	if e.Schema.Quote {
		name = `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	if e.Schema.Schema != "" {
		return e.Schema.Schema + "." + name
	}
	return name
}

// Uuid is the native uuid type: values travel in the canonical
// 36 character form instead of bare hex.
type Uuid struct {
	types.Uuid
}

func (u *Uuid) String() string {
	return "UUID"
}

func (u *Uuid) BindProcessor(d types.Dialect) types.BindFunc {
	return func(v any) (any, error) {
		switch v := v.(type) {
		case nil:
			return nil, nil
		case uuid.UUID:
			return v.String(), nil
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, err
			}
			return id.String(), nil
		}
		return nil, fmt.Errorf("postgres: want a uuid; got %v (%T)", v, v)
	}
}
