package postgres_test

import (
	"testing"
	"time"

	"github.com/lib/pq/oid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychodb/tycho/dialect/postgres"
	"github.com/tychodb/tycho/testutil"
	"github.com/tychodb/tycho/types"
)

func TestColSpecs(t *testing.T) {
	d := postgres.New("16.0")

	n := types.NewNumeric(10, 2)
	pn, ok := types.Resolve(n, d).(*postgres.Numeric)
	require.True(t, ok, "NUMERIC must resolve to the native type")
	assert.Equal(t, 10, pn.Precision)
	assert.Equal(t, 2, pn.Scale)
	assert.True(t, pn.AsDecimal)

	// floats must not pick up the numeric substitution
	f := types.NewFloat(24)
	assert.Equal(t, types.Type(f), types.Resolve(f, d))

	iv := types.NewInterval()
	piv, ok := types.Resolve(iv, d).(*postgres.Interval)
	require.True(t, ok, "INTERVAL must resolve to the native type")
	assert.Equal(t, "INTERVAL", piv.String())

	e := types.NewEnum("mood", "sad", "ok", "happy")
	pe, ok := types.Resolve(e, d).(*postgres.Enum)
	require.True(t, ok, "ENUM must resolve to the native type")
	assert.Equal(t, []string{"sad", "ok", "happy"}, pe.Values)
	assert.Equal(t, "mood", pe.String())

	u := types.NewUuid()
	pu, ok := types.Resolve(u, d).(*postgres.Uuid)
	require.True(t, ok, "UUID must resolve to the native type")
	assert.Equal(t, "UUID", pu.String())

	// types with no native counterpart stay generic
	s := types.NewString(30)
	assert.Equal(t, types.Type(s), types.Resolve(s, d))
}

// money embeds the generic numeric under its own class, the way an
// application extends the hierarchy.
type money struct {
	types.Numeric
}

var moneyClass = types.NewClass("money", types.NumericClass)

func newMoney() *money {
	return &money{types.Numeric{
		Base:      types.MakeBase(moneyClass),
		Precision: 19,
		Scale:     4,
	}}
}

func TestColSpecSubtypes(t *testing.T) {
	d := postgres.New("16.0")

	m := newMoney()
	assert.Same(t, types.Type(m), types.Resolve(m, d),
		"a numeric subtype must resolve to itself, not the native replacement")
}

func TestNonNativeInterval(t *testing.T) {
	d := postgres.New("16.0")

	iv := types.NewInterval()
	iv.Native = false
	r := types.Resolve(iv, d)
	riv, ok := r.(*types.Interval)
	require.True(t, ok, "a non-native INTERVAL must stay the epoch decorator")
	assert.False(t, riv.Native)
}

func TestNumericProcessors(t *testing.T) {
	d := postgres.New("16.0")
	n := types.Resolve(types.NewNumeric(10, 2), d)

	bind := n.BindProcessor(d)
	v, err := bind(decimal.New(12345, -3))
	require.NoError(t, err)
	assert.Equal(t, "12.345", v)

	result := n.ResultProcessor(d, nil)
	v, err = result("12.345")
	require.NoError(t, err)
	assert.True(t, v.(decimal.Decimal).Equal(decimal.New(1234, -2)),
		"scale 2 must round to 12.34; got %s", v)

	nf := types.NewNumeric(10, 0)
	nf.AsDecimal = false
	r := types.Resolve(nf, d)
	result = r.ResultProcessor(d, nil)
	v, err = result("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestIntervalBind(t *testing.T) {
	d := postgres.New("16.0")
	iv := types.Resolve(types.NewInterval(), d)

	bind := iv.BindProcessor(d)
	v, err := bind(90 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "5400.000000 seconds", v)

	_, err = bind("90 minutes")
	assert.Error(t, err)
}

func TestIntervalParse(t *testing.T) {
	d := postgres.New("16.0")
	iv := types.Resolve(types.NewInterval(), d)
	result := iv.ResultProcessor(d, nil)

	cases := []struct {
		s    string
		ret  time.Duration
		fail bool
	}{
		{s: "01:30:00", ret: 90 * time.Minute},
		{s: "-00:00:30", ret: -30 * time.Second},
		{s: "00:00:01.5", ret: 1500 * time.Millisecond},
		{s: "3 days 04:05:06", ret: 3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second},
		{s: "1 day", ret: 24 * time.Hour},
		{s: "2 mons 1 day", ret: 61 * 24 * time.Hour},
		{s: "1 year", ret: 360 * 24 * time.Hour},
		{s: "bogus", fail: true},
		{s: "3 parsecs", fail: true},
	}

	for _, c := range cases {
		v, err := result(c.s)
		if c.fail {
			assert.Error(t, err, "interval %q must not parse", c.s)
			continue
		}
		require.NoError(t, err, "interval %q", c.s)
		assert.Equal(t, c.ret, v, "interval %q", c.s)
	}
}

func TestEnumDDL(t *testing.T) {
	d := postgres.New("16.0")
	rec := testutil.NewRecorder(d)

	e := types.Resolve(types.NewEnum("mood", "sad", "ok", "happy"), d)
	sd, ok := e.(types.SchemaDDL)
	require.True(t, ok, "the native enum must implement DDL creation")

	require.NoError(t, sd.CreateDDL(rec))
	require.NoError(t, sd.DropDDL(rec))
	assert.Equal(t, []string{
		"CREATE TYPE mood AS ENUM ('sad', 'ok', 'happy')",
		"DROP TYPE mood",
	}, rec.Statements())
}

func TestEnumQualifiedName(t *testing.T) {
	d := postgres.New("16.0")
	rec := testutil.NewRecorder(d)

	e := types.Resolve(types.NewSchemaEnum(types.SchemaInfo{
		Name:   "order state",
		Schema: "app",
		Quote:  true,
	}, "new", "done"), d)
	sd := e.(types.SchemaDDL)

	require.NoError(t, sd.CreateDDL(rec))
	assert.Equal(t, []string{
		`CREATE TYPE app."order state" AS ENUM ('new', 'done')`,
	}, rec.Statements())
}

func TestTypeForOID(t *testing.T) {
	testutil.SetupLogger("postgres_test.log")
	d := postgres.New("16.0")

	cases := []struct {
		oid      oid.Oid
		affinity *types.Class
	}{
		{oid.T_bool, types.BooleanClass},
		{oid.T_int2, types.IntegerClass},
		{oid.T_int4, types.IntegerClass},
		{oid.T_int8, types.IntegerClass},
		{oid.T_float8, types.NumericClass},
		{oid.T_numeric, types.NumericClass},
		{oid.T_varchar, types.StringClass},
		{oid.T_text, types.StringClass},
		{oid.T_bytea, types.LargeBinaryClass},
		{oid.T_date, types.DateClass},
		{oid.T_timetz, types.TimeClass},
		{oid.T_timestamptz, types.DateTimeClass},
		{oid.T_interval, types.IntervalClass},
		{oid.T_uuid, types.UuidClass},
		{oid.T_point, types.NullClass},
	}

	for _, c := range cases {
		typ := d.TypeForOID(c.oid)
		assert.Equal(t, c.affinity, typ.Affinity(), "oid %d", c.oid)
	}
}
