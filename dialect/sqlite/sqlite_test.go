package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychodb/tycho/dialect/sqlite"
	"github.com/tychodb/tycho/testutil"
	"github.com/tychodb/tycho/types"
)

func TestColSpecs(t *testing.T) {
	d := sqlite.New("3.45")

	sd, ok := types.Resolve(types.NewDate(), d).(*sqlite.Date)
	require.True(t, ok, "DATE must resolve to text storage")
	assert.Equal(t, "DATE", sd.String())

	st, ok := types.Resolve(types.NewTime(true), d).(*sqlite.Time)
	require.True(t, ok, "TIME must resolve to text storage")
	assert.True(t, st.Timezone)

	sdt, ok := types.Resolve(types.NewDateTime(false), d).(*sqlite.DateTime)
	require.True(t, ok, "TIMESTAMP must resolve to text storage")
	assert.False(t, sdt.Timezone)

	// everything else stays generic
	s := types.NewString(30)
	assert.Equal(t, types.Type(s), types.Resolve(s, d))
	b := types.NewBoolean()
	assert.Equal(t, types.Type(b), types.Resolve(b, d))
}

// auditStamp embeds the generic datetime under its own class, the way
// an application extends the hierarchy.
type auditStamp struct {
	types.DateTime
}

var auditStampClass = types.NewClass("audit stamp", types.DateTimeClass)

func newAuditStamp() *auditStamp {
	return &auditStamp{types.DateTime{Base: types.MakeBase(auditStampClass)}}
}

func TestColSpecSubtypes(t *testing.T) {
	d := sqlite.New("3.45")

	a := newAuditStamp()
	assert.Same(t, types.Type(a), types.Resolve(a, d),
		"a datetime subtype must resolve to itself, not text storage")
}

func TestTemporalStorage(t *testing.T) {
	d := sqlite.New("3.45")
	when := time.Date(2023, time.July, 14, 9, 30, 15, 0, time.UTC)

	cases := []struct {
		typ types.Type
		val time.Time
		ret string
	}{
		{types.Resolve(types.NewDate(), d), when, "2023-07-14"},
		{types.Resolve(types.NewTime(false), d), when, "09:30:15.000"},
		{types.Resolve(types.NewDateTime(false), d), when, "2023-07-14 09:30:15.000"},
	}

	for _, c := range cases {
		bind := c.typ.BindProcessor(d)
		require.NotNil(t, bind, "%s must bind as text", c.typ)
		v, err := bind(c.val)
		require.NoError(t, err)
		assert.Equal(t, c.ret, v, "%s", c.typ)

		result := c.typ.ResultProcessor(d, nil)
		require.NotNil(t, result, "%s must parse text results", c.typ)
		rv, err := result(c.ret)
		require.NoError(t, err)
		back, ok := rv.(time.Time)
		require.True(t, ok, "%s result must be a time", c.typ)
		assert.Equal(t, c.ret, mustBind(t, bind, back), "%s round trip", c.typ)
	}
}

func mustBind(t *testing.T, bind types.BindFunc, v any) any {
	t.Helper()
	out, err := bind(v)
	require.NoError(t, err)
	return out
}

func TestBooleanStorage(t *testing.T) {
	d := sqlite.New("3.45")
	b := types.Resolve(types.NewBoolean(), d)

	bind := b.BindProcessor(d)
	require.NotNil(t, bind)
	v, err := bind(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	result := b.ResultProcessor(d, nil)
	require.NotNil(t, result)
	v, err = result(int64(0))
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestTypeForDecl(t *testing.T) {
	testutil.SetupLogger("sqlite_test.log")
	d := sqlite.New("3.45")

	cases := []struct {
		decl     string
		affinity *types.Class
	}{
		{"BOOLEAN", types.BooleanClass},
		{"INTEGER", types.IntegerClass},
		{"INT", types.IntegerClass},
		{"BIGINT", types.IntegerClass},
		{"VARCHAR(30)", types.StringClass},
		{"varchar(30)", types.StringClass},
		{"NVARCHAR(30)", types.StringClass},
		{"TEXT", types.StringClass},
		{"NUMERIC(10, 2)", types.NumericClass},
		{"DOUBLE", types.NumericClass},
		{"BLOB", types.LargeBinaryClass},
		{"DATE", types.DateClass},
		{"DATETIME", types.DateTimeClass},
		{"TIMESTAMP", types.DateTimeClass},
		{" text ", types.StringClass},
		{"GEOMETRY", types.NullClass},
	}

	for _, c := range cases {
		typ := d.TypeForDecl(c.decl)
		assert.Equal(t, c.affinity, typ.Affinity(), "decl %q", c.decl)
	}
}
