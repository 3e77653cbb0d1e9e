package types_test

import (
	"testing"

	"github.com/tychodb/tycho/types"
)

func TestAffinity(t *testing.T) {
	cases := []struct {
		typ      types.Type
		affinity *types.Class
	}{
		{types.NewString(30), types.StringClass},
		{types.NewText(), types.StringClass},
		{types.NewUnicode(30), types.StringClass},
		{types.NewUnicodeText(), types.StringClass},
		{types.NewEnum("mood", "sad", "ok", "happy"), types.StringClass},
		{types.NewSmallInt(), types.IntegerClass},
		{types.NewInteger(), types.IntegerClass},
		{types.NewBigInt(), types.IntegerClass},
		{types.NewNumeric(10, 2), types.NumericClass},
		{types.NewFloat(24), types.NumericClass},
		{types.NewBoolean(), types.BooleanClass},
		{types.NewDate(), types.DateClass},
		{types.NewTime(false), types.TimeClass},
		{types.NewDateTime(true), types.DateTimeClass},
		{types.NewLargeBinary(0), types.LargeBinaryClass},
		{types.NewInterval(), types.IntervalClass},
		{types.NewUuid(), types.UuidClass},
		{types.NewJSONData(), types.LargeBinaryClass},
		{types.Null, types.NullClass},
	}

	for _, c := range cases {
		if c.typ.Affinity() != c.affinity {
			t.Errorf("%s.Affinity() got %s want %s", c.typ, c.typ.Affinity(), c.affinity)
		}
	}
}

func TestClassHierarchy(t *testing.T) {
	cases := []struct {
		class *types.Class
		other *types.Class
		ret   bool
	}{
		{types.TextClass, types.StringClass, true},
		{types.UnicodeTextClass, types.TextClass, true},
		{types.UnicodeTextClass, types.StringClass, true},
		{types.StringClass, types.TextClass, false},
		{types.SmallIntClass, types.IntegerClass, true},
		{types.FloatClass, types.NumericClass, true},
		{types.FloatClass, types.IntegerClass, false},
		{types.DateClass, types.DateClass, true},
		{types.DateClass, types.DateTimeClass, false},
	}

	for _, c := range cases {
		if c.class.DescendsFrom(c.other) != c.ret {
			t.Errorf("%s.DescendsFrom(%s) got %v want %v", c.class, c.other, !c.ret, c.ret)
		}
	}
}

func TestAncestry(t *testing.T) {
	anc := types.UnicodeTextClass.Ancestry()
	want := []*types.Class{types.UnicodeTextClass, types.TextClass, types.StringClass}
	if len(anc) != len(want) {
		t.Fatalf("UnicodeTextClass.Ancestry() got %d classes want %d", len(anc), len(want))
	}
	for i := range want {
		if anc[i] != want[i] {
			t.Errorf("UnicodeTextClass.Ancestry()[%d] got %s want %s", i, anc[i], want[i])
		}
	}
}

func TestBackendClassAffinity(t *testing.T) {
	native := types.NewClass("native interval", types.IntervalClass)
	if native.Affinity() != types.IntervalClass {
		t.Errorf("native.Affinity() got %s want %s", native.Affinity(), types.IntervalClass)
	}
	if !native.DescendsFrom(types.IntervalClass) {
		t.Errorf("native.DescendsFrom(IntervalClass) got false want true")
	}
}
