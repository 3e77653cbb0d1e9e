package types_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tychodb/tycho/types"
)

type testDialect struct {
	family      string
	version     string
	specs       types.ColSpecs
	nativeBool  bool
	nativeEnum  bool
	decodedText bool

	// TypeDescriptor can be hit from several goroutines on a
	// simultaneous cache miss.
	descriptorCalls atomic.Int32
}

func (d *testDialect) Family() string {
	return d.family
}

func (d *testDialect) Version() string {
	return d.version
}

func (d *testDialect) Encoding() string {
	return "utf-8"
}

func (d *testDialect) SupportsNativeBoolean() bool {
	return d.nativeBool
}

func (d *testDialect) SupportsNativeEnum() bool {
	return d.nativeEnum
}

func (d *testDialect) ReturnsDecodedText() bool {
	return d.decodedText
}

func (d *testDialect) TypeDescriptor(typ types.Type) types.Type {
	d.descriptorCalls.Add(1)
	return types.AdaptType(typ, d.specs)
}

var boundedClass = types.NewClass("bounded string", types.StringClass)

type boundedString struct {
	types.StringType
}

func newBoundedString(length int) *boundedString {
	return &boundedString{
		types.StringType{Base: types.MakeBase(boundedClass), Length: length},
	}
}

func (s *boundedString) String() string {
	return fmt.Sprintf("BOUNDED(%d)", s.Length)
}

func boundedSpecs() types.ColSpecs {
	return types.ColSpecs{
		types.StringClass: {
			Class: boundedClass,
			Adapt: func(t types.Type) types.Type {
				switch t := t.(type) {
				case *types.StringType:
					return newBoundedString(t.Length)
				case *types.Text:
					return newBoundedString(t.Length)
				}
				return newBoundedString(0)
			},
		},
	}
}

func TestResolveIdentity(t *testing.T) {
	d := &testDialect{family: "plain", version: "1"}
	typ := types.NewInteger()

	r := types.Resolve(typ, d)
	if r != types.Type(typ) {
		t.Fatalf("Resolve(INT, plain) got %#v want the type itself", r)
	}
	for i := 0; i < 3; i++ {
		types.Resolve(typ, d)
	}
	if d.descriptorCalls.Load() != 1 {
		t.Errorf("Resolve(INT, plain) called TypeDescriptor %d times want 1",
			d.descriptorCalls.Load())
	}
}

func TestResolveSubstitution(t *testing.T) {
	d := &testDialect{family: "bounded", version: "1", specs: boundedSpecs()}
	typ := types.NewString(30)

	r := types.Resolve(typ, d)
	bs, ok := r.(*boundedString)
	if !ok {
		t.Fatalf("Resolve(VARCHAR(30), bounded) got %#v want *boundedString", r)
	}
	if bs.Length != 30 {
		t.Errorf("Resolve(VARCHAR(30), bounded).Length got %d want 30", bs.Length)
	}

	if types.Resolve(typ, d) != r {
		t.Errorf("Resolve(VARCHAR(30), bounded) did not return the cached type")
	}
	if d.descriptorCalls.Load() != 1 {
		t.Errorf("Resolve(VARCHAR(30), bounded) called TypeDescriptor %d times want 1",
			d.descriptorCalls.Load())
	}
}

func TestResolveCacheKey(t *testing.T) {
	typ := types.NewString(10)

	d1 := &testDialect{family: "bounded", version: "1", specs: boundedSpecs()}
	d2 := &testDialect{family: "bounded", version: "1", specs: boundedSpecs()}
	d3 := &testDialect{family: "bounded", version: "2", specs: boundedSpecs()}

	r1 := types.Resolve(typ, d1)
	r2 := types.Resolve(typ, d2)
	r3 := types.Resolve(typ, d3)

	if r1 != r2 {
		t.Errorf("dialects sharing an identity got distinct resolved types")
	}
	if r1 == r3 {
		t.Errorf("dialects with distinct versions shared a resolved type")
	}
	if d2.descriptorCalls.Load() != 0 {
		t.Errorf("second dialect with the same identity called TypeDescriptor %d times want 0",
			d2.descriptorCalls.Load())
	}
}

func TestResolveConcurrent(t *testing.T) {
	d := &testDialect{family: "bounded", version: "1", specs: boundedSpecs()}
	typ := types.NewString(30)

	const n = 16
	resolved := make([]types.Type, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			resolved[i] = types.Resolve(typ, d)
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if resolved[i] != resolved[0] {
			t.Fatalf("concurrent Resolve got distinct types: %#v and %#v", resolved[0],
				resolved[i])
		}
	}
}

func TestAdaptTypeShortCircuit(t *testing.T) {
	specs := boundedSpecs()

	bs := newBoundedString(5)
	if r := types.AdaptType(bs, specs); r != types.Type(bs) {
		t.Errorf("AdaptType(BOUNDED(5)) got %#v want the type itself", r)
	}

	txt := types.NewText()
	r := types.AdaptType(txt, specs)
	if _, ok := r.(*boundedString); !ok {
		t.Errorf("AdaptType(TEXT) got %#v want *boundedString", r)
	}

	i := types.NewInteger()
	if r := types.AdaptType(i, specs); r != types.Type(i) {
		t.Errorf("AdaptType(INT) got %#v want the type itself", r)
	}
}

func TestColSpecsMerge(t *testing.T) {
	base := boundedSpecs()
	override := types.ColSpecs{
		types.StringClass: {
			Class: types.StringClass,
			Adapt: func(t types.Type) types.Type { return t },
		},
	}

	merged := base.Merge(override)
	typ := types.NewString(30)
	if r := types.AdaptType(typ, merged); r != types.Type(typ) {
		t.Errorf("AdaptType with override got %#v want the type itself", r)
	}
	if r := types.AdaptType(typ, base); r == types.Type(typ) {
		t.Errorf("Merge modified the base colspecs")
	}
}
