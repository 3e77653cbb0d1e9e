package types_test

import (
	"testing"

	"github.com/tychodb/tycho/types"
)

func TestStringRendering(t *testing.T) {
	cases := []struct {
		typ types.Type
		ret string
	}{
		{types.NewString(30), "VARCHAR(30)"},
		{types.NewString(0), "VARCHAR"},
		{types.NewText(), "TEXT"},
		{types.NewUnicode(10), "NVARCHAR(10)"},
		{types.NewUnicode(0), "NVARCHAR"},
		{types.NewUnicodeText(), "NTEXT"},
		{types.NewEnum("mood", "sad", "ok", "happy"), "VARCHAR(5)"},
	}

	for _, c := range cases {
		if c.typ.String() != c.ret {
			t.Errorf("String() got %q want %q", c.typ.String(), c.ret)
		}
	}
}

func TestUnicodeResults(t *testing.T) {
	decoded := &testDialect{family: "decoded", version: "1", decodedText: true}
	raw := &testDialect{family: "raw", version: "1"}

	u := types.NewUnicode(0)
	if result := u.ResultProcessor(decoded, nil); result != nil {
		t.Errorf("NVARCHAR on a decoding driver got a processor want nil")
	}

	result := u.ResultProcessor(raw, nil)
	if result == nil {
		t.Fatalf("NVARCHAR on a raw driver got nil want a decoding processor")
	}
	v, err := result([]byte("héllo"))
	if err != nil || v != "héllo" {
		t.Errorf("result(héllo) got %#v %v want héllo", v, err)
	}
	if _, err = result([]byte{'a', 0xff}); err == nil {
		t.Errorf("result(invalid utf8) did not fail")
	}

	// plain VARCHAR never decodes
	s := types.NewString(30)
	if result := s.ResultProcessor(raw, nil); result != nil {
		t.Errorf("VARCHAR got a result processor want nil")
	}
}

func TestForcedDecode(t *testing.T) {
	decoded := &testDialect{family: "decoded", version: "1", decodedText: true}

	f := types.NewConvertingString(0, true, "replace")
	result := f.ResultProcessor(decoded, nil)
	if result == nil {
		t.Fatalf("forced decoding on a decoding driver got nil want a processor")
	}

	// strings pass through unrevalidated; bytes are decoded with the
	// configured error handling
	v, err := result("plain")
	if err != nil || v != "plain" {
		t.Errorf("result(plain) got %#v %v want plain", v, err)
	}
	v, err = result([]byte{'a', 0xff, 'b'})
	if err != nil || v != "a�b" {
		t.Errorf("result(invalid utf8) got %#v %v", v, err)
	}
}

func TestConvertingStringMisuse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewConvertingString(0, false, replace) did not panic")
		}
	}()
	types.NewConvertingString(0, false, "replace")
}
