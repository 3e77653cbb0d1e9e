package types

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// StringType is the base for character types, VARCHAR in SQL. A
// length of zero means unbounded. With ConvertUnicode set, result
// values from backends whose drivers hand back raw bytes are decoded
// into strings; ForceDecode applies the decoding even on drivers that
// already return decoded text, and DecodeErrors selects how invalid
// bytes are then handled ("strict", "replace", or "ignore").
type StringType struct {
	Base
	Length         int
	ConvertUnicode bool
	ForceDecode    bool
	DecodeErrors   string
	warnOnBytes    bool
}

func NewString(length int) *StringType {
	return &StringType{Base: MakeBase(StringClass), Length: length}
}

// NewConvertingString returns a StringType with unicode conversion
// turned on. Requesting decode error handling without forced decoding
// is a construction error: without it the driver may never hand the
// raw bytes back.
func NewConvertingString(length int, forceDecode bool, decodeErrors string) *StringType {
	if decodeErrors != "" && !forceDecode {
		panic("types: DecodeErrors requires ForceDecode")
	}
	s := NewString(length)
	s.ConvertUnicode = true
	s.ForceDecode = forceDecode
	s.DecodeErrors = decodeErrors
	return s
}

func (s *StringType) Concatenable() {}

func (s *StringType) String() string {
	if s.Length == 0 {
		return "VARCHAR"
	}
	return fmt.Sprintf("VARCHAR(%d)", s.Length)
}

func (s *StringType) BindProcessor(d Dialect) BindFunc {
	if !s.ConvertUnicode || !s.warnOnBytes {
		return nil
	}
	return func(v any) (any, error) {
		if b, ok := v.([]byte); ok {
			log.Warnf("types: unicode type received raw bytes bind value %q", b)
		}
		return v, nil
	}
}

func (s *StringType) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	if !s.ConvertUnicode {
		return nil
	}
	if d.ReturnsDecodedText() && !s.ForceDecode {
		return nil
	}
	decode := DecodeText(s.DecodeErrors)
	if d.ReturnsDecodedText() {
		// forced decoding on a driver that already decodes: strings
		// are passed through without revalidation
		return func(v any) (any, error) {
			if _, ok := v.(string); ok {
				return v, nil
			}
			return decode(v)
		}
	}
	return decode
}

// Text is an unbounded string, TEXT or CLOB in SQL.
type Text struct {
	StringType
}

func NewText() *Text {
	return &Text{StringType{Base: MakeBase(TextClass)}}
}

func (t *Text) String() string {
	return "TEXT"
}

// Unicode is a variable length unicode string: conversion of result
// values is on, and binding raw bytes draws a warning.
type Unicode struct {
	StringType
}

func NewUnicode(length int) *Unicode {
	u := &Unicode{StringType{Base: MakeBase(UnicodeClass), Length: length}}
	u.ConvertUnicode = true
	u.warnOnBytes = true
	return u
}

func (u *Unicode) String() string {
	if u.Length == 0 {
		return "NVARCHAR"
	}
	return fmt.Sprintf("NVARCHAR(%d)", u.Length)
}

// UnicodeText is an unbounded unicode string.
type UnicodeText struct {
	StringType
}

func NewUnicodeText() *UnicodeText {
	t := &UnicodeText{StringType{Base: MakeBase(UnicodeTextClass)}}
	t.ConvertUnicode = true
	t.warnOnBytes = true
	return t
}

func (t *UnicodeText) String() string {
	return "NTEXT"
}
