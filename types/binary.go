package types

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// LargeBinary holds large binary byte data, BLOB or BYTEA in SQL. A
// length of zero means unbounded.
type LargeBinary struct {
	Base
	Length int
}

func NewLargeBinary(length int) *LargeBinary {
	return &LargeBinary{Base: MakeBase(LargeBinaryClass), Length: length}
}

func (b *LargeBinary) String() string {
	if b.Length == 0 {
		return "BLOB"
	}
	return fmt.Sprintf("BLOB(%d)", b.Length)
}

func (b *LargeBinary) BindProcessor(d Dialect) BindFunc {
	return ToBytes
}

func (b *LargeBinary) ResultProcessor(d Dialect, raw RawKind) ResultFunc {
	return ToBytes
}

// NewBinary is deprecated: the Binary type was renamed to LargeBinary.
func NewBinary(length int) *LargeBinary {
	log.Warn("types: the Binary type has been renamed to LargeBinary")
	return NewLargeBinary(length)
}
