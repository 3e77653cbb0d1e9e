// Package dialect provides the standard backend-context
// implementation: a stable identity, capability flags, and a colspec
// substitution table. Backend packages build one with Make and their
// own table.
package dialect

import (
	"github.com/tychodb/tycho/types"
)

type Config struct {
	Family   string
	Version  string
	Encoding string
	ColSpecs types.ColSpecs

	NativeBoolean bool
	NativeEnum    bool
	DecodedText   bool
}

// Dialect implements types.Dialect from a Config.
type Dialect struct {
	cfg Config
}

func Make(cfg Config) Dialect {
	if cfg.Encoding == "" {
		cfg.Encoding = "utf-8"
	}
	return Dialect{cfg: cfg}
}

func New(cfg Config) *Dialect {
	d := Make(cfg)
	return &d
}

// Default is a neutral backend context: no substitutions, native
// booleans, decoded text.
func Default() *Dialect {
	return New(Config{
		Family:        "default",
		NativeBoolean: true,
		DecodedText:   true,
	})
}

func (d *Dialect) Family() string {
	return d.cfg.Family
}

func (d *Dialect) Version() string {
	return d.cfg.Version
}

func (d *Dialect) Encoding() string {
	return d.cfg.Encoding
}

func (d *Dialect) SupportsNativeBoolean() bool {
	return d.cfg.NativeBoolean
}

func (d *Dialect) SupportsNativeEnum() bool {
	return d.cfg.NativeEnum
}

func (d *Dialect) ReturnsDecodedText() bool {
	return d.cfg.DecodedText
}

// TypeDescriptor substitutes typ through the dialect's colspec table;
// a type with no entry is returned unchanged.
func (d *Dialect) TypeDescriptor(typ types.Type) types.Type {
	return types.AdaptType(typ, d.cfg.ColSpecs)
}
