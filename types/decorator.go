package types

import (
	"fmt"
	"reflect"
)

// BindParamProcessor is the encode hook of a decorator: implement it
// on the decorator's concrete type to transform values before they
// reach the inner type's bind processing.
type BindParamProcessor interface {
	ProcessBindParam(value any, d Dialect) (any, error)
}

// ResultValueProcessor is the decode hook of a decorator: implement it
// on the decorator's concrete type to transform values after the inner
// type's result processing.
type ResultValueProcessor interface {
	ProcessResultValue(value any, d Dialect) (any, error)
}

// DialectImplLoader overrides how a decorator resolves its inner type
// against a dialect.
type DialectImplLoader interface {
	LoadDialectImpl(d Dialect) Type
}

// Copier is implemented by decorators that need control over how they
// are duplicated during resolution. Copy must return a new instance of
// the same concrete type with an empty specialization cache; returning
// anything else is a contract violation and panics.
type Copier interface {
	Copy() Type
}

// Decorator layers a value transformation over another type. A
// concrete decorator embeds Decorator and initializes it with
// MakeDecorator, passing itself and the type it wraps:
//
//	type prefixed struct {
//		types.Decorator
//	}
//
//	func newPrefixed() *prefixed {
//		t := &prefixed{}
//		t.Decorator = types.MakeDecorator(t, types.NewUnicode(0))
//		return t
//	}
//
// The encode and decode hooks are the optional BindParamProcessor and
// ResultValueProcessor interfaces. A decorator implementing neither is
// a pure wrapper: its processors are exactly the inner type's,
// including nil when no conversion is needed at all.
type Decorator struct {
	Base
	impl Type
	self Type
}

// MakeDecorator builds the embedded portion of a decorator. self is
// the concrete decorator itself; impl is the type being decorated, and
// wrapping nothing is a construction error.
func MakeDecorator(self, impl Type) Decorator {
	return MakeClassDecorator(DecoratorClass, self, impl)
}

// MakeClassDecorator registers the decorator under its own class, for
// decorators that are first-class type families of their own and may
// be substituted wholesale by a backend.
func MakeClassDecorator(class *Class, self, impl Type) Decorator {
	if impl == nil {
		panic("types: a decorator requires the type it decorates")
	}
	if self == nil {
		panic("types: a decorator requires a reference to its concrete type")
	}
	return Decorator{Base: MakeBase(class), impl: impl, self: self}
}

// NewDecorator wraps impl without adding any transformation, borrowing
// the inner type's behavior wholesale.
func NewDecorator(impl Type) *Decorator {
	d := &Decorator{}
	*d = MakeDecorator(d, impl)
	return d
}

// Inner returns the decorated type.
func (d *Decorator) Inner() Type {
	return d.impl
}

func (d *Decorator) String() string {
	return d.impl.String()
}

func (d *Decorator) Affinity() *Class {
	if d.class != DecoratorClass {
		return d.class.Affinity()
	}
	return d.impl.Affinity()
}

// BindProcessor composes this layer's encode hook with the inner
// type's bind processor. Without an encode hook it returns the inner
// processor itself, adding no call overhead.
func (d *Decorator) BindProcessor(dl Dialect) BindFunc {
	bp, ok := d.self.(BindParamProcessor)
	if !ok {
		return d.impl.BindProcessor(dl)
	}
	inner := d.impl.BindProcessor(dl)
	if inner == nil {
		return func(v any) (any, error) {
			return bp.ProcessBindParam(v, dl)
		}
	}
	return func(v any) (any, error) {
		v, err := bp.ProcessBindParam(v, dl)
		if err != nil {
			return nil, err
		}
		return inner(v)
	}
}

// ResultProcessor composes in the reverse order: the inner type's
// result processor runs first, then this layer's decode hook.
func (d *Decorator) ResultProcessor(dl Dialect, raw RawKind) ResultFunc {
	rp, ok := d.self.(ResultValueProcessor)
	if !ok {
		return d.impl.ResultProcessor(dl, raw)
	}
	inner := d.impl.ResultProcessor(dl, raw)
	if inner == nil {
		return func(v any) (any, error) {
			return rp.ProcessResultValue(v, dl)
		}
	}
	return func(v any) (any, error) {
		v, err := inner(v)
		if err != nil {
			return nil, err
		}
		return rp.ProcessResultValue(v, dl)
	}
}

func (d *Decorator) CopyValue(v any) any {
	return d.impl.CopyValue(v)
}

func (d *Decorator) CompareValues(x, y any) bool {
	return d.impl.CompareValues(x, y)
}

func (d *Decorator) IsMutable() bool {
	return d.impl.IsMutable()
}

type decorated interface {
	Type
	decorator() *Decorator
}

func (d *Decorator) decorator() *Decorator {
	return d
}

// resolveDecorator resolves a decorator against a dialect. The
// decorator itself is offered for substitution first: a backend may
// map the whole decorated type to one of its native types. Only when
// the backend declines does resolution fall through to the inner type,
// rebuilding a fresh copy of the decorator around the resolved inner.
func resolveDecorator(dec decorated, dl Dialect, key implKey) Type {
	d := dec.decorator()

	adapted := dl.TypeDescriptor(d.self)
	if adapted != d.self {
		v, _ := d.impls().m.LoadOrStore(key, adapted)
		return v.(Type)
	}

	var inner Type
	if ldr, ok := d.self.(DialectImplLoader); ok {
		inner = ldr.LoadDialectImpl(dl)
	} else if _, ok := d.impl.(decorated); ok {
		inner = Resolve(d.impl, dl)
	} else {
		inner = dl.TypeDescriptor(d.impl)
	}

	cp := copyOf(d)
	cp.(decorated).decorator().impl = inner
	v, _ := d.impls().m.LoadOrStore(key, cp)
	return v.(Type)
}

// copyOf duplicates a decorator as the same concrete type with an
// empty specialization cache, preferring the decorator's own Copy.
func copyOf(d *Decorator) Type {
	if c, ok := d.self.(Copier); ok {
		cp := c.Copy()
		if reflect.TypeOf(cp) != reflect.TypeOf(d.self) {
			panic(fmt.Sprintf(
				"types: %T does not properly implement Copy; it must return a new %T",
				d.self, d.self))
		}
		return cp
	}
	if dd, ok := d.self.(*Decorator); ok && dd == d {
		cp := &Decorator{}
		*cp = MakeClassDecorator(d.class, cp, d.impl)
		return cp
	}
	return reflectCopy(d)
}

// reflectCopy is the default Copy: duplicate the exported fields of
// the concrete decorator and rebuild the embedded Decorator with a
// fresh cache. Decorators carrying unexported configuration must
// implement Copier themselves.
func reflectCopy(d *Decorator) Type {
	src := reflect.ValueOf(d.self).Elem()
	dst := reflect.New(src.Type()).Elem()
	decType := reflect.TypeOf(Decorator{})
	for i := 0; i < src.NumField(); i++ {
		if src.Field(i).Type() == decType || !dst.Field(i).CanSet() {
			continue
		}
		dst.Field(i).Set(src.Field(i))
	}

	cp := dst.Addr().Interface().(Type)
	fld := dst.FieldByName("Decorator")
	if !fld.IsValid() || !fld.CanSet() {
		panic(fmt.Sprintf("types: %T must embed types.Decorator or implement Copy", d.self))
	}
	fld.Set(reflect.ValueOf(MakeClassDecorator(d.class, cp, d.impl)))
	return cp
}
