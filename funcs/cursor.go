package funcs

import (
	"fmt"
	"slices"

	"github.com/lumelang/lume/values"
)

// Cursor is the per-call argument binder: it resolves a raw call payload
// against a signature in one linear pass, one slot per Next call, strictly
// in declaration order. A cursor lives for one call and is not shared;
// concurrent calls to the same callable each construct their own.
type Cursor struct {
	callable   Callable
	sig        Signature
	index      int
	positional []values.Value
	pos        int
	named      *values.Dict
}

// NewCursor builds the positional and named pools for one call. The
// positional pool is the declared positional arguments extended, in order,
// by the elements of args; the named pool is the declared named arguments
// extended by the entries of kwargs. A kwargs key colliding with an already
// named argument is an error, not last-write-wins.
func NewCursor(c Callable, sig Signature, positional []values.Value, named *values.Dict, args, kwargs values.Value) (*Cursor, error) {
	pool := slices.Clone(positional)
	if args != nil {
		it, ok := args.(values.Iterable)
		if !ok {
			return nil, argsNotIterable()
		}
		for v := range it.Iterate() {
			pool = append(pool, v)
		}
	}

	namedPool := values.NewDict()
	if named != nil {
		for k, v := range named.Items() {
			if err := namedPool.Set(k, v); err != nil {
				return nil, err
			}
		}
	}
	if kwargs != nil {
		m, ok := kwargs.(values.Mapping)
		if !ok {
			return nil, kwargsNotMappable()
		}
		for k, v := range m.Items() {
			key, ok := k.(values.String)
			if !ok {
				return nil, argsKeyNotString(k)
			}
			if _, exists := namedPool.GetString(string(key)); exists {
				return nil, duplicateNamedArgument(string(key))
			}
			if err := namedPool.SetString(string(key), v); err != nil {
				return nil, err
			}
		}
	}

	return &Cursor{
		callable:   c,
		sig:        sig,
		positional: pool,
		named:      namedPool,
	}, nil
}

func (c *Cursor) takePositional() (values.Value, bool) {
	if c.pos < len(c.positional) {
		v := c.positional[c.pos]
		c.pos++
		return v, true
	}
	return nil, false
}

// Next resolves the next signature slot. Taking more slots than the
// signature declares is a signature/body mismatch and panics.
func (c *Cursor) Next() (Arg, error) {
	if c.index >= len(c.sig) {
		panic(fmt.Errorf("all %d parameters of %s already taken", len(c.sig), c.callable.Name()))
	}
	p := c.sig[c.index]
	arg := Arg{
		param: p,
		index: c.index,
	}
	c.index++

	switch p.Kind {

	case ParamNormal:
		v, ok := c.takePositional()
		if !ok {
			v, ok = c.named.DeleteString(p.Name)
		}
		if !ok {
			return Arg{}, notEnoughParameters(p.Name, c.callable)
		}
		arg.value = v

	case ParamOptional:
		v, ok := c.takePositional()
		if !ok {
			v, ok = c.named.DeleteString(p.Name)
		}
		if ok {
			arg.value = v
		}

	case ParamWithDefault:
		v, ok := c.takePositional()
		if !ok {
			v, ok = c.named.DeleteString(p.Name)
		}
		if !ok {
			v = p.Default
		}
		arg.value = v

	case ParamArgsArray:
		rest := slices.Clone(c.positional[c.pos:])
		c.pos = len(c.positional)
		arg.value = values.NewList(rest)

	case ParamKWArgsDict:
		arg.value = c.named
		c.named = values.NewDict()
	}

	return arg, nil
}

// Done verifies both pools are drained; it runs even for zero-parameter
// signatures. Finishing before all slots are taken is a signature/body
// mismatch and panics.
func (c *Cursor) Done() error {
	if c.index != len(c.sig) {
		panic(fmt.Errorf("only %d of %d parameters of %s taken", c.index, len(c.sig), c.callable.Name()))
	}
	if c.pos < len(c.positional) || c.named.Len() > 0 {
		return extraParameter()
	}
	return nil
}
