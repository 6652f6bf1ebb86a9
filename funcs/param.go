package funcs

import (
	"fmt"

	"github.com/lumelang/lume/values"
)

type ParamKind uint8

const (
	ParamNormal ParamKind = iota
	ParamOptional
	ParamWithDefault
	ParamArgsArray
	ParamKWArgsDict
)

// Parameter is one slot of a callable's declared signature. Default is only
// set for ParamWithDefault and is fixed at construction time, never
// re-evaluated.
type Parameter struct {
	Kind    ParamKind
	Name    string
	Default values.Value
}

// Signature is the ordered parameter list of a callable. Order is
// significant for both binding and display. Signatures are built once at
// registration time and immutable afterwards.
type Signature []Parameter

// SignatureBuilder constructs a Signature. Misuse (duplicate names, a
// parameter after **kwargs, a second *args) is a registration-time defect
// and panics.
type SignatureBuilder struct {
	sig Signature
}

func NewSignature() *SignatureBuilder {
	return &SignatureBuilder{}
}

func (b *SignatureBuilder) add(p Parameter) *SignatureBuilder {
	for _, prev := range b.sig {
		if prev.Name == p.Name {
			panic(fmt.Errorf("duplicate parameter %s", p.Name))
		}
		if prev.Kind == ParamKWArgsDict {
			panic(fmt.Errorf("parameter %s after **%s", p.Name, prev.Name))
		}
		if prev.Kind == ParamArgsArray && p.Kind == ParamArgsArray {
			panic(fmt.Errorf("second *args parameter %s", p.Name))
		}
	}
	b.sig = append(b.sig, p)
	return b
}

func (b *SignatureBuilder) Normal(name string) *SignatureBuilder {
	return b.add(Parameter{Kind: ParamNormal, Name: name})
}

func (b *SignatureBuilder) Optional(name string) *SignatureBuilder {
	return b.add(Parameter{Kind: ParamOptional, Name: name})
}

func (b *SignatureBuilder) Default(name string, value values.Value) *SignatureBuilder {
	return b.add(Parameter{Kind: ParamWithDefault, Name: name, Default: value})
}

func (b *SignatureBuilder) Args(name string) *SignatureBuilder {
	return b.add(Parameter{Kind: ParamArgsArray, Name: name})
}

func (b *SignatureBuilder) KWArgs(name string) *SignatureBuilder {
	return b.add(Parameter{Kind: ParamKWArgsDict, Name: name})
}

func (b *SignatureBuilder) Build() Signature {
	return b.sig
}
