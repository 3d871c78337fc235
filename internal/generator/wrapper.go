package generator

import (
	"fmt"
	"strings"

	"github.com/saffronjam/go-glaze/internal/common"
)

// Strategy is how one argument is marshaled into the native call.
type Strategy int

const (
	ByValue        Strategy = iota // passed as is
	AddressPass                    // untyped pointer, converted with getVoidP
	ZeroCopyBuffer                 // contiguous typed memoryview, address of element 0
	VectorBridge                   // list copied into a vector of typed pointers
)

func (s Strategy) String() string {
	switch s {
	case ByValue:
		return "by-value"
	case AddressPass:
		return "address-pass"
	case ZeroCopyBuffer:
		return "zero-copy-buffer"
	case VectorBridge:
		return "vector-bridge"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Argument is one parameter of a synthesized callable.
type Argument struct {
	Name     string
	Base     string // marshaling category, empty when left to the native declaration
	Strategy Strategy
}

// ParamDecl is the parameter as it appears in the callable's signature.
func (a Argument) ParamDecl() string {
	switch a.Strategy {
	case AddressPass:
		return "voidpable " + a.Name
	case ZeroCopyBuffer:
		return a.Base + "[::1] " + a.Name
	case VectorBridge:
		return "list " + a.Name
	default:
		if a.Base == "" {
			return a.Name
		}
		return a.Base + " " + a.Name
	}
}

// CallExpr is the expression handed to the native function.
func (a Argument) CallExpr() string {
	switch a.Strategy {
	case AddressPass:
		return fmt.Sprintf("getVoidP(%s)", a.Name)
	case ZeroCopyBuffer:
		return fmt.Sprintf("&%s[0]", a.Name)
	case VectorBridge:
		return fmt.Sprintf("<const %s**>&cvec_%s[0]", a.Base, a.Name)
	default:
		return a.Name
	}
}

// BridgeDecl declares the temporary vector of a VectorBridge argument.
func (a Argument) BridgeDecl() string {
	return fmt.Sprintf("cdef vector[%s*] cvec_%s = %s", a.Base, a.Name, a.Name)
}

// Result describes the local variable holding a non-void return value.
type Result struct {
	Base    string
	Const   bool
	Pointer bool
}

func (r Result) Decl() string {
	var sb strings.Builder
	sb.WriteString("cdef ")
	if r.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(r.Base)
	if r.Pointer {
		sb.WriteString("*")
	}
	sb.WriteString(" ret")
	return sb.String()
}

// Callable is the full set of emission instructions for one wrapper.
type Callable struct {
	Name   string
	Module string // native declaration module, e.g. "cGL"
	Args   []Argument
	Result *Result // nil for void functions
}

func (c *Callable) Bridges() []Argument {
	var bridges []Argument
	for _, a := range c.Args {
		if a.Strategy == VectorBridge {
			bridges = append(bridges, a)
		}
	}
	return bridges
}

// Lines renders the callable: signature, result local, bridge temporaries,
// native call and return.
func (c *Callable) Lines() []string {
	params := make([]string, len(c.Args))
	callArgs := make([]string, len(c.Args))
	for i, a := range c.Args {
		params[i] = a.ParamDecl()
		callArgs[i] = a.CallExpr()
	}

	lines := []string{fmt.Sprintf("def %s(%s):", c.Name, strings.Join(params, ", "))}
	if c.Result != nil {
		lines = append(lines, "    "+c.Result.Decl())
	}
	for _, a := range c.Bridges() {
		lines = append(lines, "    "+a.BridgeDecl())
	}

	assign := ""
	if c.Result != nil {
		assign = "ret = "
	}
	lines = append(lines, fmt.Sprintf("    %s%s.%s(%s)", assign, c.Module, c.Name, strings.Join(callArgs, ", ")))

	if c.Result != nil {
		lines = append(lines, "    return ret")
	}
	return lines
}

func (c *Callable) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Outcome tells whether a callable was produced for a function.
type Outcome int

const (
	Emitted Outcome = iota
	Skipped
)

// Synthesis is the non-fatal result of synthesizing one function.
type Synthesis struct {
	Outcome  Outcome
	Reason   string // why the function was skipped
	Callable *Callable
}

func skip(format string, args ...any) (Synthesis, error) {
	return Synthesis{Outcome: Skipped, Reason: fmt.Sprintf(format, args...)}, nil
}

// Synthesizer decides the marshaling of every argument and return value.
type Synthesizer struct {
	conv   *common.Converter
	module string
}

func NewSynthesizer(conv *common.Converter, module string) *Synthesizer {
	return &Synthesizer{conv: conv, module: module}
}

// Synthesize builds the callable for fn. Functions outside the supported
// marshaling rules are skipped; a pointer to pointer return value is
// returned as an *UnsupportedError.
func (s *Synthesizer) Synthesize(fn common.NormalizedFunction) (Synthesis, error) {
	retBase, ok := s.conv.ResolveBase(fn.Return.Param)
	if !ok {
		return skip("unresolved return type %q", fn.Return.Type)
	}

	args := make([]Argument, 0, len(fn.Params))
	for i, p := range fn.Params {
		if p.Type == "" {
			return skip("parameter %d has no type", i)
		}
		if p.IsVoid() && len(fn.Params) == 1 && p.Name == "" {
			continue
		}

		name := common.SanitizeParamName(p.Param, i, s.conv.HandlePrefix)
		base, resolved := s.conv.ResolveBase(p.Param)

		switch {
		case p.PointerDepth == 0:
			args = append(args, Argument{Name: name, Base: base, Strategy: ByValue})
		case p.PointerDepth == 1 && base == common.VoidP:
			args = append(args, Argument{Name: name, Base: base, Strategy: AddressPass})
		case p.PointerDepth == 1:
			if !resolved {
				return skip("parameter %s: unresolved buffer element type %q", name, p.Type)
			}
			args = append(args, Argument{Name: name, Base: base, Strategy: ZeroCopyBuffer})
		default:
			if !p.Const || base == common.VoidP {
				return skip("parameter %s: only constant pointers to typed pointers are supported", name)
			}
			if !resolved {
				return skip("parameter %s: unresolved element type %q", name, p.Type)
			}
			args = append(args, Argument{Name: name, Base: base, Strategy: VectorBridge})
		}
	}

	callable := &Callable{Name: fn.Name, Module: s.module, Args: args}

	// a return declared as void at any pointer depth, void ** included,
	// produces no result and never reaches the pointer to pointer check
	if fn.Return.Type != "void" {
		if fn.Return.PointerDepth > 1 {
			return Synthesis{}, &UnsupportedError{Function: fn.Name, Construct: "pointer to pointer return type"}
		}
		callable.Result = &Result{
			Base:    retBase,
			Const:   fn.Return.Const,
			Pointer: fn.Return.PointerDepth == 1,
		}
	}

	return Synthesis{Outcome: Emitted, Callable: callable}, nil
}
