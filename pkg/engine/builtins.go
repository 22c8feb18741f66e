package engine

import (
	"fmt"
	"strings"

	"github.com/casworth/xsect/pkg/brep/mem"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms xsect Lisp source before passing it to
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding keyword-symbol registration that would collide with user
//     variables of the same name.
//
//  2. Kebab-case to underscore: round-tube -> round_tube. zygomys reads a
//     hyphen inside an identifier as subtraction.
//
//  3. ; line comments become // comments, which is what zygomys parses.
//
// All three respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword". := stays untouched.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Hyphen between identifier characters is kebab-case, not minus.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string, returning the
// keyword name without the prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// reqFloat extracts a required numeric keyword argument.
func reqFloat(pa kwArgs, form, name string) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return 0, fmt.Errorf("%s: missing required keyword :%s", form, name)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", form, name, err)
	}
	return f, nil
}

// optFloat extracts an optional numeric keyword argument.
func optFloat(pa kwArgs, form, name string, def float64) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", form, name, err)
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// sexpBody wraps a mem.Body so it can be passed between builtins.
type sexpBody struct {
	body *mem.Body
}

func (b *sexpBody) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(body %q)", b.body.Name)
}
func (b *sexpBody) Type() *zygo.RegisteredType { return nil }

func toBody(s zygo.Sexp) (*mem.Body, error) {
	if b, ok := s.(*sexpBody); ok {
		return b.body, nil
	}
	return nil, fmt.Errorf("expected stock body, got %T (%s)", s, s.SexpString(nil))
}

// registerBuiltins installs the stock DSL builtins into a zygomys
// environment. The builtins append to the provided job as (stock ...)
// forms are evaluated.
//
// Builtins are registered with underscores because zygomys cannot parse
// hyphenated identifiers; preprocessSource converts the kebab-case forms
// users write.
func registerBuiltins(env *zygo.Zlisp, job *Job) {

	// body builders, keyed by builtin name, each consuming keyword args
	type buildFunc func(pa kwArgs) (*mem.Body, error)

	builders := map[string]buildFunc{
		// (round-bar :dia 2 :length 10)
		"round_bar": func(pa kwArgs) (*mem.Body, error) {
			dia, err := reqFloat(pa, "round-bar", "dia")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "round-bar", "length")
			if err != nil {
				return nil, err
			}
			return mem.RoundBar("", dia, length), nil
		},

		// (round-tube :od 2 :wall 0.25 :length 10)
		"round_tube": func(pa kwArgs) (*mem.Body, error) {
			od, err := reqFloat(pa, "round-tube", "od")
			if err != nil {
				return nil, err
			}
			wall, err := reqFloat(pa, "round-tube", "wall")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "round-tube", "length")
			if err != nil {
				return nil, err
			}
			return mem.RoundTube("", od, wall, length), nil
		},

		// (rect-tube :width 4 :height 2 :wall 0.125 :length 12)
		"rect_tube": func(pa kwArgs) (*mem.Body, error) {
			width, err := reqFloat(pa, "rect-tube", "width")
			if err != nil {
				return nil, err
			}
			height, err := reqFloat(pa, "rect-tube", "height")
			if err != nil {
				return nil, err
			}
			wall, err := reqFloat(pa, "rect-tube", "wall")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "rect-tube", "length")
			if err != nil {
				return nil, err
			}
			return mem.RectTube("", width, height, wall, length), nil
		},

		// (square-tube :size 2 :wall 0.25 :length 8)
		"square_tube": func(pa kwArgs) (*mem.Body, error) {
			size, err := reqFloat(pa, "square-tube", "size")
			if err != nil {
				return nil, err
			}
			wall, err := reqFloat(pa, "square-tube", "wall")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "square-tube", "length")
			if err != nil {
				return nil, err
			}
			return mem.SquareTube("", size, wall, length), nil
		},

		// (flat-bar :width 3 :thickness 0.5 :length 24)
		"flat_bar": func(pa kwArgs) (*mem.Body, error) {
			width, err := reqFloat(pa, "flat-bar", "width")
			if err != nil {
				return nil, err
			}
			thickness, err := reqFloat(pa, "flat-bar", "thickness")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "flat-bar", "length")
			if err != nil {
				return nil, err
			}
			return mem.FlatBar("", width, thickness, length), nil
		},

		// (angle :leg-a 3 :leg-b 2 :thickness 0.25 :length 24)
		"angle": func(pa kwArgs) (*mem.Body, error) {
			legA, err := reqFloat(pa, "angle", "leg-a")
			if err != nil {
				return nil, err
			}
			legB, err := reqFloat(pa, "angle", "leg-b")
			if err != nil {
				return nil, err
			}
			thickness, err := reqFloat(pa, "angle", "thickness")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "angle", "length")
			if err != nil {
				return nil, err
			}
			return mem.Angle("", legA, legB, thickness, length), nil
		},

		// (channel :web 3 :flange 1.5 :thickness 0.25 :length 24)
		"channel": func(pa kwArgs) (*mem.Body, error) {
			web, err := reqFloat(pa, "channel", "web")
			if err != nil {
				return nil, err
			}
			flange, err := reqFloat(pa, "channel", "flange")
			if err != nil {
				return nil, err
			}
			thickness, err := reqFloat(pa, "channel", "thickness")
			if err != nil {
				return nil, err
			}
			length, err := reqFloat(pa, "channel", "length")
			if err != nil {
				return nil, err
			}
			return mem.Channel("", web, flange, thickness, length), nil
		},
	}

	for name, build := range builders {
		build := build
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			body, err := build(parseArgs(args))
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpBody{body: body}, nil
		})
	}

	// -----------------------------------------------------------------------
	// (drill body :dia 0.5 :at 5)
	// -----------------------------------------------------------------------
	env.AddFunction("drill", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("drill requires a body as first argument")
		}
		body, err := toBody(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("drill: %w", err)
		}
		dia, err := reqFloat(pa, "drill", "dia")
		if err != nil {
			return zygo.SexpNull, err
		}
		at, err := reqFloat(pa, "drill", "at")
		if err != nil {
			return zygo.SexpNull, err
		}
		depth, err := optFloat(pa, "drill", "depth", dia)
		if err != nil {
			return zygo.SexpNull, err
		}
		mem.Drill(body, dia, at, depth)
		return &sexpBody{body: body}, nil
	})

	// -----------------------------------------------------------------------
	// (stock "name" body)
	// -----------------------------------------------------------------------
	env.AddFunction("stock", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("stock requires a name and a body expression")
		}
		stockName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("stock: name: %w", err)
		}
		body, err := toBody(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("stock: %w", err)
		}
		body.Name = stockName
		job.Stocks = append(job.Stocks, Stock{Name: stockName, Body: body})
		return args[1], nil
	})
}
