package engine

import (
	"testing"

	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(drill body :dia 0.5)`,
			expect: `(drill body "__kw_dia" 0.5)`,
		},
		{
			name:   "multiple keywords",
			input:  `(rect-tube :width 4 :height 2)`,
			expect: `(rect_tube "__kw_width" 4 "__kw_height" 2)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(round-tube :od 2)`,
			expect: `(round_tube "__kw_od" 2)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(drill body :at -5)`,
			expect: `(drill body "__kw_at" -5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:leg-a`,
			expect: `"__kw_leg-a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Argument parsing tests
// ---------------------------------------------------------------------------

func TestParseArgsMixed(t *testing.T) {
	args := []zygo.Sexp{
		&zygo.SexpStr{S: "positional"},
		&zygo.SexpStr{S: "__kw_dia"},
		&zygo.SexpFloat{Val: 0.5},
		&zygo.SexpStr{S: "__kw_at"},
		&zygo.SexpInt{Val: 5},
	}

	pa := parseArgs(args)
	if len(pa.positional) != 1 {
		t.Fatalf("expected 1 positional arg, got %d", len(pa.positional))
	}
	if s, _ := toString(pa.positional[0]); s != "positional" {
		t.Errorf("positional[0] = %q, want %q", s, "positional")
	}

	dia, err := reqFloat(pa, "drill", "dia")
	if err != nil {
		t.Fatalf("reqFloat(dia): %v", err)
	}
	if dia != 0.5 {
		t.Errorf("dia = %v, want 0.5", dia)
	}

	at, err := reqFloat(pa, "drill", "at")
	if err != nil {
		t.Fatalf("reqFloat(at): %v", err)
	}
	if at != 5 {
		t.Errorf("at = %v, want 5", at)
	}

	if _, err := reqFloat(pa, "drill", "depth"); err == nil {
		t.Error("expected error for missing required keyword")
	}

	depth, err := optFloat(pa, "drill", "depth", 1.25)
	if err != nil {
		t.Fatalf("optFloat(depth): %v", err)
	}
	if depth != 1.25 {
		t.Errorf("depth default = %v, want 1.25", depth)
	}
}

func TestToFloat64RejectsNonNumbers(t *testing.T) {
	if _, err := toFloat64(&zygo.SexpStr{S: "nope"}); err == nil {
		t.Error("expected error converting string to float")
	}
	if v, err := toFloat64(&zygo.SexpInt{Val: 3}); err != nil || v != 3 {
		t.Errorf("toFloat64(int 3) = %v, %v", v, err)
	}
}
