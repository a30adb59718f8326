package bitstream

import "testing"

func TestOperandDefCount(t *testing.T) {
	cases := []struct {
		name string
		def  OperandDef
		want int
	}{
		{"literal", LiteralOperand(1), 1},
		{"fixed", FixedOperand(8), 1},
		{"vbr", VBROperand(6), 1},
		{"blob", BlobOperand(), 1},
		{"char6", Char6Operand(), 1},
		{"array-of-char6", ArrayOperand(Char6Operand()), 2},
		{"array-of-vbr", ArrayOperand(VBROperand(8)), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.def.Count(); got != tc.want {
				t.Fatalf("Count() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChar6Alphabet(t *testing.T) {
	cases := []struct {
		ch   byte
		want uint32
	}{
		{'a', 0}, {'z', 25},
		{'A', 26}, {'Z', 51},
		{'0', 52}, {'9', 61},
		{'.', 62}, {'_', 63},
	}

	for _, tc := range cases {
		if got := char6Code(tc.ch); got != tc.want {
			t.Fatalf("char6Code(%q) = %d, want %d", tc.ch, got, tc.want)
		}
	}
}

func TestChar6InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid char6 input")
		}
	}()

	char6Code('!')
}

func TestChar6StringBuildsArray(t *testing.T) {
	v := Char6String("ab")

	if v.Kind != KindArray {
		t.Fatalf("Kind = %v, want KindArray", v.Kind)
	}

	if len(v.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(v.Elements))
	}

	if v.Elements[0].Char6Letter != 'a' || v.Elements[1].Char6Letter != 'b' {
		t.Fatalf("elements = %+v, want a,b", v.Elements)
	}
}
