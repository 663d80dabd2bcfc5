package infix

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "",
			want:  "",
		},
		{
			input: "42",
			want:  "42",
		},
		{
			input: "3+5*2",
			want:  "3 + 5 * 2",
		},
		{
			input: " 10 -\t4 / 2 ",
			want:  "10 - 4 / 2",
		},
		{
			input: "007",
			want:  "7",
		},
		{
			input: "3 4",
			want:  "3 4",
		},
		{
			input: "++3",
			want:  "+ + 3",
		},
		{
			input: "10 * * 5",
			want:  "10 * * 5",
		},
		{
			input: "9223372036854775807",
			want:  "9223372036854775807",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		tokens, err := Tokenize(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := joinTokens(tokens)
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize(" 12 +\t345")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 4, 6}
	if len(tokens) != len(want) {
		t.Fatalf("want %d tokens but got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Pos != want[i] {
			t.Errorf("token %v: want pos %d but got %d", tok, want[i], tok.Pos)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		pos   int
		char  rune
	}{
		{"a + 5", ErrInvalidCharacter, 0, 'a'},
		{"1 + (2)", ErrInvalidCharacter, 4, '('},
		{"1.5", ErrInvalidCharacter, 1, '.'},
		{"2 ^ 3", ErrInvalidCharacter, 2, '^'},
		{"é1", ErrInvalidCharacter, 0, 'é'},
		{"1 + é", ErrInvalidCharacter, 4, 'é'},
		{"١", ErrInvalidCharacter, 0, '١'},
		{"92233720368547758080", ErrNumberOverflow, 0, 0},
		{"1 + 9223372036854775808", ErrNumberOverflow, 4, 0},
	}
	for _, test := range tests {
		_, err := Tokenize(test.input)
		if !errors.Is(err, test.kind) {
			t.Errorf("want %v for %q but got %v", test.kind, test.input, err)
			continue
		}
		var ie *Error
		if !errors.As(err, &ie) {
			t.Errorf("want *Error for %q but got %T", test.input, err)
			continue
		}
		if ie.Pos != test.pos {
			t.Errorf("want pos %d for %q but got %d", test.pos, test.input, ie.Pos)
		}
		if ie.Char != test.char {
			t.Errorf("want char %q for %q but got %q", test.char, test.input, ie.Char)
		}
	}
}

func TestLexerReaderError(t *testing.T) {
	boom := errors.New("boom")
	l := NewLexer(iotest.ErrReader(boom))
	_, err := l.Next()
	if !errors.Is(err, boom) {
		t.Errorf("want %v but got %v", boom, err)
	}
}

func TestLexerEOF(t *testing.T) {
	l := NewLexer(strings.NewReader("  7  "))
	tok, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenNumber || tok.Value != 7 {
		t.Fatalf("want number 7 but got %v", tok)
	}
	for i := 0; i < 2; i++ {
		tok, err = l.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != TokenEOF {
			t.Fatalf("want EOF but got %v", tok)
		}
	}
	if l.Pos() != 5 {
		t.Errorf("want pos 5 but got %d", l.Pos())
	}
}
