package text

import (
	"errors"
	"testing"
)

// mustText builds a Text from a string the test knows is valid UTF-8.
func mustText(t *testing.T, s string) Text {
	t.Helper()
	txt, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q) failed: %v", s, err)
	}
	return txt
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ascii", "hello"},
		{"two byte runes", "héllo"},
		{"three byte runes", "日本語"},
		{"four byte runes", "a🎉b"},
		{"mixed", "Päivää 🌍 world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt, err := FromString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if txt.String() != tt.input {
				t.Errorf("String() = %q, want %q", txt.String(), tt.input)
			}
			if txt.Len() != len(tt.input) {
				t.Errorf("Len() = %d, want %d", txt.Len(), len(tt.input))
			}
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lone continuation", "\x80"},
		{"truncated sequence", "日"[:2]},
		{"overlong encoding", "\xc0\xaf"},
		{"surrogate half", "\xed\xa0\x80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromString(tt.input); !errors.Is(err, ErrInvalidUTF8) {
				t.Errorf("FromString(%q) error = %v, want ErrInvalidUTF8", tt.input, err)
			}
			if _, err := FromBytes([]byte(tt.input)); !errors.Is(err, ErrInvalidUTF8) {
				t.Errorf("FromBytes(%q) error = %v, want ErrInvalidUTF8", tt.input, err)
			}
		})
	}
}

func TestFromBytesCopies(t *testing.T) {
	b := []byte("hello")
	txt, err := FromBytes(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b[0] = 'y'
	if txt.String() != "hello" {
		t.Errorf("Text changed after mutating source bytes: %q", txt.String())
	}
}

func TestEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty should be empty")
	}
	if Empty.Len() != 0 {
		t.Errorf("Empty.Len() = %d, want 0", Empty.Len())
	}
	if Empty != (Text{}) {
		t.Error("zero value should equal Empty")
	}

	empty, err := FromString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != Empty {
		t.Error("FromString(\"\") should return the canonical Empty")
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{"both empty", "", "", ""},
		{"left empty", "", "world", "world"},
		{"right empty", "hello", "", "hello"},
		{"both set", "hello ", "world", "hello world"},
		{"multibyte", "日本", "語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustText(t, tt.a).Concat(mustText(t, tt.b))
			if got.String() != tt.expected {
				t.Errorf("got %q, want %q", got.String(), tt.expected)
			}
		})
	}
}

func TestConcatIdentity(t *testing.T) {
	txt := mustText(t, "hello")
	if got := txt.Concat(Empty); got != txt {
		t.Error("Concat with Empty on the right should return the receiver")
	}
	if got := Empty.Concat(txt); got != txt {
		t.Error("Concat with Empty on the left should return the argument")
	}
}

func TestDecodeFront(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedRune rune
		expectedRest string
	}{
		{"ascii", "abc", 'a', "bc"},
		{"two byte", "éx", 'é', "x"},
		{"three byte", "日本", '日', "本"},
		{"four byte", "🎉!", '🎉', "!"},
		{"single rune", "z", 'z', ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rest, ok := mustText(t, tt.input).DecodeFront()
			if !ok {
				t.Fatal("DecodeFront returned ok=false")
			}
			if r != tt.expectedRune {
				t.Errorf("rune = %q, want %q", r, tt.expectedRune)
			}
			if rest.String() != tt.expectedRest {
				t.Errorf("rest = %q, want %q", rest.String(), tt.expectedRest)
			}
		})
	}

	if _, _, ok := Empty.DecodeFront(); ok {
		t.Error("DecodeFront on empty should return ok=false")
	}
}

func TestDecodeBack(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedRest string
		expectedRune rune
	}{
		{"ascii", "abc", "ab", 'c'},
		{"two byte", "xé", "x", 'é'},
		{"three byte", "日本", "日", '本'},
		{"four byte", "!🎉", "!", '🎉'},
		{"single rune", "z", "", 'z'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, r, ok := mustText(t, tt.input).DecodeBack()
			if !ok {
				t.Fatal("DecodeBack returned ok=false")
			}
			if r != tt.expectedRune {
				t.Errorf("rune = %q, want %q", r, tt.expectedRune)
			}
			if rest.String() != tt.expectedRest {
				t.Errorf("rest = %q, want %q", rest.String(), tt.expectedRest)
			}
		})
	}

	if _, _, ok := Empty.DecodeBack(); ok {
		t.Error("DecodeBack on empty should return ok=false")
	}
}

func TestDecodeExhaustionCanonical(t *testing.T) {
	_, rest, _ := mustText(t, "a").DecodeFront()
	if rest != Empty {
		t.Error("DecodeFront exhaustion should yield the canonical Empty")
	}
	rest, _, _ = mustText(t, "a").DecodeBack()
	if rest != Empty {
		t.Error("DecodeBack exhaustion should yield the canonical Empty")
	}
}

func TestSingleton(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected string
	}{
		{"one byte", 'a', "a"},
		{"two bytes", 'é', "é"},
		{"three bytes", '語', "語"},
		{"four bytes", '🎉', "🎉"},
		{"surrogate half", 0xD800, "�"},
		{"beyond max rune", 0x110000, "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Singleton(tt.input)
			if got.String() != tt.expected {
				t.Errorf("got %q, want %q", got.String(), tt.expected)
			}
			if got.RuneCount() != 1 {
				t.Errorf("RuneCount() = %d, want 1", got.RuneCount())
			}
		})
	}
}

func TestRuneIterator(t *testing.T) {
	input := "a日🎉"
	it := mustText(t, input).Runes()

	var runes []rune
	var offsets []int
	for it.Next() {
		runes = append(runes, it.Rune())
		offsets = append(offsets, it.Offset())
	}

	expected := []rune{'a', '日', '🎉'}
	expectedOffsets := []int{0, 1, 4}
	if len(runes) != len(expected) {
		t.Fatalf("got %d runes, want %d", len(runes), len(expected))
	}
	for i := range expected {
		if runes[i] != expected[i] {
			t.Errorf("rune %d = %q, want %q", i, runes[i], expected[i])
		}
		if offsets[i] != expectedOffsets[i] {
			t.Errorf("offset %d = %d, want %d", i, offsets[i], expectedOffsets[i])
		}
	}
}

func TestReverseRuneIterator(t *testing.T) {
	input := "a日🎉"
	it := mustText(t, input).ReverseRunes()

	var runes []rune
	var offsets []int
	for it.Next() {
		runes = append(runes, it.Rune())
		offsets = append(offsets, it.Offset())
	}

	expected := []rune{'🎉', '日', 'a'}
	expectedOffsets := []int{4, 1, 0}
	if len(runes) != len(expected) {
		t.Fatalf("got %d runes, want %d", len(runes), len(expected))
	}
	for i := range expected {
		if runes[i] != expected[i] {
			t.Errorf("rune %d = %q, want %q", i, runes[i], expected[i])
		}
		if offsets[i] != expectedOffsets[i] {
			t.Errorf("offset %d = %d, want %d", i, offsets[i], expectedOffsets[i])
		}
	}
}
