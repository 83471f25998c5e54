package charset

import "testing"

func TestDecoderForKnownAliases(t *testing.T) {
	names := []string{
		"US-Ascii",
		"utf-8",
		"csgb18030",
		"extended_unix_code_packed_format_for_japanese",
		"ISO-8859-1",
		"windows-1252",
		"Shift_JIS",
	}
	for _, name := range names {
		fn, ok := DecoderFor([]byte(name))
		if !ok {
			t.Errorf("DecoderFor(%q) = not found, want a decoder", name)
			continue
		}
		if fn == nil {
			t.Errorf("DecoderFor(%q) returned ok=true but nil func", name)
		}
	}
}

func TestDecoderForUnknown(t *testing.T) {
	for _, name := range []string{"nosuch", "totally-made-up-charset-name", ""} {
		if _, ok := DecoderFor([]byte(name)); ok {
			t.Errorf("DecoderFor(%q) = found, want not found", name)
		}
	}
}

func TestDecoderForCaseInsensitive(t *testing.T) {
	fnLower, okLower := DecoderFor([]byte("utf-8"))
	fnUpper, okUpper := DecoderFor([]byte("UTF-8"))
	fnMixed, okMixed := DecoderFor([]byte("Utf-8"))
	if !okLower || !okUpper || !okMixed {
		t.Fatalf("expected all case variants of utf-8 to resolve")
	}
	want := "hello"
	if got := fnLower([]byte("hello")); got != want {
		t.Errorf("lower decode = %q, want %q", got, want)
	}
	if got := fnUpper([]byte("hello")); got != want {
		t.Errorf("upper decode = %q, want %q", got, want)
	}
	if got := fnMixed([]byte("hello")); got != want {
		t.Errorf("mixed decode = %q, want %q", got, want)
	}
}

func TestDecoderForLengthBounds(t *testing.T) {
	if _, ok := DecoderFor([]byte("a")); ok {
		t.Error("expected 1-byte name to be rejected")
	}
	long := make([]byte, maxLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, ok := DecoderFor(long); ok {
		t.Error("expected over-long name to be rejected")
	}
}

func TestASCIIDecodesIdentically(t *testing.T) {
	fn, ok := DecoderFor([]byte("us-ascii"))
	if !ok {
		t.Fatal("us-ascii must resolve")
	}
	if got := fn([]byte("Hello, World!")); got != "Hello, World!" {
		t.Errorf("got %q", got)
	}
}
