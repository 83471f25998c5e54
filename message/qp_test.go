package message

import "testing"

func TestDecodeQuotedPrintableBasic(t *testing.T) {
	data := []byte("Hello=20World=0A")
	consumed, out, ok := DecodeQuotedPrintable(data, nil, false)
	if !ok {
		t.Fatalf("decode failed")
	}
	if consumed != len(data) {
		t.Fatalf("consumed = %d, want %d", consumed, len(data))
	}
	if string(out) != "Hello World\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestDecodeQuotedPrintableSoftLineBreak(t *testing.T) {
	data := []byte("Hello=\r\nWorld")
	_, out, ok := DecodeQuotedPrintable(data, nil, false)
	if !ok {
		t.Fatalf("decode failed")
	}
	if string(out) != "HelloWorld" {
		t.Fatalf("out = %q, want soft line break elided", out)
	}
}

func TestDecodeQuotedPrintableSoftLineBreakBareLF(t *testing.T) {
	data := []byte("Hello=\nWorld")
	_, out, ok := DecodeQuotedPrintable(data, nil, false)
	if !ok {
		t.Fatalf("decode failed")
	}
	if string(out) != "HelloWorld" {
		t.Fatalf("out = %q", out)
	}
}

func TestDecodeQuotedPrintableDoubleEqualsFails(t *testing.T) {
	data := []byte("Hello==20")
	_, _, ok := DecodeQuotedPrintable(data, nil, false)
	if ok {
		t.Fatalf("expected failure on a literal double '='")
	}
}

func TestDecodeQuotedPrintableBadHexFails(t *testing.T) {
	data := []byte("Hello=ZZWorld")
	_, _, ok := DecodeQuotedPrintable(data, nil, false)
	if ok {
		t.Fatalf("expected failure on invalid hex digits")
	}
}

func TestDecodeQuotedPrintableIncompleteAtEOFFails(t *testing.T) {
	data := []byte("Hello=2")
	_, _, ok := DecodeQuotedPrintable(data, nil, false)
	if ok {
		t.Fatalf("expected failure on a truncated escape at EOF")
	}
}

func TestDecodeQuotedPrintableWordEncoding(t *testing.T) {
	data := []byte("Hello_World=3D")
	_, out, ok := DecodeQuotedPrintable(data, nil, true)
	if !ok {
		t.Fatalf("decode failed")
	}
	if string(out) != "Hello World=" {
		t.Fatalf("out = %q", out)
	}
}

func TestDecodeQuotedPrintableWordEncodingBareLFFails(t *testing.T) {
	data := []byte("Hello\nWorld")
	_, _, ok := DecodeQuotedPrintable(data, nil, true)
	if ok {
		t.Fatalf("a bare LF inside an encoded-word should be a failure")
	}
}

func TestDecodeQuotedPrintableStopsAtBoundary(t *testing.T) {
	data := []byte("Hello World\r\n--simpleboundary\r\nnext part")
	boundary := []byte("--simpleboundary")
	consumed, out, ok := DecodeQuotedPrintable(data, boundary, false)
	if !ok {
		t.Fatalf("decode failed")
	}
	if string(out) != "Hello World" {
		t.Fatalf("out = %q, want trailing CRLF before the boundary trimmed", out)
	}
	want := len("Hello World\r\n--simpleboundary")
	if consumed != want {
		t.Fatalf("consumed = %d, want %d", consumed, want)
	}
}

func TestDecodeQuotedPrintableMissingBoundaryFails(t *testing.T) {
	data := []byte("Hello World, no boundary here")
	_, _, ok := DecodeQuotedPrintable(data, []byte("--missing"), false)
	if ok {
		t.Fatalf("expected failure when the required boundary never appears")
	}
}
