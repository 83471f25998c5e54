package message

import "testing"

func TestParseHeaderBlockBasic(t *testing.T) {
	raw := []byte("From: alice@example.com\r\nSubject: Hi\r\n\r\nbody")
	headers, pos, ok := parseHeaderBlock(raw, 0)
	if !ok {
		t.Fatalf("expected headers to be read")
	}
	if len(headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(headers))
	}
	if headers[0].Name != "from" || headers[1].Name != "subject" {
		t.Fatalf("header names not lowercased: %+v", headers)
	}
	if string(raw[pos:]) != "body" {
		t.Fatalf("pos landed at %q, want start of body", raw[pos:])
	}
}

func TestParseHeaderBlockFolding(t *testing.T) {
	raw := []byte("Subject: long\r\n subject line\r\n\r\n")
	headers, _, ok := parseHeaderBlock(raw, 0)
	if !ok || len(headers) != 1 {
		t.Fatalf("expected one folded header")
	}
	if headers[0].Value.Raw != "long subject line" {
		t.Fatalf("folded raw = %q", headers[0].Value.Raw)
	}
}

func TestParseHeaderBlockNoHeadersIsNotOK(t *testing.T) {
	raw := []byte("\r\nbody only")
	_, _, ok := parseHeaderBlock(raw, 0)
	if ok {
		t.Fatalf("expected ok=false for an immediate blank line")
	}
}

func TestParseHeaderBlockMalformedLineSkipped(t *testing.T) {
	raw := []byte("not a header line\r\nFrom: bob@example.com\r\n\r\n")
	headers, _, ok := parseHeaderBlock(raw, 0)
	if !ok || len(headers) != 1 {
		t.Fatalf("expected the malformed line skipped and From kept: %+v", headers)
	}
}

func TestParseAddressHeaderSingleMailbox(t *testing.T) {
	hv := parseAddressHeader("Alice Smith <alice@example.com>")
	if len(hv.Addresses) != 1 {
		t.Fatalf("got %d addresses, want 1", len(hv.Addresses))
	}
	a := hv.Addresses[0]
	if a.DisplayName != "Alice Smith" || a.LocalPart != "alice" || a.Domain != "example.com" {
		t.Fatalf("got %+v", a)
	}
}

func TestParseAddressHeaderMultipleMailboxes(t *testing.T) {
	hv := parseAddressHeader("alice@example.com, bob@example.com")
	if len(hv.Addresses) != 2 {
		t.Fatalf("got %d addresses, want 2: %+v", len(hv.Addresses), hv.Addresses)
	}
}

func TestParseDateHeaderValid(t *testing.T) {
	hv := parseDateHeader("Mon, 02 Jan 2006 15:04:05 -0700")
	if !hv.DateValid {
		t.Fatalf("expected a valid date")
	}
	if hv.Date.Year() != 2006 {
		t.Fatalf("got year %d, want 2006", hv.Date.Year())
	}
}

func TestParseDateHeaderInvalid(t *testing.T) {
	hv := parseDateHeader("not a date")
	if hv.DateValid {
		t.Fatalf("expected DateValid=false for garbage input")
	}
}

func TestParseMessageIDHeaderSingle(t *testing.T) {
	hv := parseMessageIDHeader("<abc123@example.com>")
	if len(hv.MessageIDs) != 1 || hv.MessageIDs[0] != "abc123@example.com" {
		t.Fatalf("got %+v", hv.MessageIDs)
	}
}

func TestParseMessageIDHeaderReferencesList(t *testing.T) {
	hv := parseMessageIDHeader("<one@example.com> <two@example.com>")
	if len(hv.MessageIDs) != 2 {
		t.Fatalf("got %d ids, want 2", len(hv.MessageIDs))
	}
	if hv.MessageIDs[0] != "one@example.com" || hv.MessageIDs[1] != "two@example.com" {
		t.Fatalf("got %+v", hv.MessageIDs)
	}
}

func TestParseRawHeaderDecodesEncodedWord(t *testing.T) {
	hv := parseRawHeader("=?utf-8?B?SGVsbG8=?=")
	if hv.Raw != "Hello" {
		t.Fatalf("got %q, want decoded encoded-word", hv.Raw)
	}
}
