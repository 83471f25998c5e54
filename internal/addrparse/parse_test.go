package addrparse

import "testing"

func mailboxOf(t *testing.T, raw string) *Cursor {
	t.Helper()
	c := NewCursor([]byte(raw))
	if err := c.Mailbox(); err != nil {
		t.Fatalf("Mailbox(%q): unexpected error: %v", raw, err)
	}
	return c
}

func TestCursorMailboxSimple(t *testing.T) {
	c := mailboxOf(t, "user@example.com")
	if c.LocalPart != "user" {
		t.Errorf("LocalPart = %q, want user", c.LocalPart)
	}
	if c.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", c.Domain)
	}
}

func TestCursorMailboxSubdomain(t *testing.T) {
	c := mailboxOf(t, "first.last@mail.sub.example.org")
	if c.LocalPart != "first.last" {
		t.Errorf("LocalPart = %q", c.LocalPart)
	}
	if c.Domain != "mail.sub.example.org" {
		t.Errorf("Domain = %q", c.Domain)
	}
}

func TestCursorMailboxQuotedLocalPart(t *testing.T) {
	c := mailboxOf(t, `"john doe"@example.com`)
	if c.LocalPart != "john doe" {
		t.Errorf("LocalPart = %q, want %q", c.LocalPart, "john doe")
	}
	if c.Domain != "example.com" {
		t.Errorf("Domain = %q", c.Domain)
	}
}

func TestCursorMailboxIPv4Literal(t *testing.T) {
	c := mailboxOf(t, "user@[192.168.1.1]")
	if c.Domain != "192.168.1.1" {
		t.Errorf("Domain = %q, want 192.168.1.1", c.Domain)
	}
}

func TestCursorMailboxIPv6Literal(t *testing.T) {
	c := mailboxOf(t, "user@[IPv6:2001:db8::1]")
	if c.Domain != "2001:db8::1" {
		t.Errorf("Domain = %q, want 2001:db8::1", c.Domain)
	}
}

func TestCursorMailboxMissingAt(t *testing.T) {
	c := NewCursor([]byte("notanaddress"))
	if err := c.Mailbox(); err == nil {
		t.Fatal("expected error for address with no @")
	}
}

func TestCursorReset(t *testing.T) {
	c := mailboxOf(t, "user@example.com")
	c.set([]byte("other@example.net"))
	if err := c.Mailbox(); err != nil {
		t.Fatalf("Mailbox after Reset: %v", err)
	}
	if c.LocalPart != "other" || c.Domain != "example.net" {
		t.Errorf("stale state after Reset: local=%q domain=%q", c.LocalPart, c.Domain)
	}
}
