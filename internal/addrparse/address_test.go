package addrparse

import "testing"

func TestParseListSingleAddrSpec(t *testing.T) {
	got, err := ParseList([]byte("user@example.com"))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(got.List) != 1 {
		t.Fatalf("List = %v, want 1 entry", got.List)
	}
	if got.List[0].LocalPart != "user" || got.List[0].Domain != "example.com" {
		t.Errorf("got %+v", got.List[0])
	}
}

func TestParseListNameAddr(t *testing.T) {
	got, err := ParseList([]byte(`John Doe <john@example.com>`))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(got.List) != 1 {
		t.Fatalf("List = %v, want 1 entry", got.List)
	}
	m := got.List[0]
	if m.DisplayName != "John Doe" {
		t.Errorf("DisplayName = %q, want %q", m.DisplayName, "John Doe")
	}
	if m.LocalPart != "john" || m.Domain != "example.com" {
		t.Errorf("addr-spec = %q@%q", m.LocalPart, m.Domain)
	}
}

func TestParseListQuotedDisplayName(t *testing.T) {
	got, err := ParseList([]byte(`"Doe, John" <john@example.com>`))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(got.List) != 1 {
		t.Fatalf("List = %v, want 1 entry", got.List)
	}
	if got.List[0].DisplayName != "Doe, John" {
		t.Errorf("DisplayName = %q, want %q", got.List[0].DisplayName, "Doe, John")
	}
}

func TestParseListMultipleMailboxes(t *testing.T) {
	got, err := ParseList([]byte("Alice <alice@example.com>, Bob <bob@example.org>"))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(got.List) != 2 {
		t.Fatalf("List = %v, want 2 entries", got.List)
	}
	if got.List[0].LocalPart != "alice" || got.List[1].LocalPart != "bob" {
		t.Errorf("got %+v", got.List)
	}
}

func TestParseListGroup(t *testing.T) {
	got, err := ParseList([]byte("Undisclosed recipients:;"))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if got.Group != "Undisclosed recipients" {
		t.Errorf("Group = %q, want %q", got.Group, "Undisclosed recipients")
	}
	if len(got.List) != 0 {
		t.Errorf("List = %v, want empty group", got.List)
	}
}

func TestParseListGroupWithMembers(t *testing.T) {
	got, err := ParseList([]byte("A Group: alice@example.com, bob@example.com;"))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if got.Group != "A Group" {
		t.Errorf("Group = %q, want %q", got.Group, "A Group")
	}
	if len(got.List) != 2 {
		t.Fatalf("List = %v, want 2 members", got.List)
	}
}
