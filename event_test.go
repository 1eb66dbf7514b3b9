package picojson

import "testing"

func TestKindString(t *testing.T) {
	for _, test := range []struct {
		kind Kind
		want string
	}{
		{StartObject, "StartObject"},
		{EndObject, "EndObject"},
		{StartArray, "StartArray"},
		{EndArray, "EndArray"},
		{Key, "Key"},
		{String, "String"},
		{Number, "Number"},
		{Bool, "Bool"},
		{Null, "Null"},
		{EndDocument, "EndDocument"},
		{Kind(1000), "<unknown>"},
		{Kind(-1), "<unknown>"},
	} {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", test.kind, test.want, got)
		}
	}
}

func TestStrString(t *testing.T) {
	s := Str{Kind: Borrowed, Value: "hello"}
	if s.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", s.String())
	}
	if !s.IsBorrowed() {
		t.Errorf("expected IsBorrowed true for Borrowed kind")
	}
	s.Kind = Unescaped
	if s.IsBorrowed() {
		t.Errorf("expected IsBorrowed false for Unescaped kind")
	}
}
