package subitem

import (
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []SubItem{
		{ID: "sub-1", Text: "buy milk", Completed: false},
		{ID: "sub-1700000000000", Text: "call plumber", Completed: true},
		{ID: "sub-2", Text: `text with "quotes" and {braces}`, Completed: false},
		{ID: "sub-3", Text: "", Completed: true},
	}
	for _, want := range cases {
		got := Decode(Encode(want), 99)
		if got != want {
			t.Errorf("round trip changed sub-item: want %+v, got %+v", want, got)
		}
	}
}

func TestDecodeIsTotal(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"plain text", "pick up groceries"},
		{"empty string", ""},
		{"malformed json", `{"id":"sub-1","text":`},
		{"json non-object", `42`},
		{"json string", `"hello"`},
		{"json null", "null"},
		{"object missing id", `{"text":"x","completed":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.input, 7)
			if got.ID != "sub-7" {
				t.Errorf("expected synthesized id sub-7, got %q", got.ID)
			}
			if got.Text != tc.input {
				t.Errorf("expected original string as text, got %q", got.Text)
			}
			if got.Completed {
				t.Error("fallback sub-item must be unchecked")
			}
		})
	}
}

func TestDecodeLegacyPlainTextKeepsIndex(t *testing.T) {
	got := Decode("old entry from before checklists", 0)
	if got.ID != "sub-0" {
		t.Errorf("expected sub-0, got %q", got.ID)
	}
	got = Decode("another", 3)
	if got.ID != "sub-3" {
		t.Errorf("expected sub-3, got %q", got.ID)
	}
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got := NewID(now); got != "sub-1700000000123" {
		t.Errorf("unexpected id %q", got)
	}
}
