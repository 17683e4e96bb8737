package entities

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLeadSplitName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Cher", "Cher", "Customer"},
		{"", "Unknown", "Customer"},
		{"   ", "Unknown", "Customer"},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
	}
	for _, tc := range cases {
		first, last := (Lead{Name: tc.name}).SplitName()
		if first != tc.first || last != tc.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tc.name, first, last, tc.first, tc.last)
		}
	}
}

func TestLeadJobTitle(t *testing.T) {
	t.Run("message is the title", func(t *testing.T) {
		l := Lead{Message: "Fix leaking faucet"}
		if got := l.JobTitle(); got != "Fix leaking faucet" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("long message truncated to 60", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'x'
		}
		l := Lead{Message: string(long)}
		if got := l.JobTitle(); len(got) != 60 {
			t.Fatalf("len = %d, want 60", len(got))
		}
	})

	t.Run("truncation counts runes, not bytes", func(t *testing.T) {
		l := Lead{Message: strings.Repeat("é", 61)}
		got := l.JobTitle()
		if !utf8.ValidString(got) {
			t.Fatalf("title is not valid UTF-8: %q", got)
		}
		if n := utf8.RuneCountInString(got); n != 60 {
			t.Fatalf("rune count = %d, want 60", n)
		}
	})

	t.Run("empty message uses zip fallback", func(t *testing.T) {
		if got := (Lead{Zip: "31601"}).JobTitle(); got != "Service Estimate (31601)" {
			t.Fatalf("got %q", got)
		}
		if got := (Lead{}).JobTitle(); got != "Service Estimate (no zip)" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestParseLeadStatus(t *testing.T) {
	if s, ok := ParseLeadStatus("Booked"); !ok || s != LeadStatusConverted {
		t.Fatalf("legacy Booked should normalize to Converted, got %q %v", s, ok)
	}
	if _, ok := ParseLeadStatus("bogus"); ok {
		t.Fatalf("bogus status accepted")
	}
	if s, ok := ParseLeadStatus("Not interested"); !ok || s != LeadStatusNotInterested {
		t.Fatalf("got %q %v", s, ok)
	}
}

func TestLeadIsConverted(t *testing.T) {
	if (Lead{Status: LeadStatusNew}).IsConverted() {
		t.Fatalf("new lead reported converted")
	}
	if !(Lead{Status: LeadStatusConverted}).IsConverted() {
		t.Fatalf("converted status not detected")
	}
	if !(Lead{Status: LeadStatusNew, ConvertedToCustomerID: "c1"}).IsConverted() {
		t.Fatalf("stamped customer id not detected")
	}
}
