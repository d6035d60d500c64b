package moderation

import (
	"testing"
)

func TestTermFindsBannedKeyword(t *testing.T) {
	f := New(nil)

	term, ok := f.Term("Looking for FWB in Dallas")
	if !ok {
		t.Fatalf("expected a match")
	}
	if term != "fwb" {
		t.Fatalf("expected term %q, got %q", "fwb", term)
	}
}

func TestTermIsCaseInsensitive(t *testing.T) {
	f := New([]string{"escort"})

	if _, ok := f.Term("ESCORT services offered"); !ok {
		t.Fatalf("expected uppercase text to match")
	}
	if _, ok := f.Term("clean room for rent"); ok {
		t.Fatalf("expected clean text not to match")
	}
}

func TestTermMatchesInsideLargerWord(t *testing.T) {
	// Substring containment has no word boundaries: "fun" hides
	// inside "refundable". Intentional behavior, not a bug.
	f := New(nil)

	term, ok := f.Term("Deposit is refundable on move-out")
	if !ok {
		t.Fatalf("expected substring match inside larger word")
	}
	if term != "fun" {
		t.Fatalf("expected term %q, got %q", "fun", term)
	}
}

func TestTermEmptyTextNeverMatches(t *testing.T) {
	f := New(nil)
	if _, ok := f.Term(""); ok {
		t.Fatalf("empty text must never match")
	}
}

func TestCheckReturnsFirstFieldMatch(t *testing.T) {
	f := New([]string{"weed", "escort"})

	match, ok := f.Check([]Field{
		{Name: "title", Text: "Quiet room near downtown"},
		{Name: "description", Text: "no weed, no escort calls"},
		{Name: "contact name", Text: "escort agency"},
	})
	if !ok {
		t.Fatalf("expected a match")
	}
	if match.Field != "description" {
		t.Fatalf("expected first matching field description, got %s", match.Field)
	}
	if match.Term != "weed" {
		t.Fatalf("expected first term in list order, got %q", match.Term)
	}
}

func TestCheckCleanSubmission(t *testing.T) {
	f := New(nil)

	if match, ok := f.Check([]Field{
		{Name: "title", Text: "Available 2bed/2bath Private Room in Plano"},
		{Name: "description", Text: "Rent 800, utilities included, vegetarian kitchen."},
	}); ok {
		t.Fatalf("expected no match, got %v", match)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@mail.example.com"}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "plain", "a@b", "a b@c.d", "@x.y"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestValidContact(t *testing.T) {
	if ValidContact("   ") {
		t.Fatalf("whitespace-only contact must be rejected")
	}
	if !ValidContact("+1 469 555 0101") {
		t.Fatalf("non-empty contact must be accepted")
	}
}
