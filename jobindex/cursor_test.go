package jobindex

import "testing"

func TestParseCursor(t *testing.T) {
	c, err := ParseCursor("")
	if err != nil || c != nil {
		t.Fatalf("empty cursor: %v %v", c, err)
	}
	c, err = ParseCursor(" 30 ")
	if err != nil || c == nil || *c != 30 {
		t.Fatalf("ParseCursor(30) = %v, %v", c, err)
	}
	if FormatCursor(c) != "30" || FormatCursor(nil) != "" {
		t.Fatalf("FormatCursor mismatch")
	}
	for _, bad := range []string{"abc", "-1", "1.5"} {
		if _, err := ParseCursor(bad); !IsKind(err, ErrInvalidFilter) {
			t.Errorf("ParseCursor(%q) err = %v", bad, err)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	err := Wrap(ErrSQL, "search", NotFoundError("posting", "x"))
	if KindOf(err) != ErrSQL {
		t.Fatalf("KindOf = %q", KindOf(err))
	}
	if !IsKind(NotFoundError("skill", "y"), ErrNotFound) {
		t.Fatalf("expected not_found")
	}
	if got := InvalidFilterError("domain", "bad").Error(); got != "invalid_filter: bad (field=domain)" {
		t.Fatalf("Error() = %q", got)
	}
	if KindOf(nil) != "" {
		t.Fatalf("nil error has a kind")
	}
}
