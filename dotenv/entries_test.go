package dotenv

import (
	"errors"
	"testing"
)

func TestCollectAll(t *testing.T) {
	input := "A=1\nB='x\nC=3\nD=\"\\q\"\n"

	entries, err := CollectAll(Parse(input))
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	pes := ParseErrors(err)
	if len(pes) != 2 {
		t.Fatalf("expected 2 parse errors, got %d", len(pes))
	}

	if pes[0].Line != 2 || pes[0].Kind != KindUnterminatedQuote {
		t.Errorf("first error = %v", pes[0])
	}

	if pes[1].Line != 4 || pes[1].Kind != KindInvalidEscape {
		t.Errorf("second error = %v", pes[1])
	}
}

func TestCollect_StopsAtFirstError(t *testing.T) {
	entries, err := Collect(Parse("A=1\n1B=2\nC=3\n"))

	if len(entries) != 1 || entries[0].Name != "A" {
		t.Errorf("entries = %+v", entries)
	}

	pes := ParseErrors(err)
	if len(pes) != 1 || pes[0].Kind != KindInvalidIdentifier {
		t.Errorf("errors = %v", pes)
	}
}

func TestDedupe(t *testing.T) {
	entries := []Entry{
		{Name: "A", Value: "1", Line: 1},
		{Name: "B", Value: "2", Line: 2},
		{Name: "A", Value: "3", Line: 3},
	}

	got := Dedupe(entries)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	if got[0].Name != "A" || got[0].Value != "3" || got[0].Line != 3 {
		t.Errorf("first = %+v", got[0])
	}

	if got[1].Name != "B" {
		t.Errorf("second = %+v", got[1])
	}
}

func TestParseErrors_Nil(t *testing.T) {
	if got := ParseErrors(nil); got != nil {
		t.Errorf("got %v", got)
	}

	if got := ParseErrors(errors.New("other")); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestParseErrors_Wrapped(t *testing.T) {
	_, err := CollectAll(Parse("1A=x\nB='open\n"))

	got := ParseErrors(ErrParse.Wrap(err))
	if len(got) != 2 {
		t.Fatalf("got %d errors, want 2", len(got))
	}

	if got[0].Line != 1 || got[1].Line != 2 {
		t.Errorf("lines = %d, %d", got[0].Line, got[1].Line)
	}
}

func TestError_Is(t *testing.T) {
	err := ErrInvalidFilename.With()
	if !errors.Is(err, ErrInvalidFilename) {
		t.Error("copy made by With should match its sentinel")
	}

	if errors.Is(err, ErrParse) {
		t.Error("different sentinels should not match")
	}

	wrapped := ErrUnreadable.Wrap(errors.New("boom"))
	if got := wrapped.Error(); got != "file not readable: boom" {
		t.Errorf("got %q", got)
	}
}
