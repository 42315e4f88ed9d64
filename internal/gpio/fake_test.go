package gpio

import (
	"errors"
	"testing"
)

func TestFakeLine_RecordsWritesAndServesReads(t *testing.T) {
	f := NewFakeLine()

	if lvl, err := f.ReadLevel(); err != nil || lvl != Low {
		t.Fatalf("fresh line: got %v, %v; want LOW, nil", lvl, err)
	}

	if err := f.SetLevel(High); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if lvl, _ := f.ReadLevel(); lvl != High {
		t.Fatalf("expected HIGH after write, got %v", lvl)
	}
	if err := f.SetLevel(Low); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	if len(f.Writes) != 2 || f.Writes[0] != High || f.Writes[1] != Low {
		t.Fatalf("unexpected write log: %v", f.Writes)
	}
}

func TestFakeLine_ForceDoesNotRecordAWrite(t *testing.T) {
	f := NewFakeLine()

	f.Force(High)
	if lvl, _ := f.ReadLevel(); lvl != High {
		t.Fatalf("expected forced HIGH, got %v", lvl)
	}
	if len(f.Writes) != 0 {
		t.Fatalf("Force must not count as a write, got %v", f.Writes)
	}
}

func TestFakeLine_Errors(t *testing.T) {
	f := NewFakeLine()
	f.SetError = errors.New("set boom")
	f.ReadError = errors.New("read boom")

	if err := f.SetLevel(High); err == nil {
		t.Fatal("expected SetLevel error")
	}
	if _, err := f.ReadLevel(); err == nil {
		t.Fatal("expected ReadLevel error")
	}
}

func TestFakeLine_Close(t *testing.T) {
	f := NewFakeLine()
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !f.Closed {
		t.Fatal("expected Closed=true")
	}
}

func TestLevel_String(t *testing.T) {
	if High.String() != "HIGH" || Low.String() != "LOW" {
		t.Fatalf("unexpected level strings: %q, %q", High.String(), Low.String())
	}
}
