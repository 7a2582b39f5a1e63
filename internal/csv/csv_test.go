package csv

import "testing"

func TestParse_Basic(t *testing.T) {
	rows := Parse("tracking_number,batch_id\nABC123,B1\nXYZ789,B2\n")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[0].Get("tracking_number"); got != "ABC123" {
		t.Errorf("tracking_number = %q, want %q", got, "ABC123")
	}
	if got := rows[1].Get("batch_id"); got != "B2" {
		t.Errorf("batch_id = %q, want %q", got, "B2")
	}
}

func TestParse_HeaderOrderPreserved(t *testing.T) {
	rows := Parse("c,a,b\n1,2,3\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"c", "a", "b"}
	for i, h := range rows[0].Headers {
		if h != want[i] {
			t.Errorf("Headers[%d] = %q, want %q", i, h, want[i])
		}
	}
}

func TestParse_QuotedComma(t *testing.T) {
	rows := Parse("city,batch_id\n\"Moscow, Russia\",B1\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("city"); got != "Moscow, Russia" {
		t.Errorf("city = %q, want %q", got, "Moscow, Russia")
	}
	if got := rows[0].Get("batch_id"); got != "B1" {
		t.Errorf("batch_id = %q, want %q", got, "B1")
	}
}

func TestParse_EscapedQuote(t *testing.T) {
	rows := Parse("note\n\"she said \"\"hi\"\"\"\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("note"); got != `she said "hi"` {
		t.Errorf("note = %q, want %q", got, `she said "hi"`)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	// Best-effort policy: an unterminated quote consumes to end of line
	// instead of failing the whole parse.
	rows := Parse("note,batch_id\n\"oops,B1\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("note"); got != "oops,B1" {
		t.Errorf("note = %q, want %q", got, "oops,B1")
	}
	if got := rows[0].Get("batch_id"); got != "" {
		t.Errorf("batch_id = %q, want empty", got)
	}
}

func TestParse_BOMAndCRLF(t *testing.T) {
	rows := Parse("\uFEFFtracking_number,batch_id\r\nABC123,B1\r\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("tracking_number"); got != "ABC123" {
		t.Errorf("tracking_number = %q, want %q (BOM not stripped?)", got, "ABC123")
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	rows := Parse("a,b\n\n1,2\n   \n3,4\n")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestParse_MissingTrailingCells(t *testing.T) {
	rows := Parse("a,b,c\n1,2\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("c"); got != "" {
		t.Errorf("c = %q, want empty fill", got)
	}
	if got := rows[0].Get("b"); got != "2" {
		t.Errorf("b = %q, want %q", got, "2")
	}
}

func TestParse_CellsTrimmed(t *testing.T) {
	rows := Parse(" a , b \n  1  ,  2  \n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("a"); got != "1" {
		t.Errorf("a = %q, want %q", got, "1")
	}
}

func TestParse_Empty(t *testing.T) {
	if rows := Parse(""); rows != nil {
		t.Errorf("expected nil rows for empty input, got %v", rows)
	}
	if rows := Parse("\n\n  \n"); rows != nil {
		t.Errorf("expected nil rows for blank input, got %v", rows)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	if rows := Parse("a,b,c\n"); len(rows) != 0 {
		t.Errorf("expected 0 rows for header-only input, got %d", len(rows))
	}
}
