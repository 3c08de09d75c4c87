package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Points", "Panagram"}
	rows := [][]string{
		{"bottle", "23", "Panagram"},
		{"tool", "7", ""},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true}, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word    Points  Panagram" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "bottle      23  Panagram" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "tool         7" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"W", "P"}, [][]string{{"日本", "1"}}, nil, nil)
	if lines[0] != "W     P" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
