package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g, err := FromRows([][]bool{{true, false}, {false, true}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf).Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != gridPosBlock+gridPosEmpty {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != gridPosEmpty+gridPosBlock {
		t.Errorf("row 1 = %q", lines[1])
	}
}
