package main

import (
	"strings"
	"testing"

	"github.com/milk9111/monsterfighter/levels"
)

func TestCellRune(t *testing.T) {
	tests := []struct {
		char rune
		want rune
	}{
		{'#', '▓'},
		{'W', '~'},
		{'.', '.'},
		{'G', '"'},
		{'D', '+'},
		{'x', '?'},
	}
	for _, tc := range tests {
		if got := cellRune(levels.Lookup(tc.char)); got != tc.want {
			t.Errorf("cellRune(%q) = %q, want %q", tc.char, got, tc.want)
		}
	}
}

func TestDoorLines(t *testing.T) {
	m, err := levels.Parse(strings.NewReader("/house.txt 4 5\n#D#\n#.D/cave.txt 3 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := doorLines(m)
	want := []string{
		"door 0 at 1,0 -> house.txt 4,5",
		"door 1 at 2,1 -> cave.txt 3,2",
	}
	if len(got) != len(want) {
		t.Fatalf("doorLines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDoorLinesShippedMap(t *testing.T) {
	m, err := levels.Load(levels.StartMap)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(doorLines(m)); got != 2 {
		t.Fatalf("doors = %d, want 2", got)
	}
}
