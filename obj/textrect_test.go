package obj

import (
	"strings"
	"testing"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestWrapTextFits(t *testing.T) {
	face := UIFace()

	lines, err := WrapText("short", face, 200)
	if err != nil {
		t.Fatalf("WrapText: %v", err)
	}
	if len(lines) != 1 || lines[0] != "short" {
		t.Fatalf("lines = %q, want [short]", lines)
	}
}

func TestWrapTextWraps(t *testing.T) {
	face := UIFace()
	const width = 100.0

	lines, err := WrapText("the quick brown fox jumps over the lazy dog", face, width)
	if err != nil {
		t.Fatalf("WrapText: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("expected the sentence to wrap, got %q", lines)
	}
	for _, line := range lines {
		if text.Advance(line, face) >= width {
			t.Fatalf("line %q is wider than the box", line)
		}
	}
	joined := strings.Join(lines, " ")
	if joined != "the quick brown fox jumps over the lazy dog" {
		t.Fatalf("wrapped text lost words: %q", joined)
	}
}

func TestWrapTextHonorsNewlines(t *testing.T) {
	face := UIFace()

	lines, err := WrapText("one\ntwo", face, 200)
	if err != nil {
		t.Fatalf("WrapText: %v", err)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("lines = %q, want [one two]", lines)
	}
}

func TestWrapTextOverwideWord(t *testing.T) {
	face := UIFace()

	if _, err := WrapText("supercalifragilisticexpialidocious and more", face, 50); err == nil {
		t.Fatalf("expected an error for a word wider than the box")
	}
}
