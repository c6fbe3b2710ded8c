package obj

import (
	"fmt"
	"strings"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var uiFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// UIFace returns the face used for all in-game text.
func UIFace() text.Face {
	return uiFace
}

// WrapText word-wraps s to fit the given pixel width, honoring embedded
// newlines. A single word wider than the box cannot be wrapped and yields an
// error.
func WrapText(s string, face text.Face, width float64) ([]string, error) {
	var out []string
	for _, requested := range strings.Split(s, "\n") {
		if text.Advance(requested, face) <= width {
			out = append(out, requested)
			continue
		}
		words := strings.Fields(requested)
		for _, word := range words {
			if text.Advance(word, face) >= width {
				return nil, fmt.Errorf("textrect: word %q is too wide for a %.0fpx box", word, width)
			}
		}
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if text.Advance(candidate, face) < width {
				line = candidate
				continue
			}
			out = append(out, line)
			line = word
		}
		out = append(out, line)
	}
	return out, nil
}

// LineHeight returns the vertical advance for the face.
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
