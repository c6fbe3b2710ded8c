package obj

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DialogueBox is a bordered text box drawn over the world. Text is word
// wrapped to the box; text that cannot be wrapped falls back to an error line
// rather than failing the frame.
type DialogueBox struct {
	X, Y float64
	W, H float64

	speaker string
	lines   []string

	fill *ebiten.Image
}

const dialogueBoxPadding = 10.0

func NewDialogueBox(x, y, w, h float64) *DialogueBox {
	return &DialogueBox{X: x, Y: y, W: w, H: h}
}

// SetText replaces the box content with a speaker name and one wrapped line
// of dialogue.
func (b *DialogueBox) SetText(speaker, s string) {
	b.speaker = speaker
	lines, err := WrapText(s, UIFace(), b.W-2*dialogueBoxPadding)
	if err != nil {
		log.Printf("dialogue box: %v", err)
		lines = []string{"Error: text too long or invalid."}
	}
	b.lines = lines
}

func (b *DialogueBox) Draw(screen *ebiten.Image) {
	if b.fill == nil {
		b.fill = ebiten.NewImage(1, 1)
		b.fill.Fill(color.White)
	}

	drawRect := func(x, y, w, h float64, clr color.Color) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(b.fill, op)
	}

	border := color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	drawRect(b.X, b.Y, b.W, b.H, border)
	drawRect(b.X+2, b.Y+2, b.W-4, b.H-4, color.White)

	face := UIFace()
	lh := LineHeight(face)
	y := b.Y + dialogueBoxPadding

	if b.speaker != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(b.X+dialogueBoxPadding, y)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 0x70, G: 0x30, B: 0x10, A: 0xff})
		text.Draw(screen, b.speaker, face, op)
		y += lh * 1.5
	}

	for _, line := range b.lines {
		if y+lh > b.Y+b.H-dialogueBoxPadding {
			log.Printf("dialogue box: text truncated at %.0fpx", b.H)
			break
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(b.X+dialogueBoxPadding, y)
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, line, face, op)
		y += lh
	}
}
