package obj

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"piertothepast/assets"
)

// NPC is a long-lived townsperson. The same instance is repositioned and
// selectively added to the active map on each load; DialogueID may be
// overridden per map by the world registry.
type NPC struct {
	Role       string
	Sprite     string
	DialogueID string
	Rect       Rect

	img       *ebiten.Image
	triedLoad bool
}

func NewNPC(role, sprite, dialogueID string) *NPC {
	return &NPC{
		Role:       role,
		Sprite:     sprite,
		DialogueID: dialogueID,
		Rect:       Rect{W: 32, H: 48},
	}
}

// SetCenter places the NPC so its rect is centered on the given world point.
func (n *NPC) SetCenter(x, y float64) {
	n.Rect.SetCenter(x, y)
}

func (n *NPC) Draw(screen *ebiten.Image, camX, camY float64) {
	if !n.triedLoad {
		n.triedLoad = true
		img, err := assets.LoadImage(n.Sprite)
		if err != nil {
			log.Printf("npc: load %s sprite %s: %v", n.Role, n.Sprite, err)
			fallback := ebiten.NewImage(int(n.Rect.W), int(n.Rect.H))
			fallback.Fill(color.RGBA{B: 0xff, A: 0xff})
			img = fallback
		}
		n.img = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(n.Rect.X-camX, n.Rect.Y-camY)
	screen.DrawImage(n.img, op)
}
