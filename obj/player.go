package obj

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"piertothepast/assets"
	"piertothepast/common"
)

// Player is the player character. Rect is the visual rectangle; Hitbox is the
// tighter rectangle used for tile and proximity checks, re-centered on Rect
// after every move. The player is created once and survives every map load.
type Player struct {
	Rect   Rect
	Hitbox Rect
	Speed  float64

	img       *ebiten.Image
	triedLoad bool
}

func NewPlayer(x, y float64) *Player {
	p := &Player{
		Rect:  Rect{X: x, Y: y, W: 32, H: 48},
		Speed: common.PlayerSpeed,
	}
	p.Hitbox = p.Rect.Inset(common.PlayerHitboxInset)
	return p
}

// Update moves the player from held keys, normalizing diagonal movement and
// resolving the move against the collision world.
func (p *Player) Update(in *Input, cw *CollisionWorld) {
	dx := in.MoveX * p.Speed
	dy := in.MoveY * p.Speed
	if dx != 0 && dy != 0 {
		dx *= common.DiagonalFactor
		dy *= common.DiagonalFactor
	}
	if cw != nil {
		dx, dy = cw.Move(p.Hitbox, dx, dy)
	}
	p.Rect.X += dx
	p.Rect.Y += dy
	p.RecenterHitbox()
}

// RecenterHitbox keeps the hitbox centered on the visual rect. Call after any
// direct mutation of Rect (transitions, repair swap).
func (p *Player) RecenterHitbox() {
	p.Hitbox.SetCenter(p.Rect.CenterX(), p.Rect.CenterY())
}

func (p *Player) SetTopLeft(x, y float64) {
	p.Rect.X = x
	p.Rect.Y = y
	p.RecenterHitbox()
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	if !p.triedLoad {
		p.triedLoad = true
		img, err := assets.LoadImage("gentleman.png")
		if err != nil {
			log.Printf("player: load sprite: %v", err)
			fallback := ebiten.NewImage(int(p.Rect.W), int(p.Rect.H))
			fallback.Fill(color.RGBA{R: 0xff, A: 0xff})
			img = fallback
		}
		p.img = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.Rect.X-camX, p.Rect.Y-camY)
	screen.DrawImage(p.img, op)
}
