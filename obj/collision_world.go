package obj

import (
	"github.com/jakecoffman/cp"

	"piertothepast/common"
	"piertothepast/maps"
)

const collisionTypeSolid cp.CollisionType = 1

// CollisionWorld holds a static chipmunk space built from the map layers
// flagged physics. The game is top-down, so there is no gravity and no dynamic
// bodies; movement is resolved by querying candidate hitboxes against the
// static shapes.
type CollisionWorld struct {
	tm    *maps.TileMap
	space *cp.Space
}

func NewCollisionWorld(tm *maps.TileMap) *CollisionWorld {
	cw := &CollisionWorld{tm: tm, space: cp.NewSpace()}
	cw.buildStaticShapes()
	return cw
}

func (cw *CollisionWorld) buildStaticShapes() {
	if cw.tm == nil {
		return
	}

	for layerIdx, layer := range cw.tm.Layers {
		if !cw.tm.LayerMeta[layerIdx].Physics {
			continue
		}
		// Merge contiguous solid tiles into larger rectangles so the space
		// holds fewer static boxes instead of one box per tile.
		processed := make([]bool, cw.tm.Width*cw.tm.Height)
		for y := 0; y < cw.tm.Height; y++ {
			for x := 0; x < cw.tm.Width; x++ {
				idx := y*cw.tm.Width + x
				if processed[idx] {
					continue
				}
				if layer[idx] == 0 {
					processed[idx] = true
					continue
				}

				w := 1
				for x+w < cw.tm.Width {
					idx2 := y*cw.tm.Width + (x + w)
					if processed[idx2] || layer[idx2] == 0 {
						break
					}
					w++
				}

				h := 1
			heightLoop:
				for y+h < cw.tm.Height {
					for xi := x; xi < x+w; xi++ {
						idx2 := (y+h)*cw.tm.Width + xi
						if processed[idx2] || layer[idx2] == 0 {
							break heightLoop
						}
					}
					h++
				}

				x0 := float64(x * common.TileSize)
				y0 := float64(y * common.TileSize)
				bb := cp.BB{
					L: x0,
					B: y0,
					R: x0 + float64(w*common.TileSize),
					T: y0 + float64(h*common.TileSize),
				}
				shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
				shape.SetCollisionType(collisionTypeSolid)
				cw.space.AddShape(shape)

				for yy := y; yy < y+h; yy++ {
					for xx := x; xx < x+w; xx++ {
						processed[yy*cw.tm.Width+xx] = true
					}
				}
			}
		}
	}

	// World-bound segments keep the player inside the map. The transition
	// buffer is wider than the segment thickness, so edge transitions still
	// fire before the player touches them.
	worldW, worldH := cw.tm.PixelSize()
	wf := float64(worldW)
	hf := float64(worldH)
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: wf, Y: 0}},
		{{X: 0, Y: hf}, {X: wf, Y: hf}},
		{{X: 0, Y: 0}, {X: 0, Y: hf}},
		{{X: wf, Y: 0}, {X: wf, Y: hf}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(cw.space.StaticBody, seg[0], seg[1], 1)
		shape.SetCollisionType(collisionTypeSolid)
		cw.space.AddShape(shape)
	}
}

// Blocked reports whether the rect overlaps any solid shape.
func (cw *CollisionWorld) Blocked(r Rect) bool {
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
	hit := false
	cw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		hit = true
	}, nil)
	return hit
}

// Move resolves a proposed hitbox move axis by axis and returns the allowed
// deltas. Sliding along walls falls out of the per-axis resolution.
func (cw *CollisionWorld) Move(hitbox Rect, dx, dy float64) (float64, float64) {
	if dx != 0 {
		moved := hitbox
		moved.X += dx
		if cw.Blocked(moved) {
			dx = 0
		}
	}
	if dy != 0 {
		moved := hitbox
		moved.X += dx
		moved.Y += dy
		if cw.Blocked(moved) {
			dy = 0
		}
	}
	return dx, dy
}
