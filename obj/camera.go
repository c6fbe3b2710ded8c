package obj

import (
	"math"

	"piertothepast/common"
)

// Camera tracks a world-space center point and clamps the view to the world
// bounds. The game renders 1:1, so the camera reduces to an offset.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		screenW: screenW,
		screenH: screenH,
		smooth:  0.15,
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
	}
}

// SetWorldBounds sets the world pixel dimensions for clamping.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - float64(c.screenW)/2, c.PosY - float64(c.screenH)/2
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.clamp()
}

// SnapTo immediately centers the camera on the given world point, with the
// same clamping as Update. Use after a map load so the first frame is already
// constrained to the new world.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clamp()
}

func (c *Camera) clamp() {
	// snap to whole pixels so tiles stay aligned to the screen grid
	c.PosX = math.Round(c.PosX)
	c.PosY = math.Round(c.PosY)

	halfW := float64(c.screenW) / 2
	halfH := float64(c.screenH) / 2
	if c.worldW > 0 {
		if c.worldW < float64(c.screenW) {
			c.PosX = c.worldW / 2
		} else {
			c.PosX = common.Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH < float64(c.screenH) {
			c.PosY = c.worldH / 2
		} else {
			c.PosY = common.Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}
