package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds one frame's worth of input intents. The game polls it once per
// update and every mode reads from the same snapshot.
type Input struct {
	// MoveX/MoveY are -1, 0, or +1 from held movement keys.
	MoveX float64
	MoveY float64
	// InteractPressed is true on the frame the interact key (E) was pressed.
	InteractPressed bool
	// AdvancePressed is true on the frame the advance key (Enter or Space)
	// was pressed. Advances dialogue lines and cutscene slides.
	AdvancePressed bool
	// CancelPressed is true on the frame Escape was pressed.
	CancelPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and refreshes the snapshot.
func (i *Input) Update() {
	var moveX, moveY float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY += 1
	}
	i.MoveX = moveX
	i.MoveY = moveY

	i.InteractPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	i.AdvancePressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.CancelPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
