package common

// Logical viewport size. Every map is authored against this resolution and the
// camera letterboxes the rest.
const (
	BaseWidth  = 1280
	BaseHeight = 800
)

const TileSize = 32

// Player movement tuning.
const (
	PlayerSpeed = 5.0
	// PlayerHitboxInset shrinks the visual rect on each side to get the
	// collision hitbox.
	PlayerHitboxInset = 4.0
	// DiagonalFactor normalizes diagonal movement (1/sqrt 2).
	DiagonalFactor = 0.7071
)

// TransitionBuffer is the pixel margin from a map edge that triggers a map
// transition, and the margin the player is placed at on arrival.
const TransitionBuffer = 30.0
