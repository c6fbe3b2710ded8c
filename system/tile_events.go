package system

import (
	"log"

	"piertothepast/content"
)

// Tile property names recognized on the event layer.
const (
	propDoor            = "Door"
	propCutsceneTrigger = "CutsceneTrigger"
)

// PropSource yields the property set for the event-layer tile containing a
// world point. Out-of-bounds lookups return an empty set.
type PropSource interface {
	PropsAt(x, y float64) map[string]string
}

// TileEventScanner diffs the event-layer properties under the player's hitbox
// center against the previous frame and fires events only on change, so
// standing on a trigger tile fires once per entry rather than once per frame.
type TileEventScanner struct {
	prev      map[string]string
	triggered map[string]bool

	// LastDoor records the most recent door id entered. Doors have no further
	// effect yet; interiors hang off this.
	LastDoor string
}

func NewTileEventScanner() *TileEventScanner {
	return &TileEventScanner{triggered: make(map[string]bool)}
}

// Reset clears the property snapshot and the fired-cutscene set. Called on
// every map load.
func (s *TileEventScanner) Reset() {
	s.prev = nil
	s.triggered = make(map[string]bool)
}

// Scan inspects the tile under the world point (cx, cy) and returns the key
// of a cutscene to start, or "" when nothing fires this frame. Entering a
// trigger tile always bumps the funding accumulator; the cutscene itself
// plays at most once per map load.
func (s *TileEventScanner) Scan(src PropSource, cx, cy float64, tables *content.Tables, progress *Progress) string {
	props := src.PropsAt(cx, cy)

	start := ""
	if door := props[propDoor]; door != s.prev[propDoor] && door != "" {
		s.LastDoor = door
		log.Printf("world: entered door %q", door)
	}
	if key := props[propCutsceneTrigger]; key != s.prev[propCutsceneTrigger] && key != "" {
		progress.Funding += FundingPerTrigger
		if _, ok := tables.Cutscene(key); !ok {
			log.Printf("world: no cutscene for trigger %q", key)
		} else if s.triggered[key] {
			log.Printf("world: cutscene %q already played on this visit", key)
		} else {
			s.triggered[key] = true
			start = key
		}
	}

	s.prev = props
	return start
}
