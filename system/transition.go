package system

import (
	"piertothepast/common"
	"piertothepast/obj"
)

// Edge names a horizontal screen edge. The map graph only links maps left to
// right, so vertical edges are not modeled.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
)

// Route is one entry of the adjacency table: where the player ends up and
// which edge of the destination they arrive at. Arrival places the player's
// rect flush with the buffer margin on that side.
type Route struct {
	To     string
	Arrive Edge
}

// routes maps (map id, crossed edge) to a destination. The repaired pier
// keeps the damaged pier's neighbors, and both neighbors route back to
// "pier"; the funding gate promotes it to the repaired variant when earned.
var routes = map[string]map[Edge]Route{
	"pier": {
		EdgeLeft:  {To: "palace", Arrive: EdgeRight},
		EdgeRight: {To: "streets", Arrive: EdgeLeft},
	},
	"pier_repaired": {
		EdgeLeft:  {To: "palace", Arrive: EdgeRight},
		EdgeRight: {To: "streets", Arrive: EdgeLeft},
	},
	"palace": {
		EdgeRight: {To: "pier", Arrive: EdgeLeft},
	},
	"streets": {
		EdgeLeft: {To: "pier", Arrive: EdgeRight},
	},
}

// Evaluate checks the player rect against the current map's edge thresholds
// and returns the matched route. The thresholds are strict so that a player
// placed exactly on the arrival margin does not bounce straight back.
func Evaluate(current string, player obj.Rect) (Route, bool) {
	m, ok := routes[current]
	if !ok {
		return Route{}, false
	}
	if r, ok := m[EdgeLeft]; ok && player.X < common.TransitionBuffer {
		return r, true
	}
	if r, ok := m[EdgeRight]; ok && player.Right() > common.BaseWidth-common.TransitionBuffer {
		return r, true
	}
	return Route{}, false
}

// Apply places the player on the arrival side of the destination map.
func (r Route) Apply(player *obj.Player) {
	switch r.Arrive {
	case EdgeLeft:
		player.Rect.SetLeft(common.TransitionBuffer)
	case EdgeRight:
		player.Rect.SetRight(common.BaseWidth - common.TransitionBuffer)
	}
	player.RecenterHitbox()
}
