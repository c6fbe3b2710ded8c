package system

import (
	"testing"

	"piertothepast/common"
	"piertothepast/obj"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		current string
		rect    obj.Rect
		wantTo  string
		wantOK  bool
	}{
		{"pier_left_edge", "pier", obj.Rect{X: 0, Y: 400, W: 32, H: 48}, "palace", true},
		{"pier_right_edge", "pier", obj.Rect{X: 1260, Y: 400, W: 32, H: 48}, "streets", true},
		{"pier_middle", "pier", obj.Rect{X: 600, Y: 400, W: 32, H: 48}, "", false},
		{"palace_right_edge", "palace", obj.Rect{X: 1260, Y: 400, W: 32, H: 48}, "pier", true},
		{"palace_left_edge_no_route", "palace", obj.Rect{X: 0, Y: 400, W: 32, H: 48}, "", false},
		{"streets_left_edge", "streets", obj.Rect{X: 0, Y: 400, W: 32, H: 48}, "pier", true},
		{"repaired_keeps_neighbors", "pier_repaired", obj.Rect{X: 0, Y: 400, W: 32, H: 48}, "palace", true},
		{"unknown_map", "nonesuch", obj.Rect{X: 0, Y: 400, W: 32, H: 48}, "", false},
		{"arrival_margin_stable", "palace", obj.Rect{X: 1250 - 32, Y: 400, W: 32, H: 48}, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			route, ok := Evaluate(c.current, c.rect)
			if ok != c.wantOK {
				t.Fatalf("Evaluate ok = %v, want %v", ok, c.wantOK)
			}
			if ok && route.To != c.wantTo {
				t.Fatalf("route.To = %q, want %q", route.To, c.wantTo)
			}
		})
	}
}

func TestRouteApply(t *testing.T) {
	player := obj.NewPlayer(0, 400)

	route, ok := Evaluate("pier", player.Rect)
	if !ok || route.To != "palace" {
		t.Fatalf("expected pier left edge to route to palace, got %+v, %v", route, ok)
	}

	route.Apply(player)
	if got := player.Rect.Right(); got != common.BaseWidth-common.TransitionBuffer {
		t.Fatalf("player right = %v, want %v", got, common.BaseWidth-common.TransitionBuffer)
	}
	if player.Hitbox.CenterX() != player.Rect.CenterX() {
		t.Fatalf("hitbox not re-centered after arrival")
	}

	// the arrival position must not immediately route back
	if _, ok := Evaluate(route.To, player.Rect); ok {
		t.Fatalf("arrival position re-triggered a transition")
	}

	route, ok = Evaluate("palace", obj.Rect{X: 1270, Y: 400, W: 32, H: 48})
	if !ok {
		t.Fatalf("palace right edge should route")
	}
	route.Apply(player)
	if player.Rect.X != common.TransitionBuffer {
		t.Fatalf("player left = %v, want %v", player.Rect.X, common.TransitionBuffer)
	}
}
