package obj

import (
	"testing"

	"piertothepast/maps"
)

func loadPier(t *testing.T) *CollisionWorld {
	t.Helper()
	tm, err := maps.Load("pier")
	if err != nil {
		t.Fatalf("load pier: %v", err)
	}
	return NewCollisionWorld(tm)
}

func TestBlocked(t *testing.T) {
	cw := loadPier(t)

	cases := []struct {
		name string
		r    Rect
		want bool
	}{
		{"open_middle", Rect{X: 300, Y: 300, W: 24, H: 40}, false},
		{"top_wall", Rect{X: 300, Y: 10, W: 24, H: 40}, true},
		{"bottom_wall", Rect{X: 300, Y: 780, W: 24, H: 40}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cw.Blocked(c.r); got != c.want {
				t.Fatalf("Blocked(%+v) = %v, want %v", c.r, got, c.want)
			}
		})
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	cw := loadPier(t)
	hitbox := Rect{X: 300, Y: 40, W: 24, H: 40}

	// moving up into the top wall ring is blocked, sideways is not
	dx, dy := cw.Move(hitbox, 5, -20)
	if dy != 0 {
		t.Fatalf("dy = %v, want 0 against the top wall", dy)
	}
	if dx != 5 {
		t.Fatalf("dx = %v, want 5 in the open", dx)
	}

	// fully open move passes through untouched
	open := Rect{X: 300, Y: 300, W: 24, H: 40}
	dx, dy = cw.Move(open, 5, 5)
	if dx != 5 || dy != 5 {
		t.Fatalf("open move = (%v, %v), want (5, 5)", dx, dy)
	}
}

func TestPlayerDiagonalNormalization(t *testing.T) {
	p := NewPlayer(300, 300)
	in := &Input{MoveX: 1, MoveY: 1}

	p.Update(in, nil)

	wantX := 300 + p.Speed*0.7071
	if p.Rect.X < wantX-0.001 || p.Rect.X > wantX+0.001 {
		t.Fatalf("diagonal x = %v, want %v", p.Rect.X, wantX)
	}
	if p.Hitbox.CenterX() != p.Rect.CenterX() || p.Hitbox.CenterY() != p.Rect.CenterY() {
		t.Fatalf("hitbox not re-centered after move")
	}
}
