package system

import (
	"testing"

	"piertothepast/obj"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(loadTables(t), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestWorldLoad(t *testing.T) {
	w := newTestWorld(t)

	if err := w.Load("pier"); err != nil {
		t.Fatalf("Load(pier): %v", err)
	}
	if w.Current != "pier" {
		t.Fatalf("Current = %q, want pier", w.Current)
	}
	if w.Map == nil || w.Collision == nil {
		t.Fatalf("map or collision world not built")
	}
	if len(w.Active) != 2 {
		t.Fatalf("pier should place 2 npcs, got %d", len(w.Active))
	}

	if err := w.Load("streets"); err != nil {
		t.Fatalf("Load(streets): %v", err)
	}
	if len(w.Active) != 4 {
		t.Fatalf("streets should place 4 npcs, got %d", len(w.Active))
	}
}

func TestWorldLoadUnknownMap(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Load("atlantis"); err == nil {
		t.Fatalf("expected an error for an unknown map id")
	}
}

func TestWorldDialogueOverride(t *testing.T) {
	w := newTestWorld(t)

	if err := w.Load("pier_repaired"); err != nil {
		t.Fatalf("Load(pier_repaired): %v", err)
	}
	piermaster, ok := w.NPC("piermaster")
	if !ok {
		t.Fatalf("piermaster missing from roster")
	}
	if piermaster.DialogueID != "piermaster_ending" {
		t.Fatalf("piermaster dialogue on repaired pier = %q, want piermaster_ending", piermaster.DialogueID)
	}

	// the override does not stick once the damaged pier is loaded again
	if err := w.Load("pier"); err != nil {
		t.Fatalf("Load(pier): %v", err)
	}
	if piermaster.DialogueID != "piermaster_generic" {
		t.Fatalf("piermaster dialogue on pier = %q, want piermaster_generic", piermaster.DialogueID)
	}
}

func TestWorldLoadResetsScanner(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Load("pier"); err != nil {
		t.Fatalf("Load(pier): %v", err)
	}

	trigger := map[string]string{"CutsceneTrigger": "intro_story"}
	var progress Progress
	src := &fakeProps{sets: []map[string]string{trigger}}
	if key := w.Scanner.Scan(src, 0, 0, w.Tables, &progress); key != "intro_story" {
		t.Fatalf("scan = %q, want intro_story", key)
	}

	if err := w.Load("pier"); err != nil {
		t.Fatalf("reload pier: %v", err)
	}
	src = &fakeProps{sets: []map[string]string{trigger}}
	if key := w.Scanner.Scan(src, 0, 0, w.Tables, &progress); key != "intro_story" {
		t.Fatalf("triggered set should be empty after load, scan = %q", key)
	}
}

func TestFundingGate(t *testing.T) {
	w := newTestWorld(t)
	if err := w.Load("pier"); err != nil {
		t.Fatalf("Load(pier): %v", err)
	}

	player := obj.NewPlayer(500, 400)
	gate := FundingGate{Damaged: "pier", Repaired: "pier_repaired"}
	progress := Progress{Funding: FundingThreshold - 1}

	swapped, err := gate.Check(w, player, nil, &progress)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if swapped {
		t.Fatalf("gate fired below the threshold")
	}
	if w.Current != "pier" {
		t.Fatalf("map swapped below the threshold")
	}

	progress.Funding++
	swapped, err = gate.Check(w, player, nil, &progress)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !swapped {
		t.Fatalf("gate did not fire at the threshold")
	}
	if w.Current != "pier_repaired" {
		t.Fatalf("Current = %q, want pier_repaired", w.Current)
	}
	if player.Rect.X != 500 || player.Rect.Y != 400 {
		t.Fatalf("player moved during the swap: (%v, %v)", player.Rect.X, player.Rect.Y)
	}

	// already repaired: the gate has nothing left to do
	swapped, err = gate.Check(w, player, nil, &progress)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if swapped {
		t.Fatalf("gate fired again on the repaired map")
	}
}
