package system

import (
	"piertothepast/content"
	"piertothepast/obj"
)

const (
	// FundingThreshold is the accumulator value that unlocks the pier repair.
	FundingThreshold = 300
	// FundingPerTrigger is added each time a cutscene-trigger tile is entered.
	FundingPerTrigger = 100
)

// Progress is the session-wide story state: the funding accumulator, the
// current quest stage tag, and whether story-mode line sets are preferred.
// Owned by the game and passed explicitly; nothing here is global.
type Progress struct {
	Funding int
	Stage   string
	Story   bool
}

// Env exposes the progress to dialogue condition scripts.
func (p *Progress) Env() content.ScriptEnv {
	return content.ScriptEnv{Funding: p.Funding, Stage: p.Stage, Story: p.Story}
}

// FundingGate swaps the damaged map for its repaired variant once the funding
// accumulator reaches the threshold. The swap preserves the player's top-left
// position and re-centers the camera.
type FundingGate struct {
	Damaged  string
	Repaired string
}

// Check runs once per frame while playing. It reports whether a swap happened;
// a load failure is fatal like any other map load.
func (g *FundingGate) Check(w *World, player *obj.Player, cam *obj.Camera, progress *Progress) (bool, error) {
	if w.Current != g.Damaged || progress.Funding < FundingThreshold {
		return false, nil
	}

	x, y := player.Rect.X, player.Rect.Y
	if err := w.Load(g.Repaired); err != nil {
		return false, err
	}
	player.SetTopLeft(x, y)
	if cam != nil {
		cam.SnapTo(player.Rect.CenterX(), player.Rect.CenterY())
	}
	return true, nil
}
