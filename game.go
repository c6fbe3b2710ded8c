package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"piertothepast/assets"
	"piertothepast/common"
	"piertothepast/content"
	"piertothepast/obj"
	"piertothepast/system"
)

// Mode is the game's global state. Exactly one is active per frame and every
// update/draw dispatches on it.
type Mode int

const (
	ModeIntro Mode = iota
	ModePlaying
	ModeDialogue
	ModeCutscene
	ModeConfirmQuit
	ModeEnding
)

// interactReach is how far beyond the hitbox the interact key finds an NPC.
const interactReach = 16.0

const endingMusicTrack = "music/ending.wav"

// dialogueState exists only while mode == ModeDialogue.
type dialogueState struct {
	dlg *content.Dialogue
	box *obj.DialogueBox
}

// cutsceneState exists only while mode == ModeCutscene.
type cutsceneState struct {
	key   string
	cs    *content.Cutscene
	slide int
	box   *obj.DialogueBox
}

type Game struct {
	debug bool

	mode     Mode
	input    *obj.Input
	player   *obj.Player
	camera   *obj.Camera
	world    *system.World
	music    *system.Music
	gate     system.FundingGate
	progress system.Progress

	startMap string

	dialogue *dialogueState
	cutscene *cutsceneState

	introUI         *ebitenui.UI
	confirmUI       *ebitenui.UI
	startRequested  bool
	quitRequested   bool
	resumeRequested bool

	watcher *content.Watcher

	images map[string]*ebiten.Image
	failed map[string]bool
}

func NewGame(debug, story bool, startMap string) (*Game, error) {
	tables, err := content.LoadTables()
	if err != nil {
		return nil, err
	}

	music := system.NewMusic()
	world, err := system.NewWorld(tables, music)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		mode:     ModeIntro,
		input:    obj.NewInput(),
		player:   obj.NewPlayer(100, 50),
		camera:   obj.NewCamera(common.BaseWidth, common.BaseHeight),
		world:    world,
		music:    music,
		gate:     system.FundingGate{Damaged: "pier", Repaired: "pier_repaired"},
		startMap: startMap,
		images:   make(map[string]*ebiten.Image),
		failed:   make(map[string]bool),
	}
	g.progress.Story = story
	g.introUI = newIntroUI(g)
	g.confirmUI = newConfirmUI(g)

	if debug {
		watcher, err := content.NewWatcher("content")
		if err != nil {
			log.Printf("content: watch: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

// Close releases the content watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	g.pollWatcher()
	g.music.Update()

	switch g.mode {
	case ModeIntro:
		return g.updateIntro()
	case ModePlaying:
		return g.updatePlaying()
	case ModeDialogue:
		g.updateDialogue()
	case ModeCutscene:
		g.updateCutscene()
	case ModeConfirmQuit:
		return g.updateConfirmQuit()
	case ModeEnding:
		if g.input.CancelPressed {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) updateIntro() error {
	g.introUI.Update()
	if !g.startRequested && g.input.AdvancePressed {
		g.startRequested = true
	}
	if !g.startRequested {
		return nil
	}
	if err := g.world.Load(g.startMap); err != nil {
		return err
	}
	worldW, worldH := g.world.Map.PixelSize()
	g.camera.SetWorldBounds(worldW, worldH)
	g.camera.SnapTo(g.player.Rect.CenterX(), g.player.Rect.CenterY())
	g.mode = ModePlaying
	return nil
}

func (g *Game) updatePlaying() error {
	if g.input.CancelPressed {
		g.quitRequested = false
		g.resumeRequested = false
		g.mode = ModeConfirmQuit
		return nil
	}

	if g.input.InteractPressed {
		if npc := g.nearbyNPC(); npc != nil {
			g.startDialogue(npc)
			return nil
		}
	}

	g.player.Update(g.input, g.world.Collision)
	g.camera.Update(g.player.Rect.CenterX(), g.player.Rect.CenterY())

	if key := g.world.Scanner.Scan(g.world.Map, g.player.Hitbox.CenterX(), g.player.Hitbox.CenterY(), g.world.Tables, &g.progress); key != "" {
		g.startCutscene(key)
		return nil
	}

	if route, ok := system.Evaluate(g.world.Current, g.player.Rect); ok {
		if err := g.world.Load(route.To); err != nil {
			return err
		}
		route.Apply(g.player)
		worldW, worldH := g.world.Map.PixelSize()
		g.camera.SetWorldBounds(worldW, worldH)
		g.camera.SnapTo(g.player.Rect.CenterX(), g.player.Rect.CenterY())
		return nil
	}

	if _, err := g.gate.Check(g.world, g.player, g.camera, &g.progress); err != nil {
		return err
	}
	return nil
}

func (g *Game) updateDialogue() {
	if g.dialogue == nil {
		g.mode = ModePlaying
		return
	}
	if !g.input.AdvancePressed {
		return
	}
	line, ok := g.dialogue.dlg.Advance()
	if ok {
		g.dialogue.box.SetText(g.dialogue.dlg.Name, line)
		return
	}
	g.completeDialogue()
}

func (g *Game) updateCutscene() {
	if g.cutscene == nil {
		g.mode = ModePlaying
		return
	}
	if g.input.CancelPressed {
		g.endCutscene()
		return
	}
	if !g.input.AdvancePressed {
		return
	}
	g.cutscene.slide++
	if g.cutscene.slide >= g.cutscene.cs.Slides() {
		g.endCutscene()
		return
	}
	_, sentence := g.cutscene.cs.Slide(g.cutscene.slide)
	g.cutscene.box.SetText("", sentence)
}

func (g *Game) updateConfirmQuit() error {
	g.confirmUI.Update()
	if g.quitRequested {
		return ebiten.Termination
	}
	if g.resumeRequested || g.input.CancelPressed {
		g.mode = ModePlaying
	}
	return nil
}

// nearbyNPC returns an active NPC within interact reach of the player.
func (g *Game) nearbyNPC() *obj.NPC {
	reach := g.player.Hitbox.Expand(interactReach)
	for _, npc := range g.world.Active {
		if reach.Intersects(npc.Rect) {
			return npc
		}
	}
	return nil
}

func (g *Game) startDialogue(npc *obj.NPC) {
	dlg, ok := g.world.Tables.Dialogue(npc.DialogueID)
	if !ok {
		log.Printf("game: npc %s has unknown dialogue %q", npc.Role, npc.DialogueID)
		return
	}
	dlg.Start(g.progress.Env())
	line, ok := dlg.CurrentLine()
	if !ok {
		log.Printf("game: dialogue %q is empty", npc.DialogueID)
		return
	}

	box := obj.NewDialogueBox(
		float64(common.BaseWidth-600)/2, float64(common.BaseHeight)-230,
		600, 200,
	)
	box.SetText(dlg.Name, line)
	g.dialogue = &dialogueState{dlg: dlg, box: box}
	g.mode = ModeDialogue
}

func (g *Game) completeDialogue() {
	dlg := g.dialogue.dlg
	g.dialogue = nil

	if money := dlg.TakeMoney(); money > 0 {
		g.progress.Funding += money
		log.Printf("game: received %d toward the pier fund (total %d)", money, g.progress.Funding)
	}
	if dlg.Stage != "" {
		g.progress.Stage = dlg.Stage
	}
	if dlg.Ending {
		g.music.Play(endingMusicTrack, true, 0)
		g.mode = ModeEnding
		return
	}
	g.mode = ModePlaying
}

// startCutscene switches to cutscene mode. Starting one while one is already
// showing is a no-op.
func (g *Game) startCutscene(key string) {
	if g.mode == ModeCutscene {
		log.Printf("game: cutscene %q requested while %q is showing, ignored", key, g.cutscene.key)
		return
	}
	cs, ok := g.world.Tables.Cutscene(key)
	if !ok {
		log.Printf("game: unknown cutscene %q", key)
		return
	}

	box := obj.NewDialogueBox(
		float64(common.BaseWidth-800)/2, float64(common.BaseHeight)-210,
		800, 180,
	)
	_, sentence := cs.Slide(0)
	box.SetText("", sentence)
	g.cutscene = &cutsceneState{key: key, cs: cs, box: box}
	if cs.Music != "" {
		g.music.Play(cs.Music, true, 0)
	}
	g.mode = ModeCutscene
}

// endCutscene returns to playing and restores the map's own music.
func (g *Game) endCutscene() {
	g.cutscene = nil
	if cfg, ok := g.world.Registry[g.world.Current]; ok {
		if cfg.Music != "" {
			g.music.Play(cfg.Music, true, 0)
		} else {
			g.music.Stop(0)
		}
	}
	g.mode = ModePlaying
}

// pollWatcher applies any pending hot-reloaded content edits.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			tables, err := content.LoadTables()
			if err != nil {
				log.Printf("content: reload after %s: %v", name, err)
				continue
			}
			if err := g.world.ReloadContent(tables); err != nil {
				log.Printf("content: reload after %s: %v", name, err)
				continue
			}
			log.Printf("content: reloaded after %s", name)
		case err := <-g.watcher.Errors:
			log.Printf("content: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeIntro:
		g.drawIntro(screen)
	case ModePlaying:
		g.drawWorld(screen)
	case ModeDialogue:
		g.drawWorld(screen)
		if g.dialogue != nil {
			g.dialogue.box.Draw(screen)
		}
	case ModeCutscene:
		g.drawCutscene(screen)
	case ModeConfirmQuit:
		g.drawWorld(screen)
		g.confirmUI.Draw(screen)
	case ModeEnding:
		g.drawEnding(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  map: %s  funding: %d  stage: %s",
			ebiten.ActualFPS(), g.world.Current, g.progress.Funding, g.progress.Stage,
		))
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	if g.world.Map != nil {
		g.world.Map.Draw(screen, camX, camY)
	}
	for _, npc := range g.world.Active {
		npc.Draw(screen, camX, camY)
	}
	g.player.Draw(screen, camX, camY)
}

func (g *Game) drawIntro(screen *ebiten.Image) {
	g.drawFullscreenImage(screen, "title.png")
	g.drawCenteredText(screen, "Pier to the Past", 120, color.White)
	g.introUI.Draw(screen)
}

func (g *Game) drawCutscene(screen *ebiten.Image) {
	screen.Fill(color.Black)
	img, _ := g.cutscene.cs.Slide(g.cutscene.slide)
	if img != "" {
		if slide := g.image("cutscene slide", img); slide != nil {
			op := &ebiten.DrawImageOptions{}
			w, h := slide.Bounds().Dx(), slide.Bounds().Dy()
			op.GeoM.Translate(float64(common.BaseWidth-w)/2, float64(common.BaseHeight-h)/2-80)
			screen.DrawImage(slide, op)
		}
	}
	g.cutscene.box.Draw(screen)
	g.drawCenteredText(screen, "Press Enter to continue", float64(common.BaseHeight)-24, color.White)
}

func (g *Game) drawEnding(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawFullscreenImage(screen, "ending.png")
	g.drawCenteredText(screen, "The Pier Stands Again", 120, color.White)
	g.drawCenteredText(screen, "Thanks to your efforts, the Chain Pier was rebuilt and the town thrived.", 160, color.White)
	g.drawCenteredText(screen, "Press Escape to exit.", float64(common.BaseHeight)-40, color.White)
}

func (g *Game) drawFullscreenImage(screen *ebiten.Image, name string) {
	img := g.image("screen", name)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Scale(float64(common.BaseWidth)/float64(w), float64(common.BaseHeight)/float64(h))
	screen.DrawImage(img, op)
}

func (g *Game) drawCenteredText(screen *ebiten.Image, s string, y float64, clr color.Color) {
	face := obj.UIFace()
	w := text.Advance(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(common.BaseWidth)-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// image loads and caches an asset image; a missing file is logged once and
// drawn as nothing.
func (g *Game) image(what, name string) *ebiten.Image {
	if img, ok := g.images[name]; ok {
		return img
	}
	if g.failed[name] {
		return nil
	}
	img, err := assets.LoadImage(name)
	if err != nil {
		log.Printf("game: load %s %s: %v", what, name, err)
		g.failed[name] = true
		return nil
	}
	g.images[name] = img
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
