// Package system holds the per-frame world logic: map loading, tile event
// scanning, edge transitions, the funding gate, and music playback.
package system

import (
	"fmt"
	"log"

	"piertothepast/content"
	"piertothepast/maps"
	"piertothepast/obj"
)

// Placement is an NPC center coordinate in world pixels.
type Placement struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MapConfig is one entry of the map registry: which tile file and music a map
// uses, which of the NPC roster stands on it and where, and any per-map
// dialogue reassignments.
type MapConfig struct {
	File              string               `yaml:"file"`
	Music             string               `yaml:"music,omitempty"`
	NPCs              map[string]Placement `yaml:"npcs,omitempty"`
	DialogueOverrides map[string]string    `yaml:"dialogue_overrides,omitempty"`
}

// World owns the active map, its collision space, and the NPC roster. NPCs
// are long-lived singletons; each load repositions the subset placed on the
// new map and leaves the rest off-map.
type World struct {
	Registry map[string]*MapConfig
	Tables   *content.Tables
	Music    *Music

	roster   map[string]*obj.NPC
	defaults map[string]string

	Current   string
	Map       *maps.TileMap
	Collision *obj.CollisionWorld
	Active    []*obj.NPC
	Scanner   *TileEventScanner
}

func NewWorld(tables *content.Tables, music *Music) (*World, error) {
	registry, err := content.LoadSpec[map[string]*MapConfig]("maps.yaml")
	if err != nil {
		return nil, err
	}

	w := &World{
		Registry: registry,
		Tables:   tables,
		Music:    music,
		Scanner:  NewTileEventScanner(),
		roster:   make(map[string]*obj.NPC),
		defaults: make(map[string]string),
	}
	for _, n := range []*obj.NPC{
		obj.NewNPC("piermaster", "piermaster.png", "piermaster_generic"),
		obj.NewNPC("mayor", "mayor.png", "mayor_greeting"),
		obj.NewNPC("houseowner0", "houseowner0.png", "houseowner0_generic"),
		obj.NewNPC("houseowner1", "houseowner1.png", "houseowner1_generic"),
		obj.NewNPC("houseowner2", "houseowner2.png", "houseowner2_generic"),
		obj.NewNPC("houseowner3", "houseowner3.png", "houseowner3_generic"),
	} {
		w.roster[n.Role] = n
		w.defaults[n.Role] = n.DialogueID
	}

	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// validate checks that every map the registry or the adjacency table refers
// to resolves, so a dangling reference fails at startup instead of mid-game.
func (w *World) validate() error {
	for id, cfg := range w.Registry {
		if cfg == nil || cfg.File == "" {
			return fmt.Errorf("world: map %q has no file", id)
		}
		for role := range cfg.NPCs {
			if _, ok := w.roster[role]; !ok {
				return fmt.Errorf("world: map %q places unknown npc role %q", id, role)
			}
		}
		for role, dlg := range cfg.DialogueOverrides {
			if _, ok := w.roster[role]; !ok {
				return fmt.Errorf("world: map %q overrides unknown npc role %q", id, role)
			}
			if _, ok := w.Tables.Dialogue(dlg); !ok {
				return fmt.Errorf("world: map %q overrides %q with unknown dialogue %q", id, role, dlg)
			}
		}
	}
	for from, edges := range routes {
		if _, ok := w.Registry[from]; !ok {
			return fmt.Errorf("world: route from unregistered map %q", from)
		}
		for _, r := range edges {
			if _, ok := w.Registry[r.To]; !ok {
				return fmt.Errorf("world: route %s -> unregistered map %q", from, r.To)
			}
		}
	}
	return nil
}

// Load rebuilds the world for the given map id: tilemap, collision space,
// active NPC list, scanner state, and music. An unknown id or a bad map file
// is a fatal error; the caller stops the run loop.
func (w *World) Load(id string) error {
	cfg, ok := w.Registry[id]
	if !ok {
		return fmt.Errorf("world: unknown map %q", id)
	}

	tm, err := maps.Load(cfg.File)
	if err != nil {
		return fmt.Errorf("world: load map %q: %w", id, err)
	}

	w.Map = tm
	w.Collision = obj.NewCollisionWorld(tm)
	w.Scanner.Reset()

	w.Active = w.Active[:0]
	for role, npc := range w.roster {
		pl, placed := cfg.NPCs[role]
		if !placed {
			continue
		}
		npc.DialogueID = w.defaults[role]
		if override, ok := cfg.DialogueOverrides[role]; ok {
			npc.DialogueID = override
		}
		npc.SetCenter(pl.X, pl.Y)
		w.Active = append(w.Active, npc)
	}

	if w.Music != nil {
		if cfg.Music != "" {
			w.Music.Play(cfg.Music, true, 0)
		} else {
			w.Music.Stop(0)
		}
	}

	w.Current = id
	log.Printf("world: loaded map %q (%d npcs)", id, len(w.Active))
	return nil
}

// NPC returns a roster member by role.
func (w *World) NPC(role string) (*obj.NPC, bool) {
	n, ok := w.roster[role]
	return n, ok
}

// ReloadContent swaps in freshly loaded tables and registry while keeping the
// session state. Used by the debug content watcher.
func (w *World) ReloadContent(tables *content.Tables) error {
	registry, err := content.LoadSpec[map[string]*MapConfig]("maps.yaml")
	if err != nil {
		return err
	}
	old := w.Registry
	w.Registry = registry
	w.Tables = tables
	if err := w.validate(); err != nil {
		w.Registry = old
		return err
	}
	return nil
}
