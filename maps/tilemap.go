// Package maps loads the hand-authored tile maps and exposes per-tile event
// properties to the game systems.
package maps

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"piertothepast/common"
)

// TileMap is a tile map stored as JSON. Layers are flat arrays of length
// Width*Height (row-major), drawn bottom to top. LayerMeta carries per-layer
// name, display color, visibility, and whether tiles block movement.
type TileMap struct {
	Name   string  `json:"-"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers [][]int `json:"layers"`

	LayerMeta []LayerMeta `json:"layer_meta"`

	// EventLayer names the layer whose tile values index EventDefs.
	EventLayer string `json:"event_layer,omitempty"`
	// EventDefs maps a tile value (as a JSON object key) to the property set
	// attached to every tile carrying that value.
	EventDefs map[string]map[string]string `json:"event_defs,omitempty"`

	// per-layer tile images built from LayerMeta.Color, created on first draw
	layerTileImgs []*ebiten.Image

	eventLayerIdx  int
	warnedNoEvents bool
}

type LayerMeta struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Color   string `json:"color"`
	Physics bool   `json:"physics"`
}

func unmarshalTileMap(name string, b []byte) (*TileMap, error) {
	var tm TileMap
	if err := json.Unmarshal(b, &tm); err != nil {
		return nil, fmt.Errorf("maps: unmarshal %s: %w", name, err)
	}
	tm.Name = name

	if tm.Width <= 0 || tm.Height <= 0 {
		return nil, fmt.Errorf("maps: %s: invalid dimensions %dx%d", name, tm.Width, tm.Height)
	}
	if len(tm.Layers) == 0 {
		return nil, fmt.Errorf("maps: %s: no layers", name)
	}
	if len(tm.LayerMeta) != len(tm.Layers) {
		return nil, fmt.Errorf("maps: %s: %d layers but %d layer_meta entries", name, len(tm.Layers), len(tm.LayerMeta))
	}
	for i, layer := range tm.Layers {
		if len(layer) != tm.Width*tm.Height {
			return nil, fmt.Errorf("maps: %s: layer %d has %d tiles, want %d", name, i, len(layer), tm.Width*tm.Height)
		}
	}

	tm.eventLayerIdx = -1
	if tm.EventLayer != "" {
		for i, meta := range tm.LayerMeta {
			if meta.Name == tm.EventLayer {
				tm.eventLayerIdx = i
				break
			}
		}
		if tm.eventLayerIdx < 0 {
			return nil, fmt.Errorf("maps: %s: event layer %q not found", name, tm.EventLayer)
		}
	}

	return &tm, nil
}

// PixelSize returns the map size in pixels.
func (tm *TileMap) PixelSize() (int, int) {
	return tm.Width * common.TileSize, tm.Height * common.TileSize
}

// PropsAt returns the event-property set of the tile containing the world
// point (x, y). Out-of-bounds points and maps without an event layer yield an
// empty set.
func (tm *TileMap) PropsAt(x, y float64) map[string]string {
	if tm.eventLayerIdx < 0 {
		if !tm.warnedNoEvents {
			log.Printf("maps: %s has no event layer", tm.Name)
			tm.warnedNoEvents = true
		}
		return map[string]string{}
	}
	tx := int(x) / common.TileSize
	ty := int(y) / common.TileSize
	if x < 0 || y < 0 || tx >= tm.Width || ty >= tm.Height {
		return map[string]string{}
	}
	val := tm.Layers[tm.eventLayerIdx][ty*tm.Width+tx]
	if val == 0 {
		return map[string]string{}
	}
	props, ok := tm.EventDefs[strconv.Itoa(val)]
	if !ok {
		log.Printf("maps: %s: tile value %d on %s has no event definition", tm.Name, val, tm.EventLayer)
		return map[string]string{}
	}
	return props
}

// SolidAt reports whether the tile containing (x, y) blocks movement on any
// physics layer.
func (tm *TileMap) SolidAt(x, y float64) bool {
	tx := int(x) / common.TileSize
	ty := int(y) / common.TileSize
	if x < 0 || y < 0 || tx >= tm.Width || ty >= tm.Height {
		return true
	}
	for i, meta := range tm.LayerMeta {
		if meta.Physics && tm.Layers[i][ty*tm.Width+tx] != 0 {
			return true
		}
	}
	return false
}

// Draw renders every visible layer. camX/camY are the camera view's top-left
// in world coordinates.
func (tm *TileMap) Draw(screen *ebiten.Image, camX, camY float64) {
	tm.ensureImages()
	for li := range tm.Layers {
		if !tm.LayerMeta[li].Visible {
			continue
		}
		img := tm.layerTileImgs[li]
		if img == nil {
			continue
		}
		layer := tm.Layers[li]
		for y := 0; y < tm.Height; y++ {
			for x := 0; x < tm.Width; x++ {
				if layer[y*tm.Width+x] == 0 {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x*common.TileSize)-camX, float64(y*common.TileSize)-camY)
				screen.DrawImage(img, op)
			}
		}
	}
}

func (tm *TileMap) ensureImages() {
	if tm.layerTileImgs != nil {
		return
	}
	tm.layerTileImgs = make([]*ebiten.Image, len(tm.LayerMeta))
	for i, meta := range tm.LayerMeta {
		if !meta.Visible {
			continue
		}
		img := ebiten.NewImage(common.TileSize, common.TileSize)
		img.Fill(colorFromHex(meta.Color))
		tm.layerTileImgs[i] = img
	}
}

func colorFromHex(s string) color.RGBA {
	c := color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	parse := func(hs string) (uint8, bool) {
		v, err := strconv.ParseUint(hs, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(v), true
	}
	r, ok1 := parse(s[1:3])
	g, ok2 := parse(s[3:5])
	b, ok3 := parse(s[5:7])
	if ok1 && ok2 && ok3 {
		c = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return c
}
