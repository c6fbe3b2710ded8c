package system

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"piertothepast/assets"
)

const (
	defaultMusicVolume     = 1.0
	defaultMusicFadeFrames = 30
)

// Music owns background playback: one current track, an optional pending
// track, and a per-frame fade that drains the current track before the
// pending one starts. A missing or undecodable file is logged and treated as
// silence.
type Music struct {
	players map[string]*audio.Player

	currentTrack  string
	currentVolume float64
	currentLoop   bool

	pendingTrack  string
	pendingVolume float64
	pendingLoop   bool
	pendingActive bool
	fadeStep      float64
}

func NewMusic() *Music {
	return &Music{players: make(map[string]*audio.Player)}
}

// CurrentTrack returns the track now playing ("" when silent or fading out).
func (m *Music) CurrentTrack() string {
	return m.currentTrack
}

// Play requests a track. If it is already the current track the volume is
// refreshed; otherwise the current track fades out over fadeFrames before the
// new one starts.
func (m *Music) Play(track string, loop bool, fadeFrames int) {
	track = strings.TrimSpace(track)
	if track == "" {
		m.Stop(fadeFrames)
		return
	}
	if fadeFrames <= 0 {
		fadeFrames = defaultMusicFadeFrames
	}

	current := m.currentPlayer()
	if !m.pendingActive && m.currentTrack == track && current != nil {
		m.currentVolume = defaultMusicVolume
		current.SetVolume(m.currentVolume)
		if !current.IsPlaying() {
			current.Rewind()
			current.Play()
		}
		return
	}

	m.pendingTrack = track
	m.pendingVolume = defaultMusicVolume
	m.pendingLoop = loop
	m.pendingActive = true
	if current == nil {
		m.switchToPending()
		return
	}
	m.fadeStep = m.currentVolume / float64(fadeFrames)
	if m.fadeStep <= 0 {
		m.fadeStep = 1
	}
}

// Stop fades out whatever is playing.
func (m *Music) Stop(fadeFrames int) {
	if fadeFrames <= 0 {
		fadeFrames = defaultMusicFadeFrames
	}
	if m.currentPlayer() == nil {
		m.currentTrack = ""
		m.currentVolume = 0
		m.currentLoop = false
		m.pendingActive = false
		return
	}
	m.pendingTrack = ""
	m.pendingVolume = 0
	m.pendingLoop = false
	m.pendingActive = true
	m.fadeStep = m.currentVolume / float64(fadeFrames)
	if m.fadeStep <= 0 {
		m.fadeStep = 1
	}
}

// Update advances the fade transition and restarts a looping track that ran
// out. Call once per frame.
func (m *Music) Update() {
	if m.pendingActive {
		m.updateTransition()
		return
	}

	current := m.currentPlayer()
	if current != nil && !current.IsPlaying() && m.currentTrack != "" && m.currentLoop {
		current.Rewind()
		current.SetVolume(m.currentVolume)
		current.Play()
	}
}

func (m *Music) updateTransition() {
	current := m.currentPlayer()
	if current == nil {
		m.switchToPending()
		return
	}

	m.currentVolume -= m.fadeStep
	if m.currentVolume > 0 {
		current.SetVolume(m.currentVolume)
		return
	}

	m.currentVolume = 0
	current.SetVolume(0)
	current.Pause()
	current.Rewind()
	m.currentTrack = ""
	m.currentLoop = false
	m.switchToPending()
}

func (m *Music) switchToPending() {
	if !m.pendingActive {
		return
	}

	track := strings.TrimSpace(m.pendingTrack)
	volume := m.pendingVolume
	loop := m.pendingLoop

	m.pendingTrack = ""
	m.pendingVolume = 0
	m.pendingLoop = false
	m.pendingActive = false
	m.fadeStep = 0

	if track == "" {
		m.currentTrack = ""
		m.currentVolume = 0
		m.currentLoop = false
		return
	}

	player, err := m.playerForTrack(track)
	if err != nil {
		log.Printf("music: load %q: %v", track, err)
		m.currentTrack = ""
		m.currentVolume = 0
		m.currentLoop = false
		return
	}

	m.currentTrack = track
	m.currentVolume = volume
	m.currentLoop = loop
	player.Rewind()
	player.SetVolume(m.currentVolume)
	player.Play()
}

func (m *Music) currentPlayer() *audio.Player {
	if strings.TrimSpace(m.currentTrack) == "" {
		return nil
	}
	return m.players[m.currentTrack]
}

func (m *Music) playerForTrack(track string) (*audio.Player, error) {
	if existing, ok := m.players[track]; ok && existing != nil {
		return existing, nil
	}
	player, err := assets.LoadAudioPlayer(track)
	if err != nil {
		return nil, err
	}
	m.players[track] = player
	return player, nil
}
