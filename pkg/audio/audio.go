package audio

import (
	"fmt"
	"go.uber.org/zap"
	"strings"
	"sync"
)

// Note is a frequency in Hz held for a duration in 64th-beats.
type Note struct {
	Freq     float64
	Duration int
}

type Song struct {
	Name  string
	Notes []Note
}

const (
	noteDS5 = 622.25
	noteGS5 = 830.61
	noteAS5 = 932.33
	noteDS6 = 1244.51
	noteGS6 = 1661.22

	eighth  = 8
	quarter = 16
	half    = 32
)

var (
	PloverSound = Song{
		Name: "plover",
		Notes: []Note{
			{noteDS5, eighth}, {noteGS5, eighth}, {noteAS5, eighth},
			{noteDS6, quarter}, {noteGS6, half},
		},
	}
	PloverGoodbyeSound = Song{
		Name: "plover goodbye",
		Notes: []Note{
			{noteGS6, eighth}, {noteDS6, eighth}, {noteAS5, eighth},
			{noteGS5, quarter}, {noteDS5, half},
		},
	}
)

func (s Song) String() string {
	notes := make([]string, 0, len(s.Notes))
	for _, n := range s.Notes {
		notes = append(notes, fmt.Sprintf("%.0fHz/%d", n.Freq, n.Duration))
	}
	return fmt.Sprintf("%s [%s]", s.Name, strings.Join(notes, " "))
}

// historySize bounds how many song names LogPlayer remembers.
const historySize = 16

// LogPlayer stands in for a speaker: it logs what would be played and keeps
// the names of the last few songs.
type LogPlayer struct {
	log *zap.SugaredLogger

	lock   sync.Mutex
	played []string
}

func NewLogPlayer(log *zap.SugaredLogger) *LogPlayer {
	return &LogPlayer{log: log}
}

func (p *LogPlayer) Play(song Song) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.played) == historySize {
		p.played = append(p.played[:0], p.played[1:]...)
	}
	p.played = append(p.played, song.Name)
	p.log.Infow("playing song", "song", song.String())
}

func (p *LogPlayer) StopAll() {
	p.log.Debug("stopping all notes")
}

// Played returns the names of the most recent songs, oldest first.
func (p *LogPlayer) Played() []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	return append([]string(nil), p.played...)
}
