package game

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Asset files, read relative to the working directory.
const (
	FontFile      = "arial.ttf"
	EatSoundFile  = "eat.wav"
	OverSoundFile = "gameover.wav"
)

const (
	fontSize   = 24
	sampleRate = 44100
)

// Assets holds everything loaded from disk at startup.
type Assets struct {
	Face   text.Face
	Sounds *Sounds
}

// LoadAssets reads the font and both sound clips from dir. Any missing or
// corrupt file is an error; nothing touches the audio device until all
// three files have been decoded.
func LoadAssets(dir string) (*Assets, error) {
	face, err := loadFace(filepath.Join(dir, FontFile))
	if err != nil {
		return nil, err
	}
	eat, err := loadWAV(filepath.Join(dir, EatSoundFile))
	if err != nil {
		return nil, err
	}
	over, err := loadWAV(filepath.Join(dir, OverSoundFile))
	if err != nil {
		return nil, err
	}

	ctx := audio.NewContext(sampleRate)
	return &Assets{
		Face: face,
		Sounds: &Sounds{
			eat:      ctx.NewPlayerFromBytes(eat),
			gameOver: ctx.NewPlayerFromBytes(over),
		},
	}, nil
}

func loadFace(path string) (text.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load font %s", path)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %s", path)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "build face %s", path)
	}
	return text.NewGoXFace(face), nil
}

// loadWAV decodes a clip fully into 16-bit stereo PCM at sampleRate.
func loadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load sound %s", path)
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sound %s", path)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "read sound %s", path)
	}
	return pcm, nil
}

// Sounds plays the two game clips. It satisfies snake.Effects; a nil
// *Sounds plays nothing.
type Sounds struct {
	eat      *audio.Player
	gameOver *audio.Player
}

// PlayEat restarts the eat clip.
func (s *Sounds) PlayEat() {
	if s == nil {
		return
	}
	replay(s.eat)
}

// PlayGameOver restarts the game-over clip.
func (s *Sounds) PlayGameOver() {
	if s == nil {
		return
	}
	replay(s.gameOver)
}

func replay(p *audio.Player) {
	if p == nil {
		return
	}
	// Rewinding an in-memory player cannot fail.
	_ = p.SetPosition(0)
	p.Play()
}
