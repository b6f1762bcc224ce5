package fillrush

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// PlayerGain adapts an ebiten audio player to GainSink.
type PlayerGain struct {
	Player *audio.Player
}

// SetGain implements GainSink.
func (p PlayerGain) SetGain(gain float64) {
	if p.Player == nil {
		return
	}
	p.Player.SetVolume(gain)
}

// toneAmplitude keeps several simultaneous bucket loops from clipping.
const toneAmplitude = 0.3

// ToneStream is an endless sine wave in 16-bit little-endian stereo PCM, the
// format audio.Context.NewPlayer expects. Each bucket plays its own tone and
// its gain follows the fill level.
type ToneStream struct {
	freq       float64
	sampleRate int
	pos        int64
}

// NewToneStream creates a sine stream of freq Hz at sampleRate.
func NewToneStream(sampleRate int, freq float64) *ToneStream {
	return &ToneStream{freq: freq, sampleRate: sampleRate}
}

// Read implements io.Reader. It always fills whole stereo frames.
func (s *ToneStream) Read(buf []byte) (int, error) {
	const frameSize = 4
	n := len(buf) / frameSize * frameSize
	for i := 0; i < n; i += frameSize {
		phase := 2 * math.Pi * s.freq * float64(s.pos) / float64(s.sampleRate)
		v := int16(math.Sin(phase) * toneAmplitude * math.MaxInt16)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
		s.pos++
	}
	return n, nil
}

// NewTonePlayer starts a looping tone on ctx, muted until the attached
// bucket gains progress.
func NewTonePlayer(ctx *audio.Context, freq float64) (*audio.Player, error) {
	p, err := ctx.NewPlayer(NewToneStream(ctx.SampleRate(), freq))
	if err != nil {
		return nil, err
	}
	p.SetVolume(0)
	p.Play()
	return p, nil
}
