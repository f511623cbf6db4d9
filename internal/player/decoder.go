package player

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

// DecoderStrategy decodes MP3 files in process and plays the PCM stream
// through the system audio device. It needs no external player.
type DecoderStrategy struct {
	once       sync.Once
	otoCtx     *oto.Context
	sampleRate int
	err        error
}

// NewDecoderStrategy creates the decoder strategy. The audio device is
// opened on first use.
func NewDecoderStrategy() *DecoderStrategy {
	return &DecoderStrategy{}
}

// Name returns the strategy name
func (d *DecoderStrategy) Name() string {
	return "mp3-decoder"
}

// Supports accepts MP3 files only
func (d *DecoderStrategy) Supports(file string) bool {
	return strings.ToLower(filepath.Ext(file)) == ".mp3"
}

// Play decodes and plays the file, returning when playback ends or ctx is
// cancelled
func (d *DecoderStrategy) Play(ctx context.Context, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("failed to decode mp3: %w", err)
	}

	otoCtx, err := d.context(decoder.SampleRate())
	if err != nil {
		return err
	}

	p := otoCtx.NewPlayer(decoder)
	p.Play()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return p.Err()
}

// context opens the audio device once per process. Its sample rate is
// fixed by the first file played.
func (d *DecoderStrategy) context(sampleRate int) (*oto.Context, error) {
	d.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		}
		otoCtx, ready, err := oto.NewContext(op)
		if err != nil {
			d.err = fmt.Errorf("failed to open audio device: %w", err)
			return
		}
		<-ready
		d.otoCtx = otoCtx
		d.sampleRate = sampleRate
	})

	if d.err != nil {
		return nil, d.err
	}
	if sampleRate != d.sampleRate {
		return nil, fmt.Errorf("audio device runs at %d Hz, file is %d Hz", d.sampleRate, sampleRate)
	}
	return d.otoCtx, nil
}
