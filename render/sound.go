package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/piratemaker/assets"
)

// Beeper plays palette tones through an ebiten audio context.
type Beeper struct {
	ctx   *audio.Context
	tones map[string][]byte
}

func NewBeeper(ctx *audio.Context, p *assets.Palette) *Beeper {
	b := &Beeper{ctx: ctx, tones: make(map[string][]byte)}
	for name := range p.Tones {
		pcm, err := p.ToneBytes(name)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		b.tones[name] = pcm
	}
	return b
}

func (b *Beeper) Play(name string) {
	if b == nil || b.ctx == nil {
		return
	}
	pcm, ok := b.tones[name]
	if !ok {
		return
	}
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}
