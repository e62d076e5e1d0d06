package system

import (
	"github.com/milk9111/piratemaker/ecs"
	"github.com/milk9111/piratemaker/ecs/component"
)

// SoundPlayer is the sink that actually makes noise.
type SoundPlayer interface {
	Play(name string)
}

type AudioSystem struct {
	sink SoundPlayer
}

func NewAudioSystem(sink SoundPlayer) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func (a *AudioSystem) Update(w *ecs.World, _ ecs.Frame) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Names) < count {
			count = len(audioComp.Names)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			if a.sink != nil {
				a.sink.Play(audioComp.Names[i])
			}
			audioComp.Play[i] = false
		}
	})
}
