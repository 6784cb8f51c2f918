package system

import (
	"github.com/milk9111/moodsprites/ecs"
	"github.com/milk9111/moodsprites/ecs/component"
)

// AudioSystem starts and stops clips flagged on Audio components.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players), len(audioComp.Stop), len(audioComp.Volume))

		for i := 0; i < count; i++ {
			player := audioComp.Players[i]

			if audioComp.Play[i] {
				if player != nil {
					player.SetVolume(audioComp.Volume[i])
					player.Rewind()
					player.Play()
				}
				audioComp.Play[i] = false
			}

			if audioComp.Stop[i] {
				if player != nil && player.IsPlaying() {
					player.Pause()
				}
				audioComp.Stop[i] = false
			}
		}
	})
}
