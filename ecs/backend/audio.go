package backend

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/monsterfighter/assets"
	"github.com/milk9111/monsterfighter/common"
	"github.com/milk9111/monsterfighter/ecs"
	"github.com/milk9111/monsterfighter/ecs/component"
	"github.com/milk9111/monsterfighter/prefabs"
)

type clipState int

const (
	clipNotLoaded clipState = iota
	clipLoaded
	clipFailed
)

type clip struct {
	state  clipState
	volume float64
	player *audio.Player
}

type loadedClip struct {
	name string
	pcm  []byte
	err  error
}

// AudioSystem plays clips named by AudioRequest entities. Clips decode in
// the background; a request for a clip that is not loaded yet is dropped.
type AudioSystem struct {
	volume float64
	clips  map[string]*clip
	loaded chan loadedClip
}

func NewAudioSystem(spec *prefabs.AudioSpec, volume float64) *AudioSystem {
	a := &AudioSystem{
		volume: common.Clamp01(volume),
		clips:  make(map[string]*clip, len(spec.Clips)),
		loaded: make(chan loadedClip, len(spec.Clips)),
	}
	for _, cs := range spec.Clips {
		a.clips[cs.Name] = &clip{state: clipNotLoaded, volume: cs.Volume}
		go func(name, file string) {
			pcm, err := assets.LoadClip(name, file)
			a.loaded <- loadedClip{name: name, pcm: pcm, err: err}
		}(cs.Name, cs.File)
	}
	return a
}

func (a *AudioSystem) SetVolume(v float64) {
	a.volume = common.Clamp01(v)
}

func (a *AudioSystem) Update(w *ecs.World) {
	a.poll()

	for _, e := range ecs.Query(w, component.AudioRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.AudioRequestComponent.Kind())
		ecs.DestroyEntity(w, e)
		if !ok {
			continue
		}
		c, ok := a.clips[req.Clip]
		if !ok || c.state != clipLoaded {
			continue
		}
		if !c.player.IsPlaying() {
			c.player.SetVolume(a.volume * c.volume)
			if err := c.player.Rewind(); err != nil {
				log.Printf("audio: rewind %s: %v", req.Clip, err)
				continue
			}
			c.player.Play()
		}
	}
}

func (a *AudioSystem) poll() {
	for {
		select {
		case l := <-a.loaded:
			c := a.clips[l.name]
			if l.err != nil {
				log.Printf("audio: load %s: %v", l.name, l.err)
				c.state = clipFailed
				continue
			}
			c.player = assets.Context().NewPlayerFromBytes(l.pcm)
			c.state = clipLoaded
		default:
			return
		}
	}
}
