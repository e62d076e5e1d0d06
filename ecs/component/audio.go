package component

// Audio lists the sounds an entity can trigger. Systems set Play[i] and the
// audio system hands the request to the sound sink and clears it.
type Audio struct {
	Names []string
	Play  []bool
}

// Request flags name for playback. Unknown names are ignored.
func (a *Audio) Request(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
		}
	}
}

var AudioComponent = NewComponent[Audio]()

const (
	SoundJump = "jump"
	SoundHit  = "hit"
	SoundCoin = "coin"
)
