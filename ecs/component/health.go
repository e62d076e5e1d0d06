package component

// Health is clamped to [0, Max] by every mutation.
type Health struct {
	Current   int
	Max       int
	BarLength int
}

func (h *Health) Heal(amount int) {
	if h == nil {
		return
	}
	h.set(h.Current + amount)
}

func (h *Health) Hurt(amount int) {
	if h == nil {
		return
	}
	h.set(h.Current - amount)
}

func (h *Health) set(v int) {
	if v < 0 {
		v = 0
	}
	if v > h.Max {
		v = h.Max
	}
	h.Current = v
}

// BarWidth is the drawn length of the health bar in pixels.
func (h *Health) BarWidth() float64 {
	if h == nil || h.Max <= 0 || h.BarLength <= 0 {
		return 0
	}
	ratio := float64(h.Max) / float64(h.BarLength)
	return float64(h.Current) / ratio
}

var HealthComponent = NewComponent[Health]()
