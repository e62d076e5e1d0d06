package ecs

// Frame carries the per-tick inputs every system reads: elapsed time and the
// static collision geometry, which stays immutable for the whole tick.
type Frame struct {
	DT       float64
	Geometry *Geometry
}

type System interface {
	Update(w *World, f Frame)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update advances the world clock, runs every system once in order and then
// flushes deferred removals and spawns. Events from the previous tick are
// discarded first.
func (s *Scheduler) Update(w *World, f Frame) {
	if w == nil {
		return
	}
	if f.DT < 0 {
		f.DT = 0
	}
	w.events.flush()
	w.clock.Advance(f.DT)
	for _, system := range s.systems {
		system.Update(w, f)
	}
	Flush(w)
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
