package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemFunc lets a plain function run as a System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in registration order. Events pushed during a
// tick are visible to every later system of that tick and dropped after it.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, sys := range s.systems {
		sys.Update(w)
	}
	w.events.flush()
}
