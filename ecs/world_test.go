package ecs

import (
	"testing"

	"github.com/milk9111/piratemaker/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", fresh.id(), old.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must differ from the stale handle")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not resolve")
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	if err := Add[int](w, e, kind, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, kind, intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				for _, add := range []func() error{
					func() error { return Add(w, e1, ka, intPtr(1)) },
					func() error { return Add(w, e2, ka, intPtr(2)) },
					func() error { return Add(w, e2, kb, intPtr(3)) },
					func() error { return Add(w, e2, kc, intPtr(5)) },
					func() error { return Add(w, e3, kb, intPtr(4)) },
				} {
					if err := add(); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestRequestDestroyIsDeferredUntilFlush(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, kind, intPtr(1))
	_ = Add(w, b, kind, intPtr(2))

	visited := 0
	ForEach(w, kind, func(e Entity, _ *int) {
		visited++
		RequestDestroy(w, a)
		RequestDestroy(w, a)
	})
	if visited != 2 {
		t.Fatalf("expected both entities visited while removal is pending, got %d", visited)
	}
	if !IsAlive(w, a) || !PendingDestroy(w, a) {
		t.Fatalf("a should stay alive and pending until flush")
	}

	Flush(w)
	if IsAlive(w, a) {
		t.Fatalf("a should be gone after flush")
	}
	if !IsAlive(w, b) {
		t.Fatalf("b should be untouched")
	}
	if PendingDestroy(w, a) {
		t.Fatalf("pending set should be cleared")
	}
}

type countingSystem struct {
	kind  component.ComponentKind[int]
	spawn bool
}

func (s *countingSystem) Update(w *World, _ Frame) {
	ForEach(w, s.kind, func(e Entity, v *int) {
		*v++
		if s.spawn {
			s.spawn = false
			Defer(w, func(w *World) {
				child := CreateEntity(w)
				_ = Add(w, child, s.kind, intPtr(0))
			})
		}
	})
}

func TestSchedulerSpawnsAfterSystems(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	parent := CreateEntity(w)
	_ = Add(w, parent, kind, intPtr(0))

	s := NewScheduler(&countingSystem{kind: kind, spawn: true})
	s.Update(w, Frame{DT: 0.5})

	ents := w.Query(kind)
	if len(ents) != 2 {
		t.Fatalf("expected spawned child after flush, got %d entities", len(ents))
	}
	child := ents[1]
	if v, _ := Get(w, child, kind); *v != 0 {
		t.Fatalf("child must not be updated in its spawn tick, got %d", *v)
	}
	if got := w.Clock().Now().Seconds(); got != 0.5 {
		t.Fatalf("expected clock at 0.5s, got %v", got)
	}

	s.Update(w, Frame{DT: 0.5})
	if v, _ := Get(w, child, kind); *v != 1 {
		t.Fatalf("child should update on the next tick, got %d", *v)
	}
}
