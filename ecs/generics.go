package ecs

import "github.com/milk9111/piratemaker/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil {
		return nil
	}
	if st, ok := w.stores[kind.ID()]; ok {
		typed, _ := st.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	st := newSparseSet[T]()
	w.stores[kind.ID()] = st
	return st
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	st := storeFor(w, kind, false)
	if st == nil {
		return false
	}
	return st.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	st := storeFor(w, kind, false)
	return st != nil && st.has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	st := storeFor(w, kind, false)
	if st == nil || !w.IsAlive(e) {
		return nil, false
	}
	return st.get(e)
}
