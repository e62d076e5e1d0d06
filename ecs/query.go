package ecs

import "github.com/milk9111/piratemaker/ecs/component"

// ForEach visits every alive entity holding the component. The entity list
// is snapshotted first, so fn may add or remove components freely.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	st := storeFor(w, kind, false)
	if st == nil || fn == nil {
		return
	}
	for _, e := range w.Query(kind) {
		if v, ok := st.get(e); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	sa, sb, sc := storeFor(w, ka, false), storeFor(w, kb, false), storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		c, okC := sc.get(e)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(e Entity, a *A, b *B, c *C, d *D)) {
	sa, sb, sc, sd := storeFor(w, ka, false), storeFor(w, kb, false), storeFor(w, kc, false), storeFor(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := sa.get(e)
		b, okB := sb.get(e)
		c, okC := sc.get(e)
		d, okD := sd.get(e)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
