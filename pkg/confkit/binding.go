package confkit

// Binding connects a control to the value it edits. The application owns
// the value; the control reads it through Get on every frame and writes it
// through Set when the user changes it.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// Bind returns a binding reading and writing *ptr.
func Bind[T any](ptr *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *ptr },
		Set: func(v T) { *ptr = v },
	}
}

func (b Binding[T]) valid() bool {
	return b.Get != nil && b.Set != nil
}

// orLocal returns b, or a binding over a private cell seeded with def when
// b is incomplete.
func (b Binding[T]) orLocal(def T) Binding[T] {
	if b.valid() {
		return b
	}
	cell := def
	return Bind(&cell)
}

// IntBinding adapts an int binding for a slider. Written values are rounded.
func IntBinding(b Binding[int]) Binding[float64] {
	return Binding[float64]{
		Get: func() float64 { return float64(b.Get()) },
		Set: func(v float64) {
			if v < 0 {
				b.Set(int(v - 0.5))
				return
			}
			b.Set(int(v + 0.5))
		},
	}
}

// Float32Binding adapts a float32 binding for a slider.
func Float32Binding(b Binding[float32]) Binding[float64] {
	return Binding[float64]{
		Get: func() float64 { return float64(b.Get()) },
		Set: func(v float64) { b.Set(float32(v)) },
	}
}
