package physics

// Trail keeps the Max most recent points, dropping the oldest first.
type Trail[T any] struct {
	Points []T
	Max    int
}

func NewTrail[T any](max int) Trail[T] {
	if max < 0 {
		max = 0
	}
	return Trail[T]{Points: make([]T, 0, max), Max: max}
}

// Push appends p and evicts from the front once Max is exceeded.
// A Trail with Max 0 stays empty.
func (t *Trail[T]) Push(p T) {
	if t.Max <= 0 {
		t.Points = t.Points[:0]
		return
	}
	t.Points = append(t.Points, p)
	t.Trim()
}

// Trim drops the oldest points until at most Max remain.
func (t *Trail[T]) Trim() {
	if over := len(t.Points) - t.Max; over > 0 {
		n := copy(t.Points, t.Points[over:])
		t.Points = t.Points[:n]
	}
}

func (t *Trail[T]) Reset()   { t.Points = t.Points[:0] }
func (t *Trail[T]) Len() int { return len(t.Points) }

// Last returns the most recent point, or false when empty.
func (t *Trail[T]) Last() (T, bool) {
	var zero T
	if len(t.Points) == 0 {
		return zero, false
	}
	return t.Points[len(t.Points)-1], true
}
