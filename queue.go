package twistycube

// Validator expands a submitted item into zero or more canonical items.
type Validator[T any] func(T) []T

// Queue keeps pending items (future, next first) and applied items
// (history, oldest first). Dequeue and Undo move items between the two
// without changing the total.
//
// Items are compared by identity, so pointer types give each submission
// its own slot.
type Queue[T comparable] struct {
	history    []T
	future     []T
	validate   Validator[T]
	looping    bool
	useHistory bool
}

// NewQueue creates an empty queue. validate may be nil.
func NewQueue[T comparable](validate Validator[T]) *Queue[T] {
	return &Queue[T]{validate: validate, useHistory: true}
}

// SetLooping makes Dequeue recycle history once the future runs dry.
func (q *Queue[T]) SetLooping(enabled bool) {
	q.looping = enabled
}

// SetUseHistory controls whether dequeued items are kept for Undo.
func (q *Queue[T]) SetUseHistory(enabled bool) {
	q.useHistory = enabled
}

// Enqueue validates each item and appends the results to the future.
// It returns the items actually appended.
func (q *Queue[T]) Enqueue(items ...T) []T {
	var added []T
	for _, item := range items {
		expanded := []T{item}
		if q.validate != nil {
			expanded = q.validate(item)
		}
		q.future = append(q.future, expanded...)
		added = append(added, expanded...)
	}
	return added
}

// Dequeue moves the next pending item into history and returns it.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.future) == 0 {
		if !q.looping || len(q.history) == 0 {
			return zero, false
		}
		q.future, q.history = q.history, nil
	}
	item := q.future[0]
	q.future[0] = zero
	q.future = q.future[1:]
	if q.useHistory {
		q.history = append(q.history, item)
	}
	return item, true
}

// Undo moves the most recent history item back to the front of the
// future and returns it.
func (q *Queue[T]) Undo() (T, bool) {
	var zero T
	if len(q.history) == 0 {
		return zero, false
	}
	last := len(q.history) - 1
	item := q.history[last]
	q.history[last] = zero
	q.history = q.history[:last]
	q.future = append([]T{item}, q.future...)
	return item, true
}

// Redo behaves exactly like Dequeue.
func (q *Queue[T]) Redo() (T, bool) {
	return q.Dequeue()
}

// Remove drops items from the future. It returns how many were removed.
func (q *Queue[T]) Remove(items ...T) int {
	var n int
	q.future, n = without(q.future, items)
	return n
}

// Purge drops items from history. It returns how many were removed.
func (q *Queue[T]) Purge(items ...T) int {
	var n int
	q.history, n = without(q.history, items)
	return n
}

// Empty clears the future, and the history too when clearHistory is set.
func (q *Queue[T]) Empty(clearHistory bool) {
	q.future = nil
	if clearHistory {
		q.history = nil
	}
}

// History returns a copy of the applied items, oldest first.
func (q *Queue[T]) History() []T {
	return append([]T(nil), q.history...)
}

// Future returns a copy of the pending items, next first.
func (q *Queue[T]) Future() []T {
	return append([]T(nil), q.future...)
}

// Pending returns the number of items waiting in the future.
func (q *Queue[T]) Pending() int {
	return len(q.future)
}

// Len returns the total number of items held.
func (q *Queue[T]) Len() int {
	return len(q.history) + len(q.future)
}

func without[T comparable](list, drop []T) ([]T, int) {
	if len(drop) == 0 || len(list) == 0 {
		return list, 0
	}
	out := list[:0:0]
	removed := 0
	for _, item := range list {
		hit := false
		for _, d := range drop {
			if item == d {
				hit = true
				break
			}
		}
		if hit {
			removed++
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
