package reconcile

import "context"

// Memo remembers the entities resolved during one run, keyed by name. Steps wrapped
// with it hit the remote API at most once per name.
type Memo[T any] struct {
	items map[string]*T
}

func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{items: make(map[string]*T)}
}

// Get returns the entity remembered under name.
func (m *Memo[T]) Get(name string) (*T, bool) {
	v, ok := m.items[name]
	return v, ok
}

// Len returns the number of remembered entities.
func (m *Memo[T]) Len() int {
	return len(m.items)
}

// Wrap returns step with Find answered from the memo when possible. Whatever Find or
// Create returns is remembered under step.Name.
func (m *Memo[T]) Wrap(step Step[T]) Step[T] {
	find, create := step.Find, step.Create

	step.Find = func(ctx context.Context) (*T, error) {
		if v, ok := m.items[step.Name]; ok {
			return v, nil
		}
		v, err := find(ctx)
		if err == nil && v != nil {
			m.items[step.Name] = v
		}
		return v, err
	}
	step.Create = func(ctx context.Context) (*T, error) {
		v, err := create(ctx)
		if err == nil && v != nil {
			m.items[step.Name] = v
		}
		return v, err
	}
	return step
}
