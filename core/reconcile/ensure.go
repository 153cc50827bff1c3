package reconcile

import (
	"context"
	"fmt"

	"gam-provisioner/core/apperr"
)

// Step describes one get-or-create reconciliation for a single entity.
// The entity name embeds its composite key, so lookup by name is lookup by key.
type Step[T any] struct {
	// Kind is the entity kind used in errors and logs (e.g. "line item").
	Kind string
	// Name is the exact remote name.
	Name string
	// Find returns the existing entity or nil.
	Find func(ctx context.Context) (*T, error)
	// Create creates the entity and returns it, or nil when nothing matching came back.
	Create func(ctx context.Context) (*T, error)
}

// Ensure runs the step: it returns the existing entity when Find reports one, otherwise
// the entity produced by Create. created is true only for the latter.
// A nil result from Create is a CREATION_FAILED error.
func Ensure[T any](ctx context.Context, step Step[T]) (entity *T, created bool, err error) {
	entity, err = step.Find(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s %q: %w", step.Kind, step.Name, err)
	}
	if entity != nil {
		return entity, false, nil
	}

	entity, err = step.Create(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create %s %q: %w", step.Kind, step.Name, err)
	}
	if entity == nil {
		return nil, false, apperr.CreationFailed(step.Kind, step.Name)
	}

	return entity, true, nil
}

// Require returns the entity found by find, or a NOT_FOUND error naming field and value.
func Require[T any](ctx context.Context, kind, field, value string, find func(ctx context.Context) (*T, error)) (*T, error) {
	entity, err := find(ctx)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperr.NotFound(kind, field, value)
	}
	return entity, nil
}
