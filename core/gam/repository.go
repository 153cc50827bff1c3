package gam

import "context"

// repository issues the by-statement and create calls every Ad Manager service shares.
type repository[T any] struct {
	client  *Client
	service string
	// plural names the entity in operation names, e.g. "LineItems".
	plural string
	// param is the create parameter element, e.g. "lineItems".
	param string
}

func newRepository[T any](c *Client, service, plural, param string) repository[T] {
	return repository[T]{client: c, service: service, plural: plural, param: param}
}

// query returns every entity matching stmt.
func (r repository[T]) query(ctx context.Context, stmt Statement) ([]T, error) {
	var out struct {
		Results []T `xml:"rval>results"`
	}
	op := operation{
		name:   "get" + r.plural + "ByStatement",
		params: []param{{name: "filterStatement", value: stmt}},
	}
	if err := r.client.call(ctx, r.service, op, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// find returns the first result accepted by match, or nil. A nil match accepts any result.
func (r repository[T]) find(ctx context.Context, stmt Statement, match func(*T) bool) (*T, error) {
	results, err := r.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return first(results, match), nil
}

// create submits one entity and returns the created copy accepted by match, or nil.
func (r repository[T]) create(ctx context.Context, item T, match func(*T) bool) (*T, error) {
	var out struct {
		Rval []T `xml:"rval"`
	}
	op := operation{
		name:   "create" + r.plural,
		params: []param{{name: r.param, value: []T{item}}},
	}
	if err := r.client.call(ctx, r.service, op, &out); err != nil {
		return nil, err
	}
	return first(out.Rval, match), nil
}

func first[T any](items []T, match func(*T) bool) *T {
	for i := range items {
		if match == nil || match(&items[i]) {
			return &items[i]
		}
	}
	return nil
}
