package reconcile

import "sort"

// Counter tallies how many entities of each kind a run found and created.
type Counter struct {
	found   map[string]int
	created map[string]int
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{
		found:   make(map[string]int),
		created: make(map[string]int),
	}
}

// Observe records the outcome of one Ensure call.
func (c *Counter) Observe(kind string, created bool) {
	if created {
		c.created[kind]++
		return
	}
	c.found[kind]++
}

// Created returns the number of created entities of kind.
func (c *Counter) Created(kind string) int {
	return c.created[kind]
}

// Found returns the number of existing entities of kind.
func (c *Counter) Found(kind string) int {
	return c.found[kind]
}

// TotalCreated returns the number of created entities of all kinds.
func (c *Counter) TotalCreated() int {
	total := 0
	for _, n := range c.created {
		total += n
	}
	return total
}

// Kinds returns every observed kind, sorted.
func (c *Counter) Kinds() []string {
	seen := make(map[string]struct{})
	for k := range c.found {
		seen[k] = struct{}{}
	}
	for k := range c.created {
		seen[k] = struct{}{}
	}
	kinds := make([]string, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
