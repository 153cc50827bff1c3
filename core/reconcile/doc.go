// Package reconcile provides the generic get-or-create step used to bring remote
// inventory in line with the configured price × ad unit × size product.
//
// Every remote entity the provisioner manages is named so that its name encodes its
// composite key. Reconciling one entity is therefore always the same two calls:
//
//  1. Find: an exact-name (or exact-id) lookup.
//  2. Create: a single-element create, only when Find reported nothing.
//
// Ensure runs that pair and turns an empty create result into a CREATION_FAILED error.
// Require is the strict variant for entities that must already exist.
//
// # Usage Example
//
//	order, created, err := reconcile.Ensure(ctx, reconcile.Step[gam.Order]{
//	    Kind:   "order",
//	    Name:   name,
//	    Find:   func(ctx context.Context) (*gam.Order, error) { return ads.OrderByName(ctx, name) },
//	    Create: func(ctx context.Context) (*gam.Order, error) { return ads.CreateOrder(ctx, name, advID, userID) },
//	})
//
// Re-running a reconciliation against unchanged remote state creates nothing: every step
// resolves through Find. Memo keeps what one run already resolved so a name shared by
// several combinations is looked up once. Counter tallies found and created entities per
// kind for reports.
package reconcile
