package provision

import (
	"context"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/reconcile"

	"github.com/samber/lo"
)

// Inventory is the set of ad units a run targets.
type Inventory struct {
	Placements []gam.Placement
	AdUnits    []gam.AdUnit
	// PlacementIDs lists, per ad unit id, the placements that target it.
	PlacementIDs map[string][]int64
}

// ResolveInventory resolves the named placements and ad units. With placements named,
// the ad units are those the placements target: the named ad units that also appear in a
// placement, or every targeted ad unit when no ad unit is named.
func ResolveInventory(ctx context.Context, ads AdServer, placementNames, adUnitNames []string) (*Inventory, error) {
	placements, err := resolvePlacementsByName(ctx, ads, placementNames)
	if err != nil {
		return nil, err
	}

	adUnits, err := resolveAdUnitsByName(ctx, ads, adUnitNames)
	if err != nil {
		return nil, err
	}

	if len(placements) > 0 {
		targeted := lo.Uniq(lo.FlatMap(placements, func(p gam.Placement, _ int) []string {
			return p.TargetedAdUnitIDs
		}))

		if len(adUnits) > 0 {
			adUnits = lo.Filter(adUnits, func(u gam.AdUnit, _ int) bool {
				return lo.Contains(targeted, u.ID)
			})
		} else {
			adUnits, err = resolveAdUnitsByID(ctx, ads, targeted)
			if err != nil {
				return nil, err
			}
		}
	}

	if len(adUnits) == 0 {
		return nil, apperr.New(apperr.CodeNotFound, "AdUnits not found.")
	}

	return &Inventory{
		Placements:   placements,
		AdUnits:      adUnits,
		PlacementIDs: placementsByAdUnit(placements),
	}, nil
}

// AdUnitIDs returns the ad unit ids in resolution order.
func (inv *Inventory) AdUnitIDs() []string {
	return lo.Map(inv.AdUnits, func(u gam.AdUnit, _ int) string { return u.ID })
}

func resolvePlacementsByName(ctx context.Context, ads AdServer, names []string) ([]gam.Placement, error) {
	placements := make([]gam.Placement, 0, len(names))
	for _, name := range names {
		p, err := reconcile.Require(ctx, "Placement", "name", name, func(ctx context.Context) (*gam.Placement, error) {
			return ads.PlacementByName(ctx, name)
		})
		if err != nil {
			return nil, err
		}
		placements = append(placements, *p)
	}
	return lo.UniqBy(placements, func(p gam.Placement) int64 { return p.ID }), nil
}

func resolveAdUnitsByName(ctx context.Context, ads AdServer, names []string) ([]gam.AdUnit, error) {
	adUnits := make([]gam.AdUnit, 0, len(names))
	for _, name := range names {
		u, err := reconcile.Require(ctx, "AdUnit", "name", name, func(ctx context.Context) (*gam.AdUnit, error) {
			return ads.AdUnitByName(ctx, name)
		})
		if err != nil {
			return nil, err
		}
		adUnits = append(adUnits, *u)
	}
	return lo.UniqBy(adUnits, func(u gam.AdUnit) string { return u.ID }), nil
}

func resolveAdUnitsByID(ctx context.Context, ads AdServer, ids []string) ([]gam.AdUnit, error) {
	adUnits := make([]gam.AdUnit, 0, len(ids))
	for _, id := range ids {
		u, err := reconcile.Require(ctx, "AdUnit", "id", id, func(ctx context.Context) (*gam.AdUnit, error) {
			return ads.AdUnitByID(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		adUnits = append(adUnits, *u)
	}
	return adUnits, nil
}

func placementsByAdUnit(placements []gam.Placement) map[string][]int64 {
	ids := make(map[string][]int64)
	for _, p := range placements {
		for _, adUnitID := range lo.Uniq(p.TargetedAdUnitIDs) {
			ids[adUnitID] = append(ids[adUnitID], p.ID)
		}
	}
	return ids
}
