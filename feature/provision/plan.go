package provision

import (
	"context"
	"fmt"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/config"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/sape"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Size is a configured creative size with its marketplace size key.
type Size struct {
	Width  int
	Height int
	Key    string
}

// GAM returns the Ad Manager size.
func (s Size) GAM() gam.Size {
	return gam.Size{Width: s.Width, Height: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Plan is everything a run will reconcile, resolved without creating anything.
type Plan struct {
	Prices    []decimal.Decimal
	Sizes     []Size
	Inventory *Inventory

	// Advertiser and Order are nil when they do not exist yet.
	Advertiser *gam.Company
	Order      *gam.Order
}

// LineItems is the number of price × ad unit × size combinations.
func (p *Plan) LineItems() int {
	return len(p.Prices) * len(p.Inventory.AdUnits) * len(p.Sizes)
}

// SizeKeys returns the distinct marketplace size keys.
func (p *Plan) SizeKeys() []string {
	return lo.Uniq(lo.Map(p.Sizes, func(s Size, _ int) string { return s.Key }))
}

// Plan resolves prices, sizes, inventory and the existing order and advertiser.
// An existing order that belongs to another advertiser is a NOT_FOUND error.
func (s *Service) Plan(ctx context.Context) (*Plan, error) {
	sizes, err := planSizes(s.cfg.Sizes)
	if err != nil {
		return nil, err
	}

	b := s.cfg.PriceBuckets
	prices, err := PriceBuckets(decimal.NewFromFloat(b.Min), decimal.NewFromFloat(b.Max), decimal.NewFromFloat(b.Increment))
	if err != nil {
		return nil, err
	}

	inventory, err := ResolveInventory(ctx, s.ads, s.cfg.TargetedPlacementNames, s.cfg.TargetedAdUnitNames)
	if err != nil {
		return nil, err
	}

	order, err := s.ads.OrderByName(ctx, s.cfg.OrderName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %q: %w", s.cfg.OrderName, err)
	}
	advertiser, err := s.ads.AdvertiserByName(ctx, s.cfg.AdvertiserName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up advertiser %q: %w", s.cfg.AdvertiserName, err)
	}
	if order != nil && (advertiser == nil || advertiser.ID != order.AdvertiserID) {
		return nil, apperr.Newf(apperr.CodeNotFound,
			`Bad "app.advertiser_name": order %q belongs to advertiser %d.`, order.Name, order.AdvertiserID)
	}

	return &Plan{
		Prices:     prices,
		Sizes:      sizes,
		Inventory:  inventory,
		Advertiser: advertiser,
		Order:      order,
	}, nil
}

// planSizes keeps the first occurrence of every WxH and rejects sizes the marketplace
// does not know.
func planSizes(configured []config.Size) ([]Size, error) {
	sizes := make([]Size, 0, len(configured))
	for _, c := range configured {
		key, err := sape.SizeKey(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, Size{Width: c.Width, Height: c.Height, Key: key})
	}
	return lo.UniqBy(sizes, Size.String), nil
}
