package provision

import (
	"context"

	"gam-provisioner/core/gam"
	"gam-provisioner/core/sape"

	"github.com/shopspring/decimal"
)

// AdServer is the part of the Ad Manager API a run reads and writes.
// Lookups return nil without error when nothing matches.
type AdServer interface {
	AdUnitByName(ctx context.Context, name string) (*gam.AdUnit, error)
	AdUnitByID(ctx context.Context, id string) (*gam.AdUnit, error)
	PlacementByName(ctx context.Context, name string) (*gam.Placement, error)

	AdvertiserByName(ctx context.Context, name string) (*gam.Company, error)
	CreateAdvertiser(ctx context.Context, name string) (*gam.Company, error)
	OrderByName(ctx context.Context, name string) (*gam.Order, error)
	CreateOrder(ctx context.Context, name string, advertiserID, traffickerID int64) (*gam.Order, error)
	UserByEmail(ctx context.Context, email string) (*gam.User, error)

	CreativeByName(ctx context.Context, name string) (*gam.Creative, error)
	CreateCreative(ctx context.Context, spec gam.CreativeSpec) (*gam.Creative, error)
	LineItemByName(ctx context.Context, name string) (*gam.LineItem, error)
	CreateLineItem(ctx context.Context, spec gam.LineItemSpec) (*gam.LineItem, error)
	LineItemCreative(ctx context.Context, lineItemID, creativeID int64) (*gam.LineItemCreativeAssociation, error)
	CreateLineItemCreative(ctx context.Context, lineItemID, creativeID int64, size gam.Size) (*gam.LineItemCreativeAssociation, error)

	TargetingKeyByName(ctx context.Context, name string) (*gam.CustomTargetingKey, error)
	CreateTargetingKey(ctx context.Context, name string) (*gam.CustomTargetingKey, error)
	TargetingValueByName(ctx context.Context, keyID int64, name string) (*gam.CustomTargetingValue, error)
	CreateTargetingValue(ctx context.Context, keyID int64, name string) (*gam.CustomTargetingValue, error)
}

// Marketplace is the part of the Sape API a run uses.
type Marketplace interface {
	Login(ctx context.Context) (int64, error)
	Places(ctx context.Context, prices []decimal.Decimal, adUnitIDs, sizes []string) (sape.PlaceIndex, error)
	CreatePlace(ctx context.Context, adUnitID string, width, height int, price decimal.Decimal) (*sape.Place, error)
	HTMLCode(placeID int64) string
}

var (
	_ AdServer    = (*gam.Service)(nil)
	_ Marketplace = (*sape.Client)(nil)
)
