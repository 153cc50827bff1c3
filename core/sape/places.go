package sape

import (
	"context"
	"fmt"
	"strings"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/utils"

	"github.com/shopspring/decimal"
)

// Place is an RTB banner place.
type Place struct {
	ID   int64
	Name string
}

// PlaceKey identifies the place of one ad unit, size key and 2-decimal price.
type PlaceKey struct {
	AdUnitID string
	Size     string
	Price    string
}

// NewPlaceKey formats price with two decimals.
func NewPlaceKey(adUnitID, size string, price decimal.Decimal) PlaceKey {
	return PlaceKey{AdUnitID: adUnitID, Size: size, Price: price.StringFixed(2)}
}

// Name is the place name on the wire: "GAM <adUnitId> <size> <price>".
func (k PlaceKey) Name() string {
	return fmt.Sprintf("GAM %s %s %s", k.AdUnitID, k.Size, k.Price)
}

// PlaceIndex maps place keys to place ids for the duration of one run.
type PlaceIndex map[PlaceKey]int64

// Places lists the site's places and indexes those named after one of the given
// prices, ad units and size keys.
func (c *Client) Places(ctx context.Context, prices []decimal.Decimal, adUnitIDs, sizes []string) (PlaceIndex, error) {
	var raw any
	if err := c.call(ctx, "rtb.get_places", []any{c.cfg.SiteID}, &raw); err != nil {
		return nil, err
	}

	index := make(PlaceIndex)
	for _, place := range decodePlaces(raw) {
		for _, key := range matchPlace(place.Name, prices, adUnitIDs, sizes) {
			index[key] = place.ID
		}
	}
	return index, nil
}

// matchPlace returns every key whose parts appear in name. The ad unit id must follow
// the "GAM" prefix directly.
func matchPlace(name string, prices []decimal.Decimal, adUnitIDs, sizes []string) []PlaceKey {
	if !strings.HasPrefix(name, "GAM ") {
		return nil
	}

	var keys []PlaceKey
	for _, size := range sizes {
		if !strings.Contains(name, " "+size) {
			continue
		}
		for _, price := range prices {
			p := price.StringFixed(2)
			if !strings.Contains(name, " "+p) {
				continue
			}
			for _, id := range adUnitIDs {
				if strings.Index(name, " "+id+" ") == 3 {
					keys = append(keys, PlaceKey{AdUnitID: id, Size: size, Price: p})
				}
			}
		}
	}
	return keys
}

func decodePlaces(raw any) []Place {
	items, _ := raw.([]any)
	places := make([]Place, 0, len(items))
	for _, item := range items {
		if p, ok := decodePlace(item); ok {
			places = append(places, p)
		}
	}
	return places
}

func decodePlace(raw any) (Place, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Place{}, false
	}
	return Place{ID: utils.ToInt64(m["id"]), Name: utils.ToString(m["name"])}, true
}

// CreatePlace adds a banner place named after the ad unit, size and price.
func (c *Client) CreatePlace(ctx context.Context, adUnitID string, width, height int, price decimal.Decimal) (*Place, error) {
	size, err := SizeKey(width, height)
	if err != nil {
		return nil, err
	}
	sizeID, _ := SizeID(size)
	key := NewPlaceKey(adUnitID, size, price)

	var raw any
	args := []any{c.cfg.SiteID, key.Name(), 0, sizeID, price.InexactFloat64()}
	if err := c.call(ctx, "rtb.banner_place_add", args, &raw); err != nil {
		return nil, err
	}

	place, ok := decodePlace(raw)
	if !ok || place.ID == 0 {
		return nil, apperr.Newf(apperr.CodeCreationFailed, "can't create new place %s and cpm = %s", size, key.Price)
	}
	if place.Name == "" {
		place.Name = key.Name()
	}
	return &place, nil
}
