package provision

import (
	"context"
	"fmt"
	"strings"

	"gam-provisioner/core/gam"
	"gam-provisioner/core/sape"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// fakeAds is an in-memory Ad Manager keyed by the same names the real lookups use.
type fakeAds struct {
	adUnits    []gam.AdUnit
	placements []gam.Placement
	users      []gam.User

	companies    map[string]*gam.Company
	orders       map[string]*gam.Order
	creatives    map[string]*gam.Creative
	lineItems    map[string]*gam.LineItem
	specs        map[string]gam.LineItemSpec
	associations map[[2]int64]*gam.LineItemCreativeAssociation
	keys         map[string]*gam.CustomTargetingKey
	values       map[string]*gam.CustomTargetingValue

	nextID  int64
	lookups int
	creates map[string]int
	// failCreate names an operation whose create returns nothing.
	failCreate string
}

func newFakeAds() *fakeAds {
	return &fakeAds{
		companies:    make(map[string]*gam.Company),
		orders:       make(map[string]*gam.Order),
		creatives:    make(map[string]*gam.Creative),
		lineItems:    make(map[string]*gam.LineItem),
		specs:        make(map[string]gam.LineItemSpec),
		associations: make(map[[2]int64]*gam.LineItemCreativeAssociation),
		keys:         make(map[string]*gam.CustomTargetingKey),
		values:       make(map[string]*gam.CustomTargetingValue),
		nextID:       1000,
		creates:      make(map[string]int),
	}
}

func (f *fakeAds) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeAds) totalCreates() int {
	total := 0
	for _, n := range f.creates {
		total += n
	}
	return total
}

func (f *fakeAds) create(op string) bool {
	if f.failCreate == op {
		return false
	}
	f.creates[op]++
	return true
}

func (f *fakeAds) AdUnitByName(_ context.Context, name string) (*gam.AdUnit, error) {
	f.lookups++
	for i := range f.adUnits {
		if f.adUnits[i].Name == name {
			return &f.adUnits[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAds) AdUnitByID(_ context.Context, id string) (*gam.AdUnit, error) {
	f.lookups++
	for i := range f.adUnits {
		if f.adUnits[i].ID == id {
			return &f.adUnits[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAds) PlacementByName(_ context.Context, name string) (*gam.Placement, error) {
	f.lookups++
	for i := range f.placements {
		if f.placements[i].Name == name {
			return &f.placements[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAds) AdvertiserByName(_ context.Context, name string) (*gam.Company, error) {
	f.lookups++
	return f.companies[name], nil
}

func (f *fakeAds) CreateAdvertiser(_ context.Context, name string) (*gam.Company, error) {
	if !f.create("advertiser") {
		return nil, nil
	}
	c := &gam.Company{ID: f.id(), Name: name, Type: gam.AdvertiserType}
	f.companies[name] = c
	return c, nil
}

func (f *fakeAds) OrderByName(_ context.Context, name string) (*gam.Order, error) {
	f.lookups++
	return f.orders[name], nil
}

func (f *fakeAds) CreateOrder(_ context.Context, name string, advertiserID, traffickerID int64) (*gam.Order, error) {
	if !f.create("order") {
		return nil, nil
	}
	o := &gam.Order{ID: f.id(), Name: name, AdvertiserID: advertiserID, TraffickerID: traffickerID}
	f.orders[name] = o
	return o, nil
}

func (f *fakeAds) UserByEmail(_ context.Context, email string) (*gam.User, error) {
	f.lookups++
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAds) CreativeByName(_ context.Context, name string) (*gam.Creative, error) {
	f.lookups++
	return f.creatives[name], nil
}

func (f *fakeAds) CreateCreative(_ context.Context, spec gam.CreativeSpec) (*gam.Creative, error) {
	if !f.create("creative") {
		return nil, nil
	}
	c := &gam.Creative{
		XsiType:      "ThirdPartyCreative",
		ID:           f.id(),
		Name:         spec.Name,
		AdvertiserID: spec.AdvertiserID,
		Size:         spec.Size,
		Snippet:      spec.Snippet,
	}
	f.creatives[spec.Name] = c
	return c, nil
}

func (f *fakeAds) LineItemByName(_ context.Context, name string) (*gam.LineItem, error) {
	f.lookups++
	return f.lineItems[name], nil
}

func (f *fakeAds) CreateLineItem(_ context.Context, spec gam.LineItemSpec) (*gam.LineItem, error) {
	if !f.create("line item") {
		return nil, nil
	}
	li := gam.NewPriceLineItem(spec)
	li.ID = f.id()
	f.lineItems[spec.Name] = &li
	f.specs[spec.Name] = spec
	return &li, nil
}

func (f *fakeAds) LineItemCreative(_ context.Context, lineItemID, creativeID int64) (*gam.LineItemCreativeAssociation, error) {
	f.lookups++
	return f.associations[[2]int64{lineItemID, creativeID}], nil
}

func (f *fakeAds) CreateLineItemCreative(_ context.Context, lineItemID, creativeID int64, size gam.Size) (*gam.LineItemCreativeAssociation, error) {
	if !f.create("association") {
		return nil, nil
	}
	a := &gam.LineItemCreativeAssociation{LineItemID: lineItemID, CreativeID: creativeID, Sizes: []gam.Size{size}}
	f.associations[[2]int64{lineItemID, creativeID}] = a
	return a, nil
}

func (f *fakeAds) TargetingKeyByName(_ context.Context, name string) (*gam.CustomTargetingKey, error) {
	f.lookups++
	return f.keys[name], nil
}

func (f *fakeAds) CreateTargetingKey(_ context.Context, name string) (*gam.CustomTargetingKey, error) {
	if !f.create("key") {
		return nil, nil
	}
	k := &gam.CustomTargetingKey{ID: f.id(), Name: name, Type: gam.FreeformKey}
	f.keys[name] = k
	return k, nil
}

func (f *fakeAds) TargetingValueByName(_ context.Context, keyID int64, name string) (*gam.CustomTargetingValue, error) {
	f.lookups++
	return f.values[fmt.Sprintf("%d/%s", keyID, name)], nil
}

func (f *fakeAds) CreateTargetingValue(_ context.Context, keyID int64, name string) (*gam.CustomTargetingValue, error) {
	if !f.create("value") {
		return nil, nil
	}
	v := &gam.CustomTargetingValue{ID: f.id(), CustomTargetingKeyID: keyID, Name: name}
	f.values[fmt.Sprintf("%d/%s", keyID, name)] = v
	return v, nil
}

// fakeMarket is an in-memory Sape site.
type fakeMarket struct {
	places  []sape.Place
	nextID  int64
	userID  int64
	logins  int
	creates int
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{nextID: 500, userID: 1}
}

func (m *fakeMarket) Login(context.Context) (int64, error) {
	m.logins++
	return m.userID, nil
}

func (m *fakeMarket) Places(_ context.Context, prices []decimal.Decimal, adUnitIDs, sizes []string) (sape.PlaceIndex, error) {
	index := make(sape.PlaceIndex)
	for _, p := range m.places {
		fields := strings.Fields(p.Name)
		if len(fields) != 4 || fields[0] != "GAM" {
			continue
		}
		for _, price := range prices {
			key := sape.NewPlaceKey(fields[1], fields[2], price)
			if key.Name() == p.Name && lo.Contains(adUnitIDs, key.AdUnitID) && lo.Contains(sizes, key.Size) {
				index[key] = p.ID
			}
		}
	}
	return index, nil
}

func (m *fakeMarket) CreatePlace(_ context.Context, adUnitID string, width, height int, price decimal.Decimal) (*sape.Place, error) {
	size, err := sape.SizeKey(width, height)
	if err != nil {
		return nil, err
	}
	m.creates++
	m.nextID++
	p := sape.Place{ID: m.nextID, Name: sape.NewPlaceKey(adUnitID, size, price).Name()}
	m.places = append(m.places, p)
	return &p, nil
}

func (m *fakeMarket) HTMLCode(placeID int64) string {
	return fmt.Sprintf(`<div id="SRTB_%d"></div>`, placeID)
}

