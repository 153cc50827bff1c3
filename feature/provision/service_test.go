package provision

import (
	"bytes"
	"context"
	"testing"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/config"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/sape"
	"gam-provisioner/core/sape/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp() config.App {
	return config.App{
		OrderName:      "Sape RTB",
		AdvertiserName: "Sape",
		Bidder:         "sape",
		UserEmail:      "ops@example.com",
		Currency:       "RUB",
		PriceBuckets:   config.PriceBuckets{Min: 1, Max: 2, Increment: 0.5},
		Sizes: []config.Size{
			{Width: 300, Height: 250},
			{Width: 0, Height: 0},
			{Width: 300, Height: 250},
		},
		TargetedPlacementNames: []string{"Top", "Side"},
		Targeting:              config.Targeting{Price: "hb_pb", Bidder: "hb_bidder"},
	}
}

func provisionAds() *fakeAds {
	ads := inventoryAds()
	ads.users = []gam.User{{ID: 7, Name: "Ops", Email: "ops@example.com"}}
	return ads
}

func planAndApply(t *testing.T, svc *Service) (*Plan, *Report) {
	t.Helper()
	ctx := context.Background()

	plan, err := svc.Plan(ctx)
	require.NoError(t, err)

	report, err := svc.Apply(ctx, plan)
	require.NoError(t, err)
	return plan, report
}

func TestPlan(t *testing.T) {
	svc := NewService(provisionAds(), newFakeMarket(), testApp(), zap.NewNop())

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1.00", "1.50", "2.00"}, fixed(plan.Prices))
	assert.Equal(t, []Size{{Width: 300, Height: 250, Key: "300x250"}, {Width: 0, Height: 0, Key: sape.Adaptive}}, plan.Sizes)
	assert.Equal(t, []string{"300x250", sape.Adaptive}, plan.SizeKeys())
	assert.Equal(t, []string{"10", "20", "30"}, plan.Inventory.AdUnitIDs())
	assert.Equal(t, 18, plan.LineItems())
	assert.Nil(t, plan.Order)
	assert.Nil(t, plan.Advertiser)
}

func TestApply(t *testing.T) {
	ads := provisionAds()
	market := newFakeMarket()
	svc := NewService(ads, market, testApp(), zap.NewNop())

	_, report := planAndApply(t, svc)

	assert.Equal(t, 1, ads.creates["advertiser"])
	assert.Equal(t, 1, ads.creates["order"])
	assert.Equal(t, 2, ads.creates["key"])
	// one bidder value and one value per price
	assert.Equal(t, 4, ads.creates["value"])
	assert.Equal(t, 18, market.creates)
	assert.Equal(t, 18, ads.creates["creative"])
	// line item names do not carry the ad unit, so ad units share them
	assert.Equal(t, 6, ads.creates["line item"])
	assert.Equal(t, 18, ads.creates["association"])
	assert.Equal(t, 1, market.logins)

	order := ads.orders["Sape RTB"]
	require.NotNil(t, order)
	assert.Equal(t, ads.companies["Sape"].ID, order.AdvertiserID)
	assert.Equal(t, int64(7), order.TraffickerID)

	spec, ok := ads.specs["sape: 300x250 1.50 RUB"]
	require.True(t, ok)
	assert.Equal(t, order.ID, spec.OrderID)
	assert.Equal(t, "10", spec.AdUnitID)
	assert.Equal(t, []int64{1}, spec.PlacementIDs)
	assert.Equal(t, "1.5", spec.Price.String())
	bidderKey := ads.keys["hb_bidder"]
	priceKey := ads.keys["hb_pb"]
	assert.Equal(t, []gam.CustomCriteria{
		gam.Criterion(bidderKey.ID, ads.values[formatID(bidderKey.ID)+"/sape"].ID),
		gam.Criterion(priceKey.ID, ads.values[formatID(priceKey.ID)+"/1.50"].ID),
	}, spec.Criteria)

	_, ok = ads.lineItems["sape: ADAPTIVE 2.00 RUB"]
	assert.True(t, ok)

	place := market.places[0]
	assert.Equal(t, "GAM 10 300x250 1.00", place.Name)
	creative := ads.creatives["sape: "+formatID(place.ID)]
	require.NotNil(t, creative)
	assert.Equal(t, ads.companies["Sape"].ID, creative.AdvertiserID)
	assert.Equal(t, market.HTMLCode(place.ID), creative.Snippet)
	assert.Equal(t, gam.Size{Width: 300, Height: 250}, creative.Size)

	assert.Equal(t, ads.totalCreates()+market.creates, len(report.Created))
	assert.Equal(t, 18, report.CreatedCount(KindPlace))
	assert.Equal(t, 18, report.LineItems)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))
}

func TestApplyIsIdempotent(t *testing.T) {
	ads := provisionAds()
	market := newFakeMarket()
	svc := NewService(ads, market, testApp(), zap.NewNop())

	planAndApply(t, svc)
	adsCreates, marketCreates := ads.totalCreates(), market.creates

	plan, report := planAndApply(t, svc)
	assert.NotNil(t, plan.Order)
	assert.NotNil(t, plan.Advertiser)
	assert.Equal(t, adsCreates, ads.totalCreates())
	assert.Equal(t, marketCreates, market.creates)
	assert.Empty(t, report.Created)
	assert.Equal(t, 18, report.Totals[KindPlace].Found)
	assert.Equal(t, 18, report.Totals[KindAssociation].Found)
}

func TestApplyReusesExistingPlaces(t *testing.T) {
	ads := provisionAds()
	market := newFakeMarket()
	market.places = []sape.Place{{ID: 42, Name: "GAM 20 ADAPTIVE 1.50"}}
	svc := NewService(ads, market, testApp(), zap.NewNop())

	planAndApply(t, svc)

	assert.Equal(t, 17, market.creates)
	assert.NotNil(t, ads.creatives["sape: 42"])
}

func TestApplyWithoutTargeting(t *testing.T) {
	app := testApp()
	app.Targeting = config.Targeting{}
	app.PriceBuckets = config.PriceBuckets{Min: 1, Max: 1, Increment: 1}
	ads := provisionAds()
	svc := NewService(ads, newFakeMarket(), app, zap.NewNop())

	planAndApply(t, svc)

	assert.Zero(t, ads.creates["key"])
	assert.Zero(t, ads.creates["value"])
	for name, spec := range ads.specs {
		assert.Empty(t, spec.Criteria, name)
	}
}

func TestPlanAdvertiserMismatch(t *testing.T) {
	ads := provisionAds()
	ads.companies["Sape"] = &gam.Company{ID: 5, Name: "Sape"}
	ads.orders["Sape RTB"] = &gam.Order{ID: 6, Name: "Sape RTB", AdvertiserID: 99}
	svc := NewService(ads, newFakeMarket(), testApp(), zap.NewNop())

	_, err := svc.Plan(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Contains(t, err.Error(), `Bad "app.advertiser_name"`)
}

func TestPlanRejectsUnknownSize(t *testing.T) {
	app := testApp()
	app.Sizes = append(app.Sizes, config.Size{Width: 301, Height: 250})
	ads := provisionAds()
	svc := NewService(ads, newFakeMarket(), app, zap.NewNop())

	_, err := svc.Plan(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConfiguration))
	assert.Zero(t, ads.lookups)
}

func TestApplyMissingUser(t *testing.T) {
	app := testApp()
	app.UserEmail = "nobody@example.com"
	ads := provisionAds()
	market := newFakeMarket()
	svc := NewService(ads, market, app, zap.NewNop())

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)

	report, err := svc.Apply(context.Background(), plan)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Contains(t, err.Error(), `User with email "nobody@example.com" not found`)
	assert.Zero(t, ads.creates["order"])
	assert.Zero(t, market.logins)
	assert.Equal(t, 1, report.CreatedCount(KindAdvertiser))
}

func TestApplyCreationFailed(t *testing.T) {
	ads := provisionAds()
	ads.failCreate = "creative"
	svc := NewService(ads, newFakeMarket(), testApp(), zap.NewNop())

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), plan)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeCreationFailed))
	assert.Contains(t, err.Error(), `can't create creative with name "sape: 501"`)
	assert.Zero(t, ads.creates["line item"])
}

func TestApplyMarketplaceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("LoginRefused", func(t *testing.T) {
		market := new(mocks.Marketplace)
		market.On("Login", mock.Anything).Return(int64(0), nil)
		svc := NewService(provisionAds(), market, testApp(), zap.NewNop())

		plan, err := svc.Plan(ctx)
		require.NoError(t, err)

		_, err = svc.Apply(ctx, plan)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeRemoteAPI))
		market.AssertNotCalled(t, "Places", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PlaceFault", func(t *testing.T) {
		market := new(mocks.Marketplace)
		market.On("Login", mock.Anything).Return(int64(1), nil)
		market.On("Places", mock.Anything, mock.Anything, []string{"10", "20", "30"}, []string{"300x250", sape.Adaptive}).
			Return(sape.PlaceIndex(nil), nil)
		market.On("CreatePlace", mock.Anything, "10", 300, 250, mock.Anything).
			Return(nil, apperr.Remote("sape", "12", "Site is blocked"))
		ads := provisionAds()
		svc := NewService(ads, market, testApp(), zap.NewNop())

		plan, err := svc.Plan(ctx)
		require.NoError(t, err)

		_, err = svc.Apply(ctx, plan)
		require.Error(t, err)
		assert.Equal(t, "12", apperr.As(err).FaultCode)
		assert.Zero(t, ads.creates["creative"])
		market.AssertExpectations(t)
	})
}

func TestWriteSummary(t *testing.T) {
	svc := NewService(provisionAds(), newFakeMarket(), testApp(), zap.NewNop())
	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	WriteSummary(&out, testApp(), plan)

	s := out.String()
	assert.Contains(t, s, "Going to create 18 new line items.")
	assert.Contains(t, s, "  Order: Sape RTB [new]\n")
	assert.Contains(t, s, "  Advertiser: Sape [new]\n")
	assert.Contains(t, s, "  cpm = [1.00, 1.50, 2.00]\n")
	assert.Contains(t, s, "  bidder = sape\n")
	assert.Contains(t, s, "  sizes = [300x250, 0x0]\n")
	assert.Contains(t, s, "  placements = [Top, Side]\n")
	assert.Contains(t, s, "  ad units = [Home, Article, Gallery]\n")
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "", formatList(nil))
	assert.Equal(t, "a, b, c, d, e, f, g", formatList([]string{"a", "b", "c", "d", "e", "f", "g"}))

	items := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	assert.Equal(t, "1, 2, 3, ..., 8, 9, 10", formatList(items))
	assert.Equal(t, "10", items[9])
	assert.Equal(t, "4", items[3])
}

func TestLineItemName(t *testing.T) {
	assert.Equal(t, "sape: 300x250 12.50 RUB", LineItemName("sape", "300x250", d("12.5"), "RUB"))
	assert.Equal(t, "sape: ADAPTIVE 0.00 USD", LineItemName("sape", sape.Adaptive, d("0"), "USD"))
}
