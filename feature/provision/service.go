package provision

import (
	"context"
	"fmt"
	"strconv"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/config"
	"gam-provisioner/core/gam"
	"gam-provisioner/core/logger"
	"gam-provisioner/core/reconcile"
	"gam-provisioner/core/sape"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Entity kinds, as they appear in logs and reports.
const (
	KindAdvertiser     = "advertiser"
	KindOrder          = "order"
	KindTargetingKey   = "custom targeting key"
	KindTargetingValue = "custom targeting value"
	KindPlace          = "sape place"
	KindCreative       = "creative"
	KindLineItem       = "line item"
	KindAssociation    = "line item creative association"
)

// Service provisions the configured inventory in Ad Manager and Sape.
type Service struct {
	ads    AdServer
	market Marketplace
	cfg    config.App
	logger *zap.Logger
}

// NewService creates a new provisioning service.
func NewService(ads AdServer, market Marketplace, cfg config.App, logger *zap.Logger) *Service {
	return &Service{
		ads:    ads,
		market: market,
		cfg:    cfg,
		logger: logger,
	}
}

// run is the state of one Apply call.
type run struct {
	log     *zap.Logger
	counter *reconcile.Counter
	report  *Report
	places  sape.PlaceIndex

	// line items are shared by the ad units of one price and size
	lineItems *reconcile.Memo[gam.LineItem]

	advertiser  *gam.Company
	order       *gam.Order
	priceKey    *gam.CustomTargetingKey
	bidderKey   *gam.CustomTargetingKey
	bidderValue *gam.CustomTargetingValue
}

// ensure runs one reconcile step, counts it and logs and records a creation.
func ensure[T any](ctx context.Context, r *run, step reconcile.Step[T], id func(*T) string) (*T, error) {
	entity, created, err := reconcile.Ensure(ctx, step)
	if err != nil {
		return nil, err
	}

	r.counter.Observe(step.Kind, created)
	if created {
		r.log.Info("Created "+step.Kind, zap.String("name", step.Name), zap.String("id", id(entity)))
		r.report.record(step.Kind, id(entity), step.Name)
	} else {
		r.log.Debug("Found "+step.Kind, zap.String("name", step.Name), zap.String("id", id(entity)))
	}
	return entity, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Apply ensures every entity of plan exists, in the order price → ad unit → size.
// Entities that already exist are reused; nothing is updated or deleted.
func (s *Service) Apply(ctx context.Context, plan *Plan) (*Report, error) {
	report := NewReport(s.cfg, plan)
	r := &run{
		log:     logger.WithRunID(s.logger, report.RunID),
		counter: reconcile.NewCounter(),
		report:  report,

		lineItems: reconcile.NewMemo[gam.LineItem](),
	}

	if err := s.ensureOrder(ctx, r, plan); err != nil {
		return report.finish(r.counter), err
	}

	if err := s.openMarketplace(ctx, r, plan); err != nil {
		return report.finish(r.counter), err
	}

	if err := s.ensureTargeting(ctx, r); err != nil {
		return report.finish(r.counter), err
	}

	for _, price := range plan.Prices {
		priceValue, err := s.ensurePriceValue(ctx, r, price)
		if err != nil {
			return report.finish(r.counter), err
		}

		for _, adUnit := range plan.Inventory.AdUnits {
			for _, size := range plan.Sizes {
				item := lineItemTarget{
					price:        price,
					priceValue:   priceValue,
					adUnit:       adUnit,
					placementIDs: plan.Inventory.PlacementIDs[adUnit.ID],
					size:         size,
				}
				if err := s.ensureLineItem(ctx, r, item); err != nil {
					return report.finish(r.counter), err
				}
			}
		}
	}

	report.finish(r.counter)
	r.log.Info("Provisioning finished",
		zap.Int("created", r.counter.TotalCreated()),
		zap.Duration("took", report.FinishedAt.Sub(report.StartedAt)))
	return report, nil
}

func (s *Service) ensureOrder(ctx context.Context, r *run, plan *Plan) error {
	advertiser, err := ensure(ctx, r, reconcile.Step[gam.Company]{
		Kind: KindAdvertiser,
		Name: s.cfg.AdvertiserName,
		Find: func(ctx context.Context) (*gam.Company, error) {
			if plan.Advertiser != nil {
				return plan.Advertiser, nil
			}
			return s.ads.AdvertiserByName(ctx, s.cfg.AdvertiserName)
		},
		Create: func(ctx context.Context) (*gam.Company, error) {
			return s.ads.CreateAdvertiser(ctx, s.cfg.AdvertiserName)
		},
	}, func(c *gam.Company) string { return formatID(c.ID) })
	if err != nil {
		return err
	}
	r.advertiser = advertiser

	order, err := ensure(ctx, r, reconcile.Step[gam.Order]{
		Kind: KindOrder,
		Name: s.cfg.OrderName,
		Find: func(ctx context.Context) (*gam.Order, error) {
			if plan.Order != nil {
				return plan.Order, nil
			}
			return s.ads.OrderByName(ctx, s.cfg.OrderName)
		},
		Create: func(ctx context.Context) (*gam.Order, error) {
			if s.cfg.UserEmail == "" {
				return nil, apperr.New(apperr.CodeConfiguration, `Not set "app.user_email".`)
			}
			user, err := reconcile.Require(ctx, "User", "email", s.cfg.UserEmail, func(ctx context.Context) (*gam.User, error) {
				return s.ads.UserByEmail(ctx, s.cfg.UserEmail)
			})
			if err != nil {
				return nil, err
			}
			return s.ads.CreateOrder(ctx, s.cfg.OrderName, advertiser.ID, user.ID)
		},
	}, func(o *gam.Order) string { return formatID(o.ID) })
	if err != nil {
		return err
	}
	r.order = order
	return nil
}

func (s *Service) openMarketplace(ctx context.Context, r *run, plan *Plan) error {
	userID, err := s.market.Login(ctx)
	if err != nil {
		return fmt.Errorf("failed to log in to sape: %w", err)
	}
	if userID == 0 {
		return apperr.New(apperr.CodeRemoteAPI, "sape login refused")
	}

	places, err := s.market.Places(ctx, plan.Prices, plan.Inventory.AdUnitIDs(), plan.SizeKeys())
	if err != nil {
		return fmt.Errorf("failed to list sape places: %w", err)
	}
	if places == nil {
		places = make(sape.PlaceIndex)
	}
	r.places = places
	r.log.Info("Loaded sape places", zap.Int("matched", len(places)))
	return nil
}

func (s *Service) ensureTargeting(ctx context.Context, r *run) error {
	var err error
	if name := s.cfg.Targeting.Price; name != "" {
		if r.priceKey, err = s.ensureTargetingKey(ctx, r, name); err != nil {
			return err
		}
	}

	if name := s.cfg.Targeting.Bidder; name != "" {
		if r.bidderKey, err = s.ensureTargetingKey(ctx, r, name); err != nil {
			return err
		}
		if r.bidderValue, err = s.ensureTargetingValue(ctx, r, r.bidderKey, s.cfg.Bidder); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ensurePriceValue(ctx context.Context, r *run, price decimal.Decimal) (*gam.CustomTargetingValue, error) {
	if r.priceKey == nil {
		return nil, nil
	}
	return s.ensureTargetingValue(ctx, r, r.priceKey, price.StringFixed(2))
}

func (s *Service) ensureTargetingKey(ctx context.Context, r *run, name string) (*gam.CustomTargetingKey, error) {
	return ensure(ctx, r, reconcile.Step[gam.CustomTargetingKey]{
		Kind: KindTargetingKey,
		Name: name,
		Find: func(ctx context.Context) (*gam.CustomTargetingKey, error) {
			return s.ads.TargetingKeyByName(ctx, name)
		},
		Create: func(ctx context.Context) (*gam.CustomTargetingKey, error) {
			return s.ads.CreateTargetingKey(ctx, name)
		},
	}, func(k *gam.CustomTargetingKey) string { return formatID(k.ID) })
}

func (s *Service) ensureTargetingValue(ctx context.Context, r *run, key *gam.CustomTargetingKey, name string) (*gam.CustomTargetingValue, error) {
	return ensure(ctx, r, reconcile.Step[gam.CustomTargetingValue]{
		Kind: KindTargetingValue,
		Name: key.Name + "=" + name,
		Find: func(ctx context.Context) (*gam.CustomTargetingValue, error) {
			return s.ads.TargetingValueByName(ctx, key.ID, name)
		},
		Create: func(ctx context.Context) (*gam.CustomTargetingValue, error) {
			return s.ads.CreateTargetingValue(ctx, key.ID, name)
		},
	}, func(v *gam.CustomTargetingValue) string { return formatID(v.ID) })
}

// lineItemTarget is one price × ad unit × size combination.
type lineItemTarget struct {
	price        decimal.Decimal
	priceValue   *gam.CustomTargetingValue
	adUnit       gam.AdUnit
	placementIDs []int64
	size         Size
}

// ensureLineItem reconciles the place, creative, line item and association of one
// combination.
func (s *Service) ensureLineItem(ctx context.Context, r *run, t lineItemTarget) error {
	key := sape.NewPlaceKey(t.adUnit.ID, t.size.Key, t.price)
	place, err := ensure(ctx, r, reconcile.Step[sape.Place]{
		Kind: KindPlace,
		Name: key.Name(),
		Find: func(context.Context) (*sape.Place, error) {
			if id, ok := r.places[key]; ok {
				return &sape.Place{ID: id, Name: key.Name()}, nil
			}
			return nil, nil
		},
		Create: func(ctx context.Context) (*sape.Place, error) {
			return s.market.CreatePlace(ctx, t.adUnit.ID, t.size.Width, t.size.Height, t.price)
		},
	}, func(p *sape.Place) string { return formatID(p.ID) })
	if err != nil {
		return err
	}
	r.places[key] = place.ID

	creativeName := fmt.Sprintf("%s: %d", s.cfg.Bidder, place.ID)
	creative, err := ensure(ctx, r, reconcile.Step[gam.Creative]{
		Kind: KindCreative,
		Name: creativeName,
		Find: func(ctx context.Context) (*gam.Creative, error) {
			return s.ads.CreativeByName(ctx, creativeName)
		},
		Create: func(ctx context.Context) (*gam.Creative, error) {
			return s.ads.CreateCreative(ctx, gam.CreativeSpec{
				Name:         creativeName,
				AdvertiserID: r.advertiser.ID,
				Snippet:      s.market.HTMLCode(place.ID),
				Size:         t.size.GAM(),
			})
		},
	}, func(c *gam.Creative) string { return formatID(c.ID) })
	if err != nil {
		return err
	}

	lineName := LineItemName(s.cfg.Bidder, t.size.Key, t.price, s.cfg.Currency)
	lineItem, err := ensure(ctx, r, r.lineItems.Wrap(reconcile.Step[gam.LineItem]{
		Kind: KindLineItem,
		Name: lineName,
		Find: func(ctx context.Context) (*gam.LineItem, error) {
			return s.ads.LineItemByName(ctx, lineName)
		},
		Create: func(ctx context.Context) (*gam.LineItem, error) {
			return s.ads.CreateLineItem(ctx, gam.LineItemSpec{
				Name:         lineName,
				OrderID:      r.order.ID,
				AdUnitID:     t.adUnit.ID,
				PlacementIDs: t.placementIDs,
				Size:         t.size.GAM(),
				Price:        t.price,
				Currency:     s.cfg.Currency,
				Criteria:     r.criteria(t.priceValue),
			})
		},
	}), func(li *gam.LineItem) string { return formatID(li.ID) })
	if err != nil {
		return err
	}

	_, err = ensure(ctx, r, reconcile.Step[gam.LineItemCreativeAssociation]{
		Kind: KindAssociation,
		Name: fmt.Sprintf("%d/%d", lineItem.ID, creative.ID),
		Find: func(ctx context.Context) (*gam.LineItemCreativeAssociation, error) {
			return s.ads.LineItemCreative(ctx, lineItem.ID, creative.ID)
		},
		Create: func(ctx context.Context) (*gam.LineItemCreativeAssociation, error) {
			return s.ads.CreateLineItemCreative(ctx, lineItem.ID, creative.ID, t.size.GAM())
		},
	}, func(a *gam.LineItemCreativeAssociation) string {
		return fmt.Sprintf("%d/%d", a.LineItemID, a.CreativeID)
	})
	return err
}

// criteria returns the bidder and price targeting of a line item; either is skipped when
// its key is not configured.
func (r *run) criteria(priceValue *gam.CustomTargetingValue) []gam.CustomCriteria {
	var criteria []gam.CustomCriteria
	if r.bidderKey != nil && r.bidderValue != nil {
		criteria = append(criteria, gam.Criterion(r.bidderKey.ID, r.bidderValue.ID))
	}
	if r.priceKey != nil && priceValue != nil {
		criteria = append(criteria, gam.Criterion(r.priceKey.ID, priceValue.ID))
	}
	return criteria
}

// LineItemName is "<bidder>: <sizeKey> <price> <currency>" with a two decimal price.
func LineItemName(bidder, sizeKey string, price decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s: %s %s %s", bidder, sizeKey, price.StringFixed(2), currency)
}
