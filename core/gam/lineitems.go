package gam

import (
	"context"

	"github.com/shopspring/decimal"
)

// LineItemSpec describes a price-priority line item for one price bucket, ad unit and size.
type LineItemSpec struct {
	Name         string
	OrderID      int64
	AdUnitID     string
	PlacementIDs []int64
	Size         Size
	Price        decimal.Decimal
	Currency     string
	// Criteria are ANDed together; each one is an IS match.
	Criteria []CustomCriteria
}

// Criterion targets a single custom targeting value.
func Criterion(keyID, valueID int64) CustomCriteria {
	return CustomCriteria{KeyID: keyID, ValueIDs: []int64{valueID}}
}

// NewPriceLineItem builds a PRICE_PRIORITY CPM line item that starts immediately and never
// ends, targeting one ad unit, its placements and the given criteria.
func NewPriceLineItem(spec LineItemSpec) LineItem {
	targeting := &Targeting{
		InventoryTargeting: &InventoryTargeting{
			TargetedAdUnits:      []AdUnitTargeting{{AdUnitID: spec.AdUnitID}},
			TargetedPlacementIDs: spec.PlacementIDs,
		},
	}

	if len(spec.Criteria) > 0 {
		children := make([]CustomCriteria, 0, len(spec.Criteria))
		for _, c := range spec.Criteria {
			c.XsiType = "CustomCriteria"
			c.Operator = "IS"
			children = append(children, c)
		}
		targeting.CustomTargeting = &CustomCriteriaSet{LogicalOperator: "AND", Children: children}
	}

	return LineItem{
		OrderID:              spec.OrderID,
		Name:                 spec.Name,
		StartDateTimeType:    "IMMEDIATELY",
		UnlimitedEndDateTime: true,
		CreativeRotationType: "EVEN",
		LineItemType:         "PRICE_PRIORITY",
		CostPerUnit: &Money{
			CurrencyCode: spec.Currency,
			MicroAmount:  spec.Price.Shift(6).IntPart(),
		},
		CostType:             "CPM",
		CreativePlaceholders: []CreativePlaceholder{{Size: spec.Size}},
		PrimaryGoal:          &Goal{GoalType: "NONE"},
		Targeting:            targeting,
	}
}

func (s *Service) LineItemByName(ctx context.Context, name string) (*LineItem, error) {
	return s.lineItems.find(ctx, Where(Bind("name", TextValue(name))), func(li *LineItem) bool {
		return li.Name == name
	})
}

func (s *Service) CreateLineItem(ctx context.Context, spec LineItemSpec) (*LineItem, error) {
	return s.lineItems.create(ctx, NewPriceLineItem(spec), func(li *LineItem) bool {
		return li.Name == spec.Name
	})
}

// LineItemCreative returns the association between a line item and a creative, or nil.
func (s *Service) LineItemCreative(ctx context.Context, lineItemID, creativeID int64) (*LineItemCreativeAssociation, error) {
	stmt := Where(
		Bind("lineItemId", NumberValue(lineItemID)),
		Bind("creativeId", NumberValue(creativeID)),
	)
	return s.associations.find(ctx, stmt, nil)
}

func (s *Service) CreateLineItemCreative(ctx context.Context, lineItemID, creativeID int64, size Size) (*LineItemCreativeAssociation, error) {
	lica := LineItemCreativeAssociation{
		LineItemID: lineItemID,
		CreativeID: creativeID,
		Sizes:      []Size{size},
	}
	return s.associations.create(ctx, lica, nil)
}
