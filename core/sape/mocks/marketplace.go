package mocks

import (
	"context"

	"gam-provisioner/core/sape"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Marketplace is a mock of the marketplace client used by the provisioning run.
type Marketplace struct {
	mock.Mock
}

func (m *Marketplace) Login(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Marketplace) Places(ctx context.Context, prices []decimal.Decimal, adUnitIDs, sizes []string) (sape.PlaceIndex, error) {
	args := m.Called(ctx, prices, adUnitIDs, sizes)
	index, _ := args.Get(0).(sape.PlaceIndex)
	return index, args.Error(1)
}

func (m *Marketplace) CreatePlace(ctx context.Context, adUnitID string, width, height int, price decimal.Decimal) (*sape.Place, error) {
	args := m.Called(ctx, adUnitID, width, height, price)
	place, _ := args.Get(0).(*sape.Place)
	return place, args.Error(1)
}

func (m *Marketplace) HTMLCode(placeID int64) string {
	args := m.Called(placeID)
	return args.String(0)
}
