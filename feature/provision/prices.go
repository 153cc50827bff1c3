package provision

import (
	"gam-provisioner/core/apperr"

	"github.com/shopspring/decimal"
)

// PriceBuckets returns the CPM price points from max(0, min) to max inclusive. Each step
// adds increment and rounds to two decimals before comparing with max.
func PriceBuckets(minPrice, maxPrice, increment decimal.Decimal) ([]decimal.Decimal, error) {
	if !increment.IsPositive() {
		return nil, apperr.New(apperr.CodeConfiguration, `"app.price_buckets.increment" must be greater than 0.`)
	}

	price := decimal.Max(decimal.Zero, minPrice)
	var prices []decimal.Decimal
	for price.LessThanOrEqual(maxPrice) {
		prices = append(prices, price)

		next := price.Add(increment).Round(2)
		if !next.GreaterThan(price) {
			return nil, apperr.Newf(apperr.CodeConfiguration, `"app.price_buckets.increment" %s is lost when rounding to cents.`, increment)
		}
		price = next
	}
	return prices, nil
}
