package gam

import "context"

// AdvertiserType is the company type used for provisioned advertisers.
const AdvertiserType = "AD_NETWORK"

func (s *Service) AdvertiserByName(ctx context.Context, name string) (*Company, error) {
	return s.companies.find(ctx, Where(Bind("name", TextValue(name))), func(c *Company) bool {
		return c.Name == name
	})
}

// CreateAdvertiser creates an AD_NETWORK company.
func (s *Service) CreateAdvertiser(ctx context.Context, name string) (*Company, error) {
	return s.companies.create(ctx, Company{Name: name, Type: AdvertiserType}, func(c *Company) bool {
		return c.Name == name
	})
}
