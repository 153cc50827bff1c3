package gam

import "context"

func (s *Service) AdUnitByName(ctx context.Context, name string) (*AdUnit, error) {
	return s.adUnits.find(ctx, Where(Bind("name", TextValue(name))), func(u *AdUnit) bool {
		return u.Name == name
	})
}

func (s *Service) AdUnitByID(ctx context.Context, id string) (*AdUnit, error) {
	return s.adUnits.find(ctx, Where(Bind("id", Value{XsiType: "NumberValue", Value: id})), func(u *AdUnit) bool {
		return u.ID == id
	})
}

func (s *Service) PlacementByName(ctx context.Context, name string) (*Placement, error) {
	return s.placements.find(ctx, Where(Bind("name", TextValue(name))), func(p *Placement) bool {
		return p.Name == name
	})
}
