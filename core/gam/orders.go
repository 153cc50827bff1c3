package gam

import "context"

func (s *Service) OrderByName(ctx context.Context, name string) (*Order, error) {
	return s.orders.find(ctx, Where(Bind("name", TextValue(name))), func(o *Order) bool {
		return o.Name == name
	})
}

func (s *Service) CreateOrder(ctx context.Context, name string, advertiserID, traffickerID int64) (*Order, error) {
	order := Order{Name: name, AdvertiserID: advertiserID, TraffickerID: traffickerID}
	return s.orders.create(ctx, order, func(o *Order) bool {
		return o.Name == name
	})
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*User, error) {
	return s.users.find(ctx, Where(Bind("email", TextValue(email))), func(u *User) bool {
		return u.Email == email
	})
}
