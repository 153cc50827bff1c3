package gam

import "context"

// CreativeSpec describes a third-party creative serving a marketplace snippet.
type CreativeSpec struct {
	Name         string
	AdvertiserID int64
	Snippet      string
	Size         Size
}

func (s *Service) CreativeByName(ctx context.Context, name string) (*Creative, error) {
	return s.creatives.find(ctx, Where(Bind("name", TextValue(name))), func(c *Creative) bool {
		return c.Name == name
	})
}

// CreateCreative creates a SafeFrame compatible ThirdPartyCreative.
func (s *Service) CreateCreative(ctx context.Context, spec CreativeSpec) (*Creative, error) {
	creative := Creative{
		XsiType:               "ThirdPartyCreative",
		AdvertiserID:          spec.AdvertiserID,
		Name:                  spec.Name,
		Size:                  spec.Size,
		Snippet:               spec.Snippet,
		IsSafeFrameCompatible: true,
	}
	return s.creatives.create(ctx, creative, func(c *Creative) bool {
		return c.Name == spec.Name
	})
}
