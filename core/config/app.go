package config

// App holds the provisioning settings: what to create and where.
type App struct {
	// OrderName is the GAM order that owns every line item.
	OrderName string `mapstructure:"order_name" validate:"required"`
	// AdvertiserName is the GAM company the order and creatives belong to.
	AdvertiserName string `mapstructure:"advertiser_name" validate:"required"`
	// Bidder prefixes creative and line item names and is the bidder targeting value.
	Bidder string `mapstructure:"bidder" validate:"required"`
	// UserEmail is the trafficker assigned to a newly created order.
	UserEmail string `mapstructure:"user_email" validate:"omitempty,email"`
	// Currency is the line item cost currency and the line item name suffix.
	Currency string `mapstructure:"currency" default:"RUB" validate:"required,len=3"`

	PriceBuckets PriceBuckets `mapstructure:"price_buckets"`
	Sizes        []Size       `mapstructure:"sizes" validate:"required,min=1,dive"`

	TargetedPlacementNames []string `mapstructure:"targeted_placement_names"`
	TargetedAdUnitNames    []string `mapstructure:"targeted_ad_unit_names"`

	Targeting Targeting `mapstructure:"targeting"`
}

// PriceBuckets bounds the CPM price points, inclusive.
type PriceBuckets struct {
	Min       float64 `mapstructure:"min" default:"0" validate:"gte=0"`
	Max       float64 `mapstructure:"max" default:"0" validate:"gte=0,gtefield=Min"`
	Increment float64 `mapstructure:"increment" default:"0" validate:"gt=0"`
}

// Size is a creative size; a zero width means the adaptive size.
type Size struct {
	Width  int `mapstructure:"width" validate:"gte=0"`
	Height int `mapstructure:"height" validate:"gte=0"`
}

// Targeting names the custom targeting keys. An empty name disables that dimension.
type Targeting struct {
	Price  string `mapstructure:"price" default:""`
	Bidder string `mapstructure:"bidder" default:""`
}
