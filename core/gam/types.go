package gam

// Size is a creative size.
type Size struct {
	Width         int  `xml:"width"`
	Height        int  `xml:"height"`
	IsAspectRatio bool `xml:"isAspectRatio"`
}

// AdUnit is an inventory ad unit. Ad unit ids are strings in the API.
type AdUnit struct {
	ID         string `xml:"id"`
	ParentID   string `xml:"parentId"`
	Name       string `xml:"name"`
	AdUnitCode string `xml:"adUnitCode"`
	Status     string `xml:"status"`
}

// Placement groups ad units.
type Placement struct {
	ID                int64    `xml:"id"`
	Name              string   `xml:"name"`
	Description       string   `xml:"description"`
	PlacementCode     string   `xml:"placementCode"`
	Status            string   `xml:"status"`
	TargetedAdUnitIDs []string `xml:"targetedAdUnitIds"`
}

// Company is an advertiser.
type Company struct {
	ID   int64  `xml:"id,omitempty"`
	Name string `xml:"name"`
	Type string `xml:"type"`
}

// User is a network user; orders name one as trafficker.
type User struct {
	ID    int64  `xml:"id"`
	Name  string `xml:"name"`
	Email string `xml:"email"`
}

// Order owns line items. Field order follows the API schema sequence.
type Order struct {
	ID           int64  `xml:"id,omitempty"`
	Name         string `xml:"name"`
	Status       string `xml:"status,omitempty"`
	AdvertiserID int64  `xml:"advertiserId"`
	TraffickerID int64  `xml:"traffickerId"`
}

// Creative covers the fields of ThirdPartyCreative the provisioner reads and writes.
type Creative struct {
	XsiType               string `xml:"xsi:type,attr,omitempty"`
	AdvertiserID          int64  `xml:"advertiserId"`
	ID                    int64  `xml:"id,omitempty"`
	Name                  string `xml:"name"`
	Size                  Size   `xml:"size"`
	Snippet               string `xml:"snippet,omitempty"`
	IsSafeFrameCompatible bool   `xml:"isSafeFrameCompatible,omitempty"`
}

type Money struct {
	CurrencyCode string `xml:"currencyCode"`
	MicroAmount  int64  `xml:"microAmount"`
}

type Goal struct {
	GoalType string `xml:"goalType"`
}

type CreativePlaceholder struct {
	Size Size `xml:"size"`
}

type AdUnitTargeting struct {
	AdUnitID string `xml:"adUnitId"`
}

type InventoryTargeting struct {
	TargetedAdUnits      []AdUnitTargeting `xml:"targetedAdUnits"`
	TargetedPlacementIDs []int64           `xml:"targetedPlacementIds"`
}

// CustomCriteria is one key IS value-set node.
type CustomCriteria struct {
	XsiType  string  `xml:"xsi:type,attr,omitempty"`
	KeyID    int64   `xml:"keyId"`
	ValueIDs []int64 `xml:"valueIds"`
	Operator string  `xml:"operator"`
}

type CustomCriteriaSet struct {
	LogicalOperator string           `xml:"logicalOperator"`
	Children        []CustomCriteria `xml:"children"`
}

type Targeting struct {
	InventoryTargeting *InventoryTargeting `xml:"inventoryTargeting,omitempty"`
	CustomTargeting    *CustomCriteriaSet  `xml:"customTargeting,omitempty"`
}

// LineItem covers the fields of a price-priority line item. Field order follows the
// API schema sequence.
type LineItem struct {
	OrderID              int64                 `xml:"orderId"`
	ID                   int64                 `xml:"id,omitempty"`
	Name                 string                `xml:"name"`
	StartDateTimeType    string                `xml:"startDateTimeType,omitempty"`
	UnlimitedEndDateTime bool                  `xml:"unlimitedEndDateTime"`
	CreativeRotationType string                `xml:"creativeRotationType,omitempty"`
	LineItemType         string                `xml:"lineItemType,omitempty"`
	CostPerUnit          *Money                `xml:"costPerUnit,omitempty"`
	CostType             string                `xml:"costType,omitempty"`
	CreativePlaceholders []CreativePlaceholder `xml:"creativePlaceholders"`
	Status               string                `xml:"status,omitempty"`
	PrimaryGoal          *Goal                 `xml:"primaryGoal,omitempty"`
	Targeting            *Targeting            `xml:"targeting,omitempty"`
}

// LineItemCreativeAssociation links a creative to a line item.
type LineItemCreativeAssociation struct {
	LineItemID int64  `xml:"lineItemId"`
	CreativeID int64  `xml:"creativeId"`
	Sizes      []Size `xml:"sizes"`
	Status     string `xml:"status,omitempty"`
}

type CustomTargetingKey struct {
	ID          int64  `xml:"id,omitempty"`
	Name        string `xml:"name"`
	DisplayName string `xml:"displayName,omitempty"`
	Type        string `xml:"type,omitempty"`
	Status      string `xml:"status,omitempty"`
}

type CustomTargetingValue struct {
	CustomTargetingKeyID int64  `xml:"customTargetingKeyId"`
	ID                   int64  `xml:"id,omitempty"`
	Name                 string `xml:"name"`
	DisplayName          string `xml:"displayName,omitempty"`
	MatchType            string `xml:"matchType,omitempty"`
	Status               string `xml:"status,omitempty"`
}
