package gam

// Service is the Ad Manager facade used by the provisioning run. Every lookup returns nil
// without error when nothing matches exactly.
type Service struct {
	adUnits      repository[AdUnit]
	placements   repository[Placement]
	companies    repository[Company]
	orders       repository[Order]
	users        repository[User]
	creatives    repository[Creative]
	lineItems    repository[LineItem]
	associations repository[LineItemCreativeAssociation]
	keys         repository[CustomTargetingKey]
	values       repository[CustomTargetingValue]
}

func NewService(c *Client) *Service {
	return &Service{
		adUnits:      newRepository[AdUnit](c, "InventoryService", "AdUnits", "adUnits"),
		placements:   newRepository[Placement](c, "PlacementService", "Placements", "placements"),
		companies:    newRepository[Company](c, "CompanyService", "Companies", "companies"),
		orders:       newRepository[Order](c, "OrderService", "Orders", "orders"),
		users:        newRepository[User](c, "UserService", "Users", "users"),
		creatives:    newRepository[Creative](c, "CreativeService", "Creatives", "creatives"),
		lineItems:    newRepository[LineItem](c, "LineItemService", "LineItems", "lineItems"),
		associations: newRepository[LineItemCreativeAssociation](c, "LineItemCreativeAssociationService", "LineItemCreativeAssociations", "lineItemCreativeAssociations"),
		keys:         newRepository[CustomTargetingKey](c, "CustomTargetingService", "CustomTargetingKeys", "keys"),
		values:       newRepository[CustomTargetingValue](c, "CustomTargetingService", "CustomTargetingValues", "values"),
	}
}
