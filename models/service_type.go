package models

// ServiceCategory represents a bookable category of home services.
type ServiceCategory struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ServiceCatalog is the fixed category set shown on the dashboard.
var ServiceCatalog = []ServiceCategory{
	{ID: "1", Label: "House Maintenance", Description: "General repairs and upkeep."},
	{ID: "2", Label: "Pest Control", Description: "Remove unwanted pests."},
	{ID: "3", Label: "Cleaning", Description: "Deep cleaning services."},
	{ID: "4", Label: "Installation", Description: "Install appliances and fixtures."},
	{ID: "5", Label: "Motor Maintenance", Description: "Vehicle and motor servicing."},
	{ID: "6", Label: "System Admin", Description: "IT and network support."},
	{ID: "7", Label: "Other Services", Description: "Miscellaneous professional services."},
	{ID: "8", Label: "Food & Beverages", Description: "Catering and food delivery."},
	{ID: "9", Label: "Wellness", Description: "Health and personal care."},
}

// ServiceByID looks up a catalog entry; ok is false for unknown ids.
func ServiceByID(id string) (ServiceCategory, bool) {
	for _, s := range ServiceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceCategory{}, false
}
