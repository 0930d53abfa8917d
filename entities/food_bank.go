package entities

// FoodBank is a donation or disposal point shown on the locator map.
type FoodBank struct {
	ID               uint    `gorm:"primary_key" json:"id"`
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Type             string  `json:"type"` // "Food Donation Point" or "Green Waste Bin"
	HoursOfOperation string  `gorm:"type:text" json:"hours_of_operation"`
	Address          string  `gorm:"type:text" json:"address"`
}

func (FoodBank) TableName() string {
	return "geospatial"
}
