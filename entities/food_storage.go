package entities

// FoodStorage is the reference table of known food types and their storage
// durations. Method 1 means the fridge is recommended, any other value means
// the pantry.
type FoodStorage struct {
	ID          uint   `gorm:"primary_key" json:"id"`
	Type        string `gorm:"index" json:"type"`
	PantryDays  int    `gorm:"column:pantry" json:"pantry"`
	FridgeDays  int    `gorm:"column:fridge" json:"fridge"`
	Method      int    `json:"method"`
	StorageTime int    `gorm:"column:storage_time" json:"storage_time"`
}

func (FoodStorage) TableName() string {
	return "food_storage"
}
