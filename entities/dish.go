package entities

// Dish is a meal from the curated meal catalog.
type Dish struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	URL         string `gorm:"column:url" json:"url"`
}

func (Dish) TableName() string {
	return "meal_data"
}

// DishIngredient maps a dish name to its ingredient list, stored as a JSON
// array of {name, quantity} pairs.
type DishIngredient struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Dish        string `gorm:"index;column:dish" json:"dish"`
	Ingredients string `gorm:"type:text;column:ingredient" json:"ingredient"`
}

func (DishIngredient) TableName() string {
	return "food_ingredients"
}
