package entities

// SecondLifeMethod is one repurposing idea from the "second life" catalog:
// a way to reuse a food scrap instead of binning it.
type SecondLifeMethod struct {
	MethodID       int    `gorm:"primary_key;column:method_id" json:"method_id"`
	MethodName     string `json:"method_name"`
	IsCombo        string `json:"is_combo"`
	MethodCategory string `json:"method_category"`
	Ingredient     string `gorm:"index" json:"ingredient"`
	Description    string `gorm:"type:text" json:"description"`
	Picture        string `json:"picture"`
}

func (SecondLifeMethod) TableName() string {
	return "diy_products"
}
