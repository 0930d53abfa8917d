package migration

import (
	"bestbefore-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid-ossp for user ids, earthdistance/cube for the food bank locator
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodStorage{}); err != nil {
		log.Fatalf("Error migrating food storage table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodBank{}); err != nil {
		log.Fatalf("Error migrating food bank table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SecondLifeMethod{}); err != nil {
		log.Fatalf("Error migrating second life table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		log.Fatalf("Error migrating dish table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DishIngredient{}); err != nil {
		log.Fatalf("Error migrating dish ingredient table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
