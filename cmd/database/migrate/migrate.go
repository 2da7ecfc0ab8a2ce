package migration

import (
	"fmt"
	"log"

	"Recipe-Catalog-API/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// register the explicit association models so recipe writes go through
	// them instead of implicit join tables
	if err := db.SetupJoinTable(&entities.Recipe{}, "Tags", &entities.RecipeTag{}); err != nil {
		log.Fatalf("Error setting up recipe_tags join table: %v", err)
		return err
	}
	if err := db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error setting up recipe_ingredients join table: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Tag{}); err != nil {
		log.Fatalf("Error migrating tag database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
