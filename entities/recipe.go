package entities

import "github.com/google/uuid"

type Recipe struct {
	ID          uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Price       float64   `gorm:"type:decimal(7,2)" json:"price"`
	TimeMinutes int       `json:"time_minutes"`
	Link        string    `json:"link,omitempty"`

	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

// RecipeTag and RecipeIngredient are the association rows behind the
// many-to-many fields above. They are registered with SetupJoinTable during
// migration so the repository can write them inside the same transaction as
// the recipe row.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey"`
	IngredientID uint `gorm:"primaryKey"`
}
