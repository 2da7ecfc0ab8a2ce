package recipe

import (
	"context"

	"Recipe-Catalog-API/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint, userID string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags *[]entities.Tag, ingredients *[]entities.Ingredient) error
		GetTagsByIDs(ctx context.Context, userID string, ids []uint) ([]entities.Tag, error)
		GetIngredientsByIDs(ctx context.Context, userID string, ids []uint) ([]entities.Ingredient, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the recipe row together with its association rows.
// GORM wraps the insert and the join-table writes in one transaction, so a
// failure leaves nothing behind.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// GetRecipeByID is owner-scoped on purpose: another owner's recipe is
// indistinguishable from a missing one.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint, userID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe saves the row and, when a tag or ingredient set is provided,
// replaces the matching association rows inside the same transaction. A nil
// set leaves that association untouched.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags *[]entities.Tag, ingredients *[]entities.Ingredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(*tags); err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := tx.Model(recipe).Association("Ingredients").Replace(*ingredients); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) GetTagsByIDs(ctx context.Context, userID string, ids []uint) ([]entities.Tag, error) {
	var tags []entities.Tag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetIngredientsByIDs(ctx context.Context, userID string, ids []uint) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
