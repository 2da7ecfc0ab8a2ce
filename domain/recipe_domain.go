package domain

import (
	"errors"

	"Recipe-Catalog-API/entities"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrUnknownTag        = errors.New("tag does not exist")
	ErrUnknownIngredient = errors.New("ingredient does not exist")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidTime       = errors.New("time_minutes must not be negative")
	ErrTitleRequired     = errors.New("title is required")
	ErrPriceRequired     = errors.New("price is required")
	ErrTimeRequired      = errors.New("time_minutes is required")
)

// UpdateMode distinguishes PATCH (only provided fields change) from PUT
// (all writable fields are required and replaced).
type UpdateMode int

const (
	UpdateModePartial UpdateMode = iota
	UpdateModeFull
)

type (
	CreateRecipeRequest struct {
		Title       string   `json:"title" validate:"required"`
		Price       *float64 `json:"price" validate:"required,gte=0"`
		TimeMinutes *int     `json:"time_minutes" validate:"required,gte=0"`
		Link        string   `json:"link" validate:"omitempty"`
		Tags        []uint   `json:"tags" validate:"omitempty"`
		Ingredients []uint   `json:"ingredients" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Title       *string  `json:"title" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		TimeMinutes *int     `json:"time_minutes" validate:"omitempty,gte=0"`
		Link        *string  `json:"link" validate:"omitempty"`
		Tags        *[]uint  `json:"tags" validate:"omitempty"`
		Ingredients *[]uint  `json:"ingredients" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID          uint    `json:"id"`
		Title       string  `json:"title"`
		Price       float64 `json:"price"`
		TimeMinutes int     `json:"time_minutes"`
		Link        string  `json:"link,omitempty"`
		Tags        []uint  `json:"tags"`
		Ingredients []uint  `json:"ingredients"`
	}

	RecipeDetailResponse struct {
		ID          uint                 `json:"id"`
		Title       string               `json:"title"`
		Price       float64              `json:"price"`
		TimeMinutes int                  `json:"time_minutes"`
		Link        string               `json:"link,omitempty"`
		Tags        []TagResponse        `json:"tags"`
		Ingredients []IngredientResponse `json:"ingredients"`
	}
)

func NewRecipeResponse(recipe entities.Recipe) RecipeResponse {
	res := RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Price:       recipe.Price,
		TimeMinutes: recipe.TimeMinutes,
		Link:        recipe.Link,
		Tags:        make([]uint, 0, len(recipe.Tags)),
		Ingredients: make([]uint, 0, len(recipe.Ingredients)),
	}
	for _, tag := range recipe.Tags {
		res.Tags = append(res.Tags, tag.ID)
	}
	for _, ingredient := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, ingredient.ID)
	}
	return res
}

func NewRecipeDetailResponse(recipe entities.Recipe) RecipeDetailResponse {
	res := RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Price:       recipe.Price,
		TimeMinutes: recipe.TimeMinutes,
		Link:        recipe.Link,
		Tags:        make([]TagResponse, 0, len(recipe.Tags)),
		Ingredients: make([]IngredientResponse, 0, len(recipe.Ingredients)),
	}
	for _, tag := range recipe.Tags {
		res.Tags = append(res.Tags, NewTagResponse(tag))
	}
	for _, ingredient := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, NewIngredientResponse(ingredient))
	}
	return res
}
