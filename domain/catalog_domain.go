package domain

import (
	"errors"

	"Recipe-Catalog-API/entities"
)

var (
	MessageSuccessGetTags          = "success get tags"
	MessageSuccessCreateTag        = "tag created successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"

	MessageFailedGetTags          = "failed to get tags"
	MessageFailedCreateTag        = "failed to create tag"
	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrNameRequired = errors.New("name is required")
)

type (
	CreateTagRequest struct {
		Name string `json:"name" validate:"required"`
	}

	TagResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
	}

	IngredientResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)

func NewTagResponse(tag entities.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func NewIngredientResponse(ingredient entities.Ingredient) IngredientResponse {
	return IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}
}
