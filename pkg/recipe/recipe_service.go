package recipe

import (
	"context"
	"errors"
	"strings"

	"Recipe-Catalog-API/domain"
	"Recipe-Catalog-API/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, recipeID uint, userID string) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID uint, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest, userID string, mode domain.UpdateMode) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, domain.NewRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.RecipeResponse{}, domain.ErrTitleRequired
	}
	if req.Price == nil {
		return domain.RecipeResponse{}, domain.ErrPriceRequired
	}
	if *req.Price < 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidPrice
	}
	if req.TimeMinutes == nil {
		return domain.RecipeResponse{}, domain.ErrTimeRequired
	}
	if *req.TimeMinutes < 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidTime
	}

	tags, err := s.resolveTags(ctx, userID, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	ingredients, err := s.resolveIngredients(ctx, userID, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	newRecipe := entities.Recipe{
		UserID:      ownerID,
		Title:       title,
		Price:       *req.Price,
		TimeMinutes: *req.TimeMinutes,
		Link:        req.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &newRecipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return domain.NewRecipeResponse(newRecipe), nil
}

// GetRecipe and GetRecipeDetail read the same stored aggregate and differ
// only in representation: bare child ids versus expanded {id, name} objects.
func (s *recipeService) GetRecipe(ctx context.Context, recipeID uint, userID string) (domain.RecipeResponse, error) {
	found, err := s.loadRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return domain.NewRecipeResponse(*found), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint, userID string) (domain.RecipeDetailResponse, error) {
	found, err := s.loadRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return domain.NewRecipeDetailResponse(*found), nil
}

func (s *recipeService) loadRecipe(ctx context.Context, recipeID uint, userID string) (*entities.Recipe, error) {
	found, err := s.recipeRepository.GetRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return found, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID uint, req domain.UpdateRecipeRequest, userID string, mode domain.UpdateMode) (domain.RecipeResponse, error) {
	found, err := s.loadRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if mode == domain.UpdateModeFull {
		// a full update must restate every scalar field; a link left out is
		// cleared, while omitted tag/ingredient lists stay as they are
		if req.Title == nil {
			return domain.RecipeResponse{}, domain.ErrTitleRequired
		}
		if req.Price == nil {
			return domain.RecipeResponse{}, domain.ErrPriceRequired
		}
		if req.TimeMinutes == nil {
			return domain.RecipeResponse{}, domain.ErrTimeRequired
		}
		if req.Link == nil {
			empty := ""
			req.Link = &empty
		}
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.RecipeResponse{}, domain.ErrTitleRequired
		}
		found.Title = title
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.RecipeResponse{}, domain.ErrInvalidPrice
		}
		found.Price = *req.Price
	}
	if req.TimeMinutes != nil {
		if *req.TimeMinutes < 0 {
			return domain.RecipeResponse{}, domain.ErrInvalidTime
		}
		found.TimeMinutes = *req.TimeMinutes
	}
	if req.Link != nil {
		found.Link = *req.Link
	}

	var tags *[]entities.Tag
	if req.Tags != nil {
		resolved, err := s.resolveTags(ctx, userID, *req.Tags)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		tags = &resolved
	}
	var ingredients *[]entities.Ingredient
	if req.Ingredients != nil {
		resolved, err := s.resolveIngredients(ctx, userID, *req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		ingredients = &resolved
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, found, tags, ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}

	if tags != nil {
		found.Tags = *tags
	}
	if ingredients != nil {
		found.Ingredients = *ingredients
	}
	return domain.NewRecipeResponse(*found), nil
}

// resolveTags maps the requested ids to the caller's own tag rows. An id that
// does not exist, or that belongs to another owner, fails the whole request.
func (s *recipeService) resolveTags(ctx context.Context, userID string, ids []uint) ([]entities.Tag, error) {
	if len(ids) == 0 {
		return []entities.Tag{}, nil
	}

	tags, err := s.recipeRepository.GetTagsByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, domain.ErrUnknownTag
	}
	return tags, nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, userID string, ids []uint) ([]entities.Ingredient, error) {
	if len(ids) == 0 {
		return []entities.Ingredient{}, nil
	}

	ingredients, err := s.recipeRepository.GetIngredientsByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, domain.ErrUnknownIngredient
	}
	return ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
