package catalog

import (
	"context"
	"strings"

	"Recipe-Catalog-API/domain"
	"Recipe-Catalog-API/entities"

	"github.com/google/uuid"
)

type (
	CatalogService interface {
		ListTags(ctx context.Context, userID string) ([]domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error)
		ListIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
	}

	catalogService struct {
		tagRepository        Repository[entities.Tag]
		ingredientRepository Repository[entities.Ingredient]
	}
)

func NewCatalogService(
	tagRepository Repository[entities.Tag],
	ingredientRepository Repository[entities.Ingredient],
) CatalogService {
	return &catalogService{
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *catalogService) ListTags(ctx context.Context, userID string) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		res = append(res, domain.NewTagResponse(tag))
	}
	return res, nil
}

// CreateTag stamps the caller as owner; the payload carries no owner field
// and could not override it either way.
func (s *catalogService) CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TagResponse{}, domain.ErrParseUUID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TagResponse{}, domain.ErrNameRequired
	}

	tag := entities.Tag{Name: name, UserID: ownerID}
	if err := s.tagRepository.Create(ctx, &tag); err != nil {
		return domain.TagResponse{}, err
	}
	return domain.NewTagResponse(tag), nil
}

func (s *catalogService) ListIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, domain.NewIngredientResponse(ingredient))
	}
	return res, nil
}

func (s *catalogService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.IngredientResponse{}, domain.ErrNameRequired
	}

	ingredient := entities.Ingredient{Name: name, UserID: ownerID}
	if err := s.ingredientRepository.Create(ctx, &ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return domain.NewIngredientResponse(ingredient), nil
}
