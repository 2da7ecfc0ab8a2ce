package catalog

import (
	"context"
	"fmt"
	"testing"

	"Recipe-Catalog-API/domain"
	"Recipe-Catalog-API/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Tag{}, &entities.Ingredient{}))
	return db
}

func newTestService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewCatalogService(
		NewRepository[entities.Tag](db),
		NewRepository[entities.Ingredient](db),
	)
	return service, db
}

func sampleUser(t *testing.T, db *gorm.DB, email string) entities.User {
	t.Helper()

	newUser := entities.User{Email: email, Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(&newUser).Error)
	return newUser
}

func TestTagsLimitedToOwner(t *testing.T) {
	service, db := newTestService(t)

	userA := sampleUser(t, db, "a@yopmail.com")
	userB := sampleUser(t, db, "b@yopmail.com")

	_, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Vegan"}, userA.ID.String())
	require.NoError(t, err)
	_, err = service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Dessert"}, userB.ID.String())
	require.NoError(t, err)

	tagsA, err := service.ListTags(context.Background(), userA.ID.String())
	require.NoError(t, err)
	require.Len(t, tagsA, 1)
	assert.Equal(t, "Vegan", tagsA[0].Name)

	tagsB, err := service.ListTags(context.Background(), userB.ID.String())
	require.NoError(t, err)
	require.Len(t, tagsB, 1)
	assert.Equal(t, "Dessert", tagsB[0].Name)
}

func TestTagsOrderedByNameDescending(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	for _, name := range []string{"Breakfast", "Vegan", "Dessert"} {
		_, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: name}, owner.ID.String())
		require.NoError(t, err)
	}

	tags, err := service.ListTags(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
	assert.Equal(t, "Breakfast", tags[2].Name)
}

func TestTagsNameTiesKeepInsertionOrder(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	first, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Vegan"}, owner.ID.String())
	require.NoError(t, err)
	second, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Vegan"}, owner.ID.String())
	require.NoError(t, err)

	tags, err := service.ListTags(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, first.ID, tags[0].ID)
	assert.Equal(t, second.ID, tags[1].ID)
}

func TestCreateTagEmptyName(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	_, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "   "}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	var count int64
	require.NoError(t, db.Model(&entities.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateTagStampsCaller(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	res, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Vegan"}, owner.ID.String())
	require.NoError(t, err)

	var stored entities.Tag
	require.NoError(t, db.First(&stored, res.ID).Error)
	assert.Equal(t, owner.ID, stored.UserID)
}

func TestCreateTagInvalidOwnerID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateTag(context.Background(), domain.CreateTagRequest{Name: "Vegan"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestIngredientsLimitedToOwner(t *testing.T) {
	service, db := newTestService(t)

	userA := sampleUser(t, db, "a@yopmail.com")
	userB := sampleUser(t, db, "b@yopmail.com")

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "Salt"}, userA.ID.String())
	require.NoError(t, err)
	_, err = service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "Cinnamon"}, userB.ID.String())
	require.NoError(t, err)

	ingredients, err := service.ListIngredients(context.Background(), userA.ID.String())
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Salt", ingredients[0].Name)
}

func TestCreateIngredientEmptyName(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: ""}, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestIngredientsOrderedByNameDescending(t *testing.T) {
	service, db := newTestService(t)
	owner := sampleUser(t, db, "a@yopmail.com")

	for _, name := range []string{"Cinnamon", "Turmeric", "Salt"} {
		_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: name}, owner.ID.String())
		require.NoError(t, err)
	}

	ingredients, err := service.ListIngredients(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Turmeric", ingredients[0].Name)
	assert.Equal(t, "Salt", ingredients[1].Name)
	assert.Equal(t, "Cinnamon", ingredients[2].Name)
}

