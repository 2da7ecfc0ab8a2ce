package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"Recipe-Catalog-API/entities"
	"Recipe-Catalog-API/internal/api/handlers"
	"Recipe-Catalog-API/internal/api/presenters"
	"Recipe-Catalog-API/internal/middleware"
	"Recipe-Catalog-API/internal/utils"
	"Recipe-Catalog-API/pkg/catalog"
	"Recipe-Catalog-API/pkg/jwt"
	"Recipe-Catalog-API/pkg/recipe"
	"Recipe-Catalog-API/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.SetupJoinTable(&entities.Recipe{}, "Tags", &entities.RecipeTag{}))
	require.NoError(t, db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{}))
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
	))

	utils.InitValidator()
	app := fiber.New()

	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(user.NewUserRepository(db), jwtService)
	catalogService := catalog.NewCatalogService(
		catalog.NewRepository[entities.Tag](db),
		catalog.NewRepository[entities.Ingredient](db),
	)
	recipeService := recipe.NewRecipeService(recipe.NewRecipeRepository(db))

	cfg := Config{
		App:            app,
		UserHandler:    handlers.NewUserHandler(userService, utils.Validate),
		CatalogHandler: handlers.NewCatalogHandler(catalogService, utils.Validate),
		RecipeHandler:  handlers.NewRecipeHandler(recipeService, utils.Validate),
		Middleware:     middleware.NewMiddleware(),
		JWTService:     jwtService,
	}
	cfg.Setup()
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*presenters.Response, int) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	require.NoError(t, err)

	var parsed presenters.Response
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return &parsed, res.StatusCode
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	_, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/register", "", fiber.Map{
		"email":    email,
		"password": "ansuman123",
		"name":     "Ansuman Singh",
	})
	require.Equal(t, fiber.StatusCreated, status)

	res, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/login", "", fiber.Map{
		"email":    email,
		"password": "ansuman123",
	})
	require.Equal(t, fiber.StatusOK, status)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/users/me",
		"/api/v1/tags",
		"/api/v1/ingredients",
		"/api/v1/recipes",
		"/api/v1/recipes/1",
	} {
		res, status := doJSON(t, app, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.Nil(t, res.Data, path)
	}
}

func TestLoginWrongPasswordHasNoToken(t *testing.T) {
	app := newTestApp(t)

	_, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/register", "", fiber.Map{
		"email":    "ansuman@yopmail.com",
		"password": "ansuman123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	res, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/login", "", fiber.Map{
		"email":    "ansuman@yopmail.com",
		"password": "wrong_pass",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Nil(t, res.Data)
}

func TestRegisterResponseOmitsPassword(t *testing.T) {
	app := newTestApp(t)

	res, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/register", "", fiber.Map{
		"email":    "ansuman@yopmail.com",
		"password": "ansuman123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, data, "password")
	assert.Equal(t, "ansuman@yopmail.com", data["email"])
}

func TestUpdateProfileReturnsProfile(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ansuman@yopmail.com")

	res, status := doJSON(t, app, fiber.MethodPatch, "/api/v1/users/me", token, fiber.Map{
		"name": "Renamed",
	})
	require.Equal(t, fiber.StatusOK, status)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Renamed", data["name"])
	assert.Equal(t, "ansuman@yopmail.com", data["email"])
	assert.NotContains(t, data, "password")

	// a later read reports the same profile
	me, status := doJSON(t, app, fiber.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, res.Data, me.Data)
}

func TestMeDisallowsPost(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ansuman@yopmail.com")

	_, status := doJSON(t, app, fiber.MethodPost, "/api/v1/users/me", token, fiber.Map{})
	assert.Equal(t, fiber.StatusMethodNotAllowed, status)
}

func TestTagAndRecipeFlow(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "ansuman@yopmail.com")

	tagRes, status := doJSON(t, app, fiber.MethodPost, "/api/v1/tags", token, fiber.Map{"name": "foodie"})
	require.Equal(t, fiber.StatusCreated, status)
	tagData := tagRes.Data.(map[string]any)
	tagID := tagData["id"].(float64)

	recipeRes, status := doJSON(t, app, fiber.MethodPost, "/api/v1/recipes", token, fiber.Map{
		"title":        "Huma Quershi Taste Curry",
		"price":        100.50,
		"time_minutes": 20,
		"tags":         []float64{tagID},
	})
	require.Equal(t, fiber.StatusCreated, status)
	recipeData := recipeRes.Data.(map[string]any)
	recipeID := recipeData["id"].(float64)

	// create response carries bare tag ids
	tags := recipeData["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, tagID, tags[0].(float64))

	// detail response expands them
	detailRes, status := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", int(recipeID)), token, nil)
	require.Equal(t, fiber.StatusOK, status)
	detailData := detailRes.Data.(map[string]any)
	detailTags := detailData["tags"].([]any)
	require.Len(t, detailTags, 1)
	expanded := detailTags[0].(map[string]any)
	assert.Equal(t, "foodie", expanded["name"])
	assert.Equal(t, tagID, expanded["id"])
}

func TestRecipeOfAnotherOwnerIs404(t *testing.T) {
	app := newTestApp(t)
	tokenA := registerAndLogin(t, app, "a@yopmail.com")
	tokenB := registerAndLogin(t, app, "b@yopmail.com")

	recipeRes, status := doJSON(t, app, fiber.MethodPost, "/api/v1/recipes", tokenA, fiber.Map{
		"title":        "Secret Curry",
		"price":        10.0,
		"time_minutes": 5,
	})
	require.Equal(t, fiber.StatusCreated, status)
	recipeID := recipeRes.Data.(map[string]any)["id"].(float64)

	_, status = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/recipes/%d", int(recipeID)), tokenB, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	_, status = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/v1/recipes/%d", int(recipeID)), tokenB, fiber.Map{"title": "Hijacked"})
	assert.Equal(t, fiber.StatusNotFound, status)
}
