package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rental_manager/internal/config"
	"rental_manager/internal/middleware"
	"rental_manager/internal/models"
	"rental_manager/internal/routes"
)

// setupRouter wires a fresh in-memory database into the global handle and
// returns the full router, so tests exercise the real middleware chain.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pool connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	return routes.SetupRouter()
}

func createUser(t *testing.T, username, role string, active bool) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@test.com",
		FullName: "Test " + username,
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createProperty(t *testing.T, ownerID uint, status string) models.Property {
	t.Helper()
	property := models.Property{
		OwnerID:            ownerID,
		PropertyType:       "apartment",
		Title:              "Test Property",
		Address:            "1 Test Lane",
		RentAmount:         1200,
		AvailabilityStatus: status,
	}
	require.NoError(t, config.DB.Create(&property).Error)
	return property
}

func bearerToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
