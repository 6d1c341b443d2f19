package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental_manager/internal/config"
	"rental_manager/internal/models"
)

func TestPropertyListScopes(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	rival := createUser(t, "owner2", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	admin := createUser(t, "admin", "admin", true)

	createProperty(t, owner.ID, models.PropertyAvailable)
	createProperty(t, owner.ID, models.PropertyOccupied)
	createProperty(t, rival.ID, models.PropertyAvailable)

	countOf := func(token string) int {
		w := doJSON(t, r, http.MethodGet, "/properties", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []models.Property `json:"data"`
		}
		require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &resp))
		return len(resp.Data)
	}

	assert.Equal(t, 3, countOf(bearerToken(t, admin)), "admin sees all")
	assert.Equal(t, 2, countOf(bearerToken(t, owner)), "owner sees own")
	assert.Equal(t, 1, countOf(bearerToken(t, rival)))
	assert.Equal(t, 2, countOf(bearerToken(t, tenant)), "tenant sees available only")
}

func TestOwnerCreatesUnderOwnAccount(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	other := createUser(t, "owner2", "owner", true)

	w := doJSON(t, r, http.MethodPost, "/properties", bearerToken(t, owner), map[string]interface{}{
		"owner_id":    other.ID, // ignored for owner callers
		"title":       "Sneaky Villa",
		"address":     "2 Test Lane",
		"rent_amount": 900.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var property models.Property
	require.NoError(t, config.DB.First(&property).Error)
	assert.Equal(t, owner.ID, property.OwnerID)
	assert.Equal(t, models.PropertyAvailable, property.AvailabilityStatus)
}

func TestOwnerCannotModifyForeignProperty(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	rival := createUser(t, "owner2", "owner", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	path := fmt.Sprintf("/properties/%d", property.ID)
	w := doJSON(t, r, http.MethodPut, path, bearerToken(t, rival), map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, bearerToken(t, rival), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Property
	require.NoError(t, config.DB.First(&unchanged, property.ID).Error)
	assert.Equal(t, "Test Property", unchanged.Title)
}

func TestAdminModifiesAnyProperty(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	admin := createUser(t, "admin", "admin", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/properties/%d", property.ID), bearerToken(t, admin), map[string]interface{}{
		"rent_amount": 1500.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Property
	require.NoError(t, config.DB.First(&updated, property.ID).Error)
	assert.Equal(t, 1500.0, updated.RentAmount)
	assert.Equal(t, "Test Property", updated.Title, "unspecified fields are untouched")
}

func TestUploadPropertyImage(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "../../escape.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/properties/%d/image", property.ID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, owner))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Property
	require.NoError(t, config.DB.First(&updated, property.ID).Error)
	assert.Equal(t, "escape.png", updated.ImagePath, "path components are stripped")

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err, "file lands inside the upload dir")
}
