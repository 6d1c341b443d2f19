package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental_manager/internal/config"
	"rental_manager/internal/models"
)

func createNotification(t *testing.T, userID uint, title string) models.Notification {
	t.Helper()
	notification := models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          "test message",
		NotificationType: models.NotificationGeneral,
	}
	require.NoError(t, config.DB.Create(&notification).Error)
	return notification
}

func TestListNotificationsReturnsOwnOnly(t *testing.T) {
	r := setupRouter(t)
	tenant := createUser(t, "tenant1", "tenant", true)
	other := createUser(t, "tenant2", "tenant", true)

	createNotification(t, tenant.ID, "Mine")
	createNotification(t, other.ID, "Not mine")

	w := doJSON(t, r, http.MethodGet, "/notifications", bearerToken(t, tenant), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mine")
	assert.NotContains(t, w.Body.String(), "Not mine")
}

func TestMarkNotificationRead(t *testing.T) {
	r := setupRouter(t)
	tenant := createUser(t, "tenant1", "tenant", true)
	notification := createNotification(t, tenant.ID, "Rent due")
	require.False(t, notification.IsRead)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notification.ID), bearerToken(t, tenant), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Notification
	require.NoError(t, config.DB.First(&updated, notification.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestCannotMarkForeignNotificationRead(t *testing.T) {
	r := setupRouter(t)
	tenant := createUser(t, "tenant1", "tenant", true)
	other := createUser(t, "tenant2", "tenant", true)
	notification := createNotification(t, tenant.ID, "Private")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notification.ID), bearerToken(t, other), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var unchanged models.Notification
	require.NoError(t, config.DB.First(&unchanged, notification.ID).Error)
	assert.False(t, unchanged.IsRead)
}

func TestMarkUnknownNotificationRead(t *testing.T) {
	r := setupRouter(t)
	tenant := createUser(t, "tenant1", "tenant", true)

	w := doJSON(t, r, http.MethodPost, "/notifications/9999/read", bearerToken(t, tenant), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
