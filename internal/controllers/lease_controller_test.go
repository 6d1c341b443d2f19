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

func leaseBody(propertyID, tenantID uint) map[string]interface{} {
	return map[string]interface{}{
		"property_id":  propertyID,
		"tenant_id":    tenantID,
		"start_date":   "2026-09-01",
		"end_date":     "2027-08-31",
		"monthly_rent": 1200.0,
	}
}

func TestCreateLeaseOnAvailableProperty(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, owner), leaseBody(property.ID, tenant.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var leases []models.Lease
	require.NoError(t, config.DB.Find(&leases).Error)
	require.Len(t, leases, 1, "exactly one lease row")
	assert.Equal(t, models.LeaseActive, leases[0].Status)
	assert.Equal(t, tenant.ID, leases[0].TenantID)
	assert.Equal(t, 1, leases[0].PaymentDueDay)

	var updated models.Property
	require.NoError(t, config.DB.First(&updated, property.ID).Error)
	assert.Equal(t, models.PropertyOccupied, updated.AvailabilityStatus)

	var notifications []models.Notification
	require.NoError(t, config.DB.Where("user_id = ?", tenant.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1, "exactly one notification for the tenant")
	assert.Equal(t, "New Lease Agreement", notifications[0].Title)
	assert.Equal(t, models.NotificationLeaseRenewal, notifications[0].NotificationType)
}

func TestCreateLeaseOnOccupiedPropertyFailsCleanly(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyOccupied)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, owner), leaseBody(property.ID, tenant.ID))
	assert.Equal(t, http.StatusConflict, w.Code)

	var leaseCount, notificationCount int64
	require.NoError(t, config.DB.Model(&models.Lease{}).Count(&leaseCount).Error)
	require.NoError(t, config.DB.Model(&models.Notification{}).Count(&notificationCount).Error)
	assert.Zero(t, leaseCount, "no lease row on precondition failure")
	assert.Zero(t, notificationCount, "no notification on precondition failure")

	var unchanged models.Property
	require.NoError(t, config.DB.First(&unchanged, property.ID).Error)
	assert.Equal(t, models.PropertyOccupied, unchanged.AvailabilityStatus)
}

func TestOwnerCannotLeaseForeignProperty(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	rival := createUser(t, "owner2", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, rival), leaseBody(property.ID, tenant.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var leaseCount int64
	require.NoError(t, config.DB.Model(&models.Lease{}).Count(&leaseCount).Error)
	assert.Zero(t, leaseCount)
}

func TestTenantCannotCreateLease(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, tenant), leaseBody(property.ID, tenant.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaseVisibilityPerRole(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	stranger := createUser(t, "tenant2", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, owner), leaseBody(property.ID, tenant.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var lease models.Lease
	require.NoError(t, config.DB.First(&lease).Error)
	path := fmt.Sprintf("/leases/%d", lease.ID)

	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, path, bearerToken(t, owner), nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, path, bearerToken(t, tenant), nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, path, bearerToken(t, stranger), nil).Code)
}

func TestEndLeaseReleasesProperty(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	property := createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodPost, "/leases", bearerToken(t, owner), leaseBody(property.ID, tenant.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var lease models.Lease
	require.NoError(t, config.DB.First(&lease).Error)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/leases/%d/end", lease.ID), bearerToken(t, owner), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, config.DB.First(&lease, lease.ID).Error)
	assert.Equal(t, models.LeaseEnded, lease.Status)

	var updated models.Property
	require.NoError(t, config.DB.First(&updated, property.ID).Error)
	assert.Equal(t, models.PropertyAvailable, updated.AvailabilityStatus)

	// Ending an already ended lease is a conflict.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/leases/%d/end", lease.ID), bearerToken(t, owner), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
