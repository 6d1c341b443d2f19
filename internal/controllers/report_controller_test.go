package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental_manager/internal/config"
	"rental_manager/internal/models"
)

func TestRentCollectionReportScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	rival := createUser(t, "owner2", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	admin := createUser(t, "admin", "admin", true)
	property := createProperty(t, owner.ID, models.PropertyOccupied)
	lease := createLease(t, property.ID, tenant.ID)

	for _, p := range []models.Payment{
		{LeaseID: lease.ID, TenantID: tenant.ID, Amount: 1200, Status: models.PaymentCompleted},
		{LeaseID: lease.ID, TenantID: tenant.ID, Amount: 300, Status: models.PaymentPending},
	} {
		p.PaymentDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, config.DB.Create(&p).Error)
	}

	fetch := func(token string) (collected, pending float64) {
		w := doJSON(t, r, http.MethodGet, "/reports/rent-collection", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			TotalCollected float64 `json:"total_collected"`
			TotalPending   float64 `json:"total_pending"`
		}
		require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &resp))
		return resp.TotalCollected, resp.TotalPending
	}

	collected, pending := fetch(bearerToken(t, admin))
	assert.Equal(t, 1200.0, collected)
	assert.Equal(t, 300.0, pending)

	collected, pending = fetch(bearerToken(t, owner))
	assert.Equal(t, 1200.0, collected)
	assert.Equal(t, 300.0, pending)

	collected, pending = fetch(bearerToken(t, rival))
	assert.Zero(t, collected, "other owners' payments are invisible")
	assert.Zero(t, pending)
}

func TestOccupancyReport(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	createProperty(t, owner.ID, models.PropertyOccupied)
	createProperty(t, owner.ID, models.PropertyOccupied)
	createProperty(t, owner.ID, models.PropertyAvailable)
	createProperty(t, owner.ID, models.PropertyAvailable)

	w := doJSON(t, r, http.MethodGet, "/reports/occupancy", bearerToken(t, owner), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Total         int64   `json:"total_properties"`
		Occupied      int64   `json:"occupied"`
		Available     int64   `json:"available"`
		OccupancyRate float64 `json:"occupancy_rate"`
	}
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 4, resp.Total)
	assert.EqualValues(t, 2, resp.Occupied)
	assert.EqualValues(t, 2, resp.Available)
	assert.Equal(t, 50.0, resp.OccupancyRate)
}

func TestMaintenanceReportCountsByStatus(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", "owner", true)
	tenant := createUser(t, "tenant1", "tenant", true)
	admin := createUser(t, "admin", "admin", true)
	property := createProperty(t, owner.ID, models.PropertyOccupied)

	for _, status := range []string{models.MaintenancePending, models.MaintenancePending, models.MaintenanceCompleted} {
		request := models.MaintenanceRequest{
			PropertyID:   property.ID,
			TenantID:     tenant.ID,
			Title:        "Job",
			Description:  "test",
			Status:       status,
			ReportedDate: time.Now().UTC(),
		}
		require.NoError(t, config.DB.Create(&request).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/reports/maintenance", bearerToken(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int64
	require.NoError(t, jsonUnmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp[models.MaintenancePending])
	assert.EqualValues(t, 0, resp[models.MaintenanceInProgress])
	assert.EqualValues(t, 1, resp[models.MaintenanceCompleted])
}

func TestReportsForbiddenForTenantAndStaff(t *testing.T) {
	r := setupRouter(t)
	tenant := createUser(t, "tenant1", "tenant", true)
	staff := createUser(t, "staff1", "staff", true)

	for _, path := range []string{"/reports/rent-collection", "/reports/occupancy", "/reports/maintenance"} {
		assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, path, bearerToken(t, tenant), nil).Code, path)
		assert.Equal(t, http.StatusForbidden, doJSON(t, r, http.MethodGet, path, bearerToken(t, staff), nil).Code, path)
	}
}
