package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddWorkerAndAnalytics(t *testing.T) {
	_, managerToken := seedUser(t, "site_manager")

	w := doRequest(t, http.MethodPost, "/api/users/add-worker", managerToken, map[string]interface{}{
		"name":      "Wanda",
		"email":     "wanda@integration.test",
		"phone":     "555-0100",
		"dailyWage": 120.0,
	}, http.StatusCreated)
	var created struct {
		Data struct {
			ID   uint   `json:"id"`
			Role string `json:"role"`
		} `json:"data"`
	}
	decodeBody(t, w, &created)
	require.Equal(t, "worker", created.Data.Role)

	// The default password works for login.
	doRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "wanda@integration.test", "password": "worker123",
	}, http.StatusOK)

	// Duplicate email conflicts.
	doRequest(t, http.MethodPost, "/api/users/add-worker", managerToken, map[string]interface{}{
		"name":      "Wanda Again",
		"email":     "wanda@integration.test",
		"phone":     "555-0100",
		"dailyWage": 130.0,
	}, http.StatusConflict)

	// The new worker shows up in the pool analytics.
	w = doRequest(t, http.MethodGet, "/api/users/analytics", managerToken, nil, http.StatusOK)
	var analytics struct {
		Overview struct {
			TotalWorkers int `json:"totalWorkers"`
		} `json:"overview"`
		WageDistribution map[string]int `json:"wageDistribution"`
	}
	decodeBody(t, w, &analytics)
	require.GreaterOrEqual(t, analytics.Overview.TotalWorkers, 1)
	require.GreaterOrEqual(t, analytics.WageDistribution["101-150"], 1)

	// Worker detail exists for workers, 404 for everyone else.
	w = doRequest(t, http.MethodGet, fmt.Sprintf("/api/users/%d", created.Data.ID), managerToken, nil, http.StatusOK)
	var detail struct {
		Worker struct {
			Name string `json:"name"`
		} `json:"worker"`
		Performance struct {
			CompletionRate string `json:"completionRate"`
		} `json:"performance"`
	}
	decodeBody(t, w, &detail)
	require.Equal(t, "Wanda", detail.Worker.Name)
	require.Equal(t, "0.0", detail.Performance.CompletionRate)

	manager, _ := seedUser(t, "site_manager")
	doRequest(t, http.MethodGet, fmt.Sprintf("/api/users/%d", manager.ID), managerToken, nil, http.StatusNotFound)
}

func TestAddWorker_WorkerForbidden(t *testing.T) {
	_, workerToken := seedUser(t, "worker")

	doRequest(t, http.MethodPost, "/api/users/add-worker", workerToken, map[string]interface{}{
		"name":      "Nope",
		"email":     "nope@integration.test",
		"phone":     "555-0102",
		"dailyWage": 100.0,
	}, http.StatusForbidden)
}

func TestListUsers_SearchAndPaging(t *testing.T) {
	_, adminToken := seedUser(t, "admin")
	seedUser(t, "worker")
	seedUser(t, "worker")

	w := doRequest(t, http.MethodGet, "/api/users?role=worker&limit=1&page=1", adminToken, nil, http.StatusOK)
	var page struct {
		Data []struct {
			Role string `json:"role"`
		} `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	decodeBody(t, w, &page)
	require.Len(t, page.Data, 1)
	require.Equal(t, "worker", page.Data[0].Role)
	require.GreaterOrEqual(t, page.Pagination.Total, int64(2))
	require.GreaterOrEqual(t, page.Pagination.TotalPages, int64(2))
}

func TestBlueprints(t *testing.T) {
	_, engineerToken := seedUser(t, "engineer")
	_, workerToken := seedUser(t, "worker")

	w := doRequest(t, http.MethodPost, "/api/blueprints", engineerToken, map[string]interface{}{
		"title":     "Floor plan L2",
		"projectId": seedProject(t),
		"imageUrl":  "https://img/plan.pdf",
	}, http.StatusCreated)
	var created struct {
		Version string `json:"version"`
		Status  string `json:"status"`
	}
	decodeBody(t, w, &created)
	require.Equal(t, "1.0", created.Version)
	require.Equal(t, "Approved", created.Status)

	doRequest(t, http.MethodPost, "/api/blueprints", workerToken, map[string]interface{}{
		"title":     "Not allowed",
		"projectId": 1,
		"imageUrl":  "https://img/x.pdf",
	}, http.StatusForbidden)

	doRequest(t, http.MethodGet, "/api/blueprints", workerToken, nil, http.StatusOK)
}
