package router_test

import (
	"net/http"
	"testing"

	"github.com/ktmtfamily/family-tree-api/internal/router"
	"github.com/ktmtfamily/family-tree-api/internal/shared/database"
	"github.com/ktmtfamily/family-tree-api/internal/shared/metrics"
	"github.com/ktmtfamily/family-tree-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_SQLiteStore(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	cfg := testutil.NewTestConfig()
	engine := testutil.SetupTestRouter()
	recorder := metrics.New(cfg.App.Name)
	engine.Use(recorder.Middleware())

	require.NoError(t, router.Setup(engine, cfg, database.NewSQLFromGorm(db, "sqlite"), testutil.NewMockUploader(), recorder))

	// When: full registration flow
	resp := testutil.ExecuteMultipart(t, engine, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: map[string]string{
			"fullName":   "Meena",
			"gender":     "Female",
			"memberType": "In_Law",
			"phone":      "+919990001111",
			"password":   "pw",
			"mainFamily": "Kumar",
			"parent":     "Ravi Kumar",
			"pincode":    "600001",
			"address":    "Chennai",
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	// Then
	resp = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/admin/pending"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Meena")

	resp = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/admin/login",
		Body:   map[string]string{"username": "KTMTFAMILY WEBSITE", "password": "KTMTPASSWORD"},
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/events"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/"})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: "/metrics"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `route="/register"`)
}

func TestSetup_RegisterBodyLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.NewTestConfig()
	cfg.Server.MaxUploadBytes = 512
	engine := testutil.SetupTestRouter()

	require.NoError(t, router.Setup(engine, cfg, database.NewSQLFromGorm(db, "sqlite"), testutil.NewMockUploader(), metrics.New(cfg.App.Name)))

	resp := testutil.ExecuteMultipart(t, engine, testutil.MultipartRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Fields: map[string]string{"fullName": "Big"},
		Files:  []testutil.FormFile{{Field: "photo", Filename: "big.jpg", Content: make([]byte, 4096)}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
