package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fridgekeeper/internal/config"
	"fridgekeeper/internal/metrics"
	"fridgekeeper/internal/models"
	"fridgekeeper/internal/monitoring"
	"fridgekeeper/internal/recognition"
	"fridgekeeper/internal/state"
)

// memStore is an in-memory Persistence for API tests.
type memStore struct {
	config    *models.FridgeConfiguration
	inventory []models.FoodItem
}

func (m *memStore) SaveConfiguration(cfg *models.FridgeConfiguration) error {
	m.config = cfg
	return nil
}

func (m *memStore) ClearConfiguration() error {
	m.config = nil
	return nil
}

func (m *memStore) SaveInventory(items []models.FoodItem) error {
	m.inventory = items
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	container := state.New(&memStore{}, nil, nil, zap.NewNop())
	return NewServer(
		container,
		recognition.NewStub(zap.NewNop()),
		monitoring.NewMonitor(),
		metrics.New(prometheus.NewRegistry()),
		config.Default().Recognition,
		zap.NewNop(),
	)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func finishTestSetup(t *testing.T, s *Server) {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/v1/setup/finish", gin.H{
		"name": "Kitchen Fridge",
		"compartments": []gin.H{
			{"id": "refrigerator-1", "typeId": "refrigerator"},
			{"id": "freezer-1", "typeId": "freezer"},
		},
		"style": "modern",
		"color": "#b0b0b0",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStateStartsInWizard(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap state.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Nil(t, snap.Config)
	assert.Equal(t, state.StepWelcome, snap.SetupStep)
}

func TestFinishSetupValidation(t *testing.T) {
	s := newTestServer(t)

	// Empty compartment list is rejected at the boundary.
	w := doJSON(t, s, http.MethodPost, "/api/v1/setup/finish", gin.H{
		"name":         "Fridge",
		"compartments": []gin.H{},
		"style":        "modern",
		"color":        "#fff",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown style is rejected.
	w = doJSON(t, s, http.MethodPost, "/api/v1/setup/finish", gin.H{
		"name":         "Fridge",
		"compartments": []gin.H{{"id": "refrigerator-1", "typeId": "refrigerator"}},
		"style":        "baroque",
		"color":        "#fff",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/foods", gin.H{
		"name":        "Milk",
		"category":    "dairy",
		"quantity":    2,
		"compartment": "refrigerator-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.ExpiryDate.IsZero(), "expiry seeded")

	w = doJSON(t, s, http.MethodPatch, "/api/v1/foods/"+item.ID, gin.H{"quantity": 5})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	w = doJSON(t, s, http.MethodDelete, "/api/v1/foods/"+item.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is still 200: the action is idempotent.
	w = doJSON(t, s, http.MethodDelete, "/api/v1/foods/"+item.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddFoodRejectedWithoutName(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/foods", gin.H{
		"category":    "dairy",
		"compartment": "refrigerator-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFoodBeforeSetupConflicts(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/v1/foods", gin.H{
		"name":        "Milk",
		"category":    "dairy",
		"compartment": "refrigerator-1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGroupedFoods(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/foods", gin.H{
		"name":        "Cod",
		"category":    "seafood",
		"compartment": "freezer-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/foods?grouped=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var groups []state.CompartmentGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Empty(t, groups[0].Items)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, "Cod", groups[1].Items[0].Name)
}

func TestToggleDoorEndpoint(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/compartments/freezer-1/door", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Doors map[string]bool `json:"doors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Doors["freezer-1"])
	assert.False(t, resp.Doors["refrigerator-1"])
}

func TestRegistryEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/v1/registry", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CompartmentTypes []models.CompartmentTypeDefinition `json:"compartmentTypes"`
		Categories       []models.CategoryDefinition        `json:"categories"`
		Styles           []models.StyleDefinition           `json:"styles"`
		Templates        []json.RawMessage                  `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.CompartmentTypes, 4)
	assert.Len(t, resp.Categories, 9)
	assert.Len(t, resp.Styles, 3)
	assert.NotEmpty(t, resp.Templates)
}

func TestRecognizeAlwaysUnavailable(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "snack.jpg")
	require.NoError(t, err)
	fmt.Fprint(fw, "fake image bytes")
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manual", resp["fallback"])
}

func TestStatsCountsActions(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)
	doJSON(t, s, http.MethodPost, "/api/v1/ui/sidebar/toggle", nil)

	w := doJSON(t, s, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Actions map[string]int64 `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Actions["finishSetup"])
	assert.Equal(t, int64(1), stats.Actions["toggleSidebar"])
}

func TestResetEndpoint(t *testing.T) {
	s := newTestServer(t)
	finishTestSetup(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/fridge/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/state", nil)
	var snap state.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Nil(t, snap.Config)
	assert.Equal(t, state.StepWelcome, snap.SetupStep)
}
