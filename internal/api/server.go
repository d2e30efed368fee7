package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fridgekeeper/internal/config"
	"fridgekeeper/internal/metrics"
	"fridgekeeper/internal/models"
	"fridgekeeper/internal/monitoring"
	"fridgekeeper/internal/recognition"
	"fridgekeeper/internal/state"
)

// Server exposes the state container to the browser view layer. The view
// reads snapshots (HTTP or the websocket push) and routes every mutation
// through an action endpoint; it never mutates state directly.
type Server struct {
	Router *gin.Engine

	container  *state.Container
	recognizer recognition.Provider
	monitor    *monitoring.Monitor
	metrics    *metrics.Metrics
	hub        *Hub
	recCfg     config.RecognitionConfig
	log        *zap.Logger
}

// NewServer wires the container, recognizer, and observability into a gin
// router.
func NewServer(container *state.Container, recognizer recognition.Provider, monitor *monitoring.Monitor, m *metrics.Metrics, recCfg config.RecognitionConfig, log *zap.Logger) *Server {
	s := &Server{
		Router:     gin.Default(),
		container:  container,
		recognizer: recognizer,
		monitor:    monitor,
		metrics:    m,
		hub:        newHub(log),
		recCfg:     recCfg,
		log:        log,
	}
	container.OnChange(s.stateChanged)
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Fridgekeeper API is running"})
	})
	s.Router.GET("/ws", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	{
		// Read surface
		v1.GET("/state", s.GetState)
		v1.GET("/registry", s.GetRegistry)
		v1.GET("/stats", s.GetStats)

		// Setup machine
		v1.POST("/setup/step", s.AdvanceSetupStep)
		v1.POST("/setup/finish", s.FinishSetup)
		v1.POST("/setup/enter", s.EnterSettings)
		v1.POST("/fridge/reset", s.ResetFridge)

		// Appearance
		v1.PUT("/fridge/color", s.SetColor)
		v1.PUT("/fridge/style", s.SetStyle)

		// Compartments
		v1.POST("/compartments/:id/door", s.ToggleDoor)

		// Inventory
		v1.GET("/foods", s.GetFoods)
		v1.GET("/foods/expiring", s.GetExpiringFoods)
		v1.POST("/foods", s.AddFood)
		v1.PATCH("/foods/:id", s.UpdateFood)
		v1.DELETE("/foods/:id", s.DeleteFood)

		// Ephemeral UI state
		v1.POST("/ui/sidebar/toggle", s.ToggleSidebar)
		v1.PUT("/ui/camera", s.SetCameraView)
		v1.POST("/ui/overlays/add-food/open", s.OpenAddFoodOverlay)
		v1.POST("/ui/overlays/add-food/close", s.CloseAddFoodOverlay)
		v1.POST("/ui/overlays/edit-food/open", s.OpenEditFoodOverlay)
		v1.POST("/ui/overlays/edit-food/close", s.CloseEditFoodOverlay)
		v1.POST("/ui/overlays/context-menu/open", s.OpenContextMenu)
		v1.POST("/ui/overlays/context-menu/close", s.CloseContextMenu)

		// Recognition boundary (stubbed)
		v1.POST("/recognize", s.RecognizeFood)
	}
}

// stateChanged runs inside every successful action: it refreshes the
// inventory gauges and pushes the new snapshot to connected views.
func (s *Server) stateChanged(snap state.Snapshot) {
	s.metrics.ObserveInventory(snap.Inventory, time.Now())
	s.hub.Broadcast(snap)
}

// recordAction tallies a dispatched action in both observability sinks.
func (s *Server) recordAction(name string) {
	s.monitor.RecordAction(name)
	s.metrics.Actions.WithLabelValues(name).Inc()
}

// GetState returns a full snapshot of the state tree.
func (s *Server) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, s.container.Snapshot())
}

// GetRegistry returns the static domain registries the view renders from.
func (s *Server) GetRegistry(c *gin.Context) {
	templates := models.Templates()
	previews := make([]gin.H, 0, len(templates))
	for _, t := range templates {
		previews = append(previews, gin.H{
			"id":           t.ID,
			"name":         t.Name,
			"layout":       t.Layout,
			"compartments": t.Instantiate(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"compartmentTypes": models.CompartmentTypes(),
		"categories":       models.Categories(),
		"styles":           models.Styles(),
		"templates":        previews,
	})
}

// GetStats returns in-process action counters and uptime.
func (s *Server) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Stats())
}
