package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fridgekeeper/internal/models"
	"fridgekeeper/internal/recognition"
	"fridgekeeper/internal/state"
)

// Setup machine handlers

func (s *Server) AdvanceSetupStep(c *gin.Context) {
	var req struct {
		Step string `json:"step" binding:"required,oneof=welcome template compartments style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.AdvanceSetupStep(state.SetupStep(req.Step))
	s.recordAction("advanceSetupStep")
	c.JSON(http.StatusOK, gin.H{"setupStep": req.Step})
}

type compartmentInput struct {
	ID     string `json:"id" binding:"required"`
	TypeID string `json:"typeId" binding:"required,oneof=refrigerator freezer vegetable door"`
}

type finishSetupRequest struct {
	Name         string             `json:"name" binding:"required"`
	Compartments []compartmentInput `json:"compartments" binding:"required,min=1,dive"`
	Style        string             `json:"style" binding:"required,oneof=retro modern cute"`
	Color        string             `json:"color" binding:"required"`
	Photo        string             `json:"photo"`
}

func (s *Server) FinishSetup(c *gin.Context) {
	var req finishSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	compartments := make([]models.CompartmentInstance, 0, len(req.Compartments))
	for _, comp := range req.Compartments {
		compartments = append(compartments, models.CompartmentInstance{
			ID:     comp.ID,
			TypeID: models.CompartmentType(comp.TypeID),
		})
	}
	cfg := models.FridgeConfiguration{
		Name:         req.Name,
		Compartments: compartments,
		Style:        models.Style(req.Style),
		Color:        req.Color,
		Photo:        req.Photo,
	}
	if err := s.container.FinishSetup(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.recordAction("finishSetup")
	c.JSON(http.StatusOK, s.container.Snapshot())
}

func (s *Server) EnterSettings(c *gin.Context) {
	s.container.EnterSettings()
	s.recordAction("enterSettings")
	c.JSON(http.StatusOK, gin.H{"message": "Setup re-entered"})
}

func (s *Server) ResetFridge(c *gin.Context) {
	if err := s.container.ResetFridge(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.recordAction("resetFridge")
	c.JSON(http.StatusOK, gin.H{"message": "Fridge reset"})
}

// Appearance handlers

func (s *Server) SetColor(c *gin.Context) {
	var req struct {
		Color string `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.SetColor(req.Color)
	s.recordAction("setColor")
	c.JSON(http.StatusOK, gin.H{"color": req.Color})
}

func (s *Server) SetStyle(c *gin.Context) {
	var req struct {
		Style string `json:"style" binding:"required,oneof=retro modern cute"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.SetStyle(models.Style(req.Style))
	s.recordAction("setStyle")
	c.JSON(http.StatusOK, gin.H{"style": req.Style})
}

// Compartment handlers

func (s *Server) ToggleDoor(c *gin.Context) {
	s.container.ToggleDoor(c.Param("id"))
	s.recordAction("toggleDoor")
	c.JSON(http.StatusOK, gin.H{"doors": s.container.Snapshot().Doors})
}

// Inventory handlers

func (s *Server) GetFoods(c *gin.Context) {
	if c.Query("grouped") != "" {
		c.JSON(http.StatusOK, s.container.GroupedInventory())
		return
	}
	c.JSON(http.StatusOK, s.container.Snapshot().Inventory)
}

func (s *Server) GetExpiringFoods(c *gin.Context) {
	c.JSON(http.StatusOK, s.container.ExpiringSoon(time.Now()))
}

type addFoodRequest struct {
	Name        string    `json:"name" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Quantity    int       `json:"quantity" binding:"omitempty,min=1"`
	Compartment string    `json:"compartment" binding:"required"`
	DateAdded   time.Time `json:"dateAdded"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

func (s *Server) AddFood(c *gin.Context) {
	var req addFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := s.container.AddFood(state.AddFoodInput{
		Name:        req.Name,
		Category:    models.Category(req.Category),
		Quantity:    req.Quantity,
		Compartment: req.Compartment,
		DateAdded:   req.DateAdded,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		s.writeActionError(c, err)
		return
	}
	s.recordAction("addFood")
	c.JSON(http.StatusCreated, item)
}

type updateFoodRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1"`
	Category    *string    `json:"category" binding:"omitempty"`
	Quantity    *int       `json:"quantity"`
	Compartment *string    `json:"compartment"`
	DateAdded   *time.Time `json:"dateAdded"`
	ExpiryDate  *time.Time `json:"expiryDate"`
}

func (s *Server) UpdateFood(c *gin.Context) {
	var req updateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := state.FoodPatch{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Compartment: req.Compartment,
		DateAdded:   req.DateAdded,
		ExpiryDate:  req.ExpiryDate,
	}
	if req.Category != nil {
		cat := models.Category(*req.Category)
		patch.Category = &cat
	}
	if err := s.container.UpdateFood(c.Param("id"), patch); err != nil {
		s.writeActionError(c, err)
		return
	}
	s.recordAction("updateFood")
	c.JSON(http.StatusOK, gin.H{"message": "Food updated"})
}

func (s *Server) DeleteFood(c *gin.Context) {
	if err := s.container.DeleteFood(c.Param("id")); err != nil {
		s.writeActionError(c, err)
		return
	}
	s.recordAction("deleteFood")
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}

// Ephemeral UI handlers

func (s *Server) ToggleSidebar(c *gin.Context) {
	s.container.ToggleSidebar()
	s.recordAction("toggleSidebar")
	c.JSON(http.StatusOK, gin.H{"sidebar": s.container.Snapshot().Sidebar})
}

func (s *Server) SetCameraView(c *gin.Context) {
	var req struct {
		View string `json:"view" binding:"required,oneof=default top"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.SetCameraView(state.CameraView(req.View))
	s.recordAction("setCameraView")
	c.JSON(http.StatusOK, gin.H{"cameraView": req.View})
}

func (s *Server) OpenAddFoodOverlay(c *gin.Context) {
	var req struct {
		Compartment string `json:"compartment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.OpenAddFoodOverlay(req.Compartment)
	s.recordAction("openAddFoodOverlay")
	c.JSON(http.StatusOK, s.container.Snapshot().Overlay)
}

func (s *Server) CloseAddFoodOverlay(c *gin.Context) {
	s.container.CloseAddFoodOverlay()
	s.recordAction("closeAddFoodOverlay")
	c.JSON(http.StatusOK, gin.H{"message": "Overlay closed"})
}

func (s *Server) OpenEditFoodOverlay(c *gin.Context) {
	var req struct {
		FoodID string `json:"foodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.OpenEditFoodOverlay(req.FoodID)
	s.recordAction("openEditFoodOverlay")
	c.JSON(http.StatusOK, s.container.Snapshot().Overlay)
}

func (s *Server) CloseEditFoodOverlay(c *gin.Context) {
	s.container.CloseEditFoodOverlay()
	s.recordAction("closeEditFoodOverlay")
	c.JSON(http.StatusOK, gin.H{"message": "Overlay closed"})
}

func (s *Server) OpenContextMenu(c *gin.Context) {
	var req struct {
		FoodID string `json:"foodId" binding:"required"`
		X      int    `json:"x"`
		Y      int    `json:"y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.container.OpenContextMenu(req.FoodID, req.X, req.Y)
	s.recordAction("openContextMenu")
	c.JSON(http.StatusOK, s.container.Snapshot().Overlay)
}

func (s *Server) CloseContextMenu(c *gin.Context) {
	s.container.CloseContextMenu()
	s.recordAction("closeContextMenu")
	c.JSON(http.StatusOK, gin.H{"message": "Overlay closed"})
}

// Recognition handler

// RecognizeFood accepts a multipart image and asks the recognition
// provider for a guess. The deployed provider always refuses; the 503
// payload tells the view to fall back to manual entry.
func (s *Server) RecognizeFood(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	if header.Size > s.recCfg.MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}
	image, err := io.ReadAll(io.LimitReader(file, s.recCfg.MaxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.recCfg.Timeout())
	defer cancel()

	result, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		s.log.Info("recognition failed", zap.Error(err))
		status := http.StatusBadGateway
		if errors.Is(err, recognition.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error(), "fallback": "manual"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeActionError maps container errors onto HTTP statuses.
func (s *Server) writeActionError(c *gin.Context, err error) {
	if errors.Is(err, state.ErrNotConfigured) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
