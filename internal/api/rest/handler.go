package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futures-relic/relic-atelier/internal/api/shared/dto"
	"github.com/futures-relic/relic-atelier/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetInventory returns the account's assets in the story collection
	// GET /api/v1/accounts/:account/assets
	GetInventory(c *gin.Context)

	// GetRecommendations returns the ranked blend list and next action
	// GET /api/v1/accounts/:account/recommendations
	GetRecommendations(c *gin.Context)

	// GetAccountScenes returns scenes with unlock state for the account
	// GET /api/v1/accounts/:account/scenes
	GetAccountScenes(c *gin.Context)

	// GetProgress returns the account's stored story progress
	// GET /api/v1/accounts/:account/progress
	GetProgress(c *gin.Context)

	// UnlockScene records a scene as unlocked for the account
	// POST /api/v1/accounts/:account/scenes/:scene_id/unlock
	UnlockScene(c *gin.Context)

	// CompleteBlend credits the account with a completed blend
	// POST /api/v1/accounts/:account/blends/:blend_id/complete
	CompleteBlend(c *gin.Context)

	// GetBlends returns the normalized merged blend catalog
	// GET /api/v1/blends
	GetBlends(c *gin.Context)

	// GetScenes returns the scene list without account context
	// GET /api/v1/scenes
	GetScenes(c *gin.Context)

	// GetTemplates returns all templates of the story collection
	// GET /api/v1/templates
	GetTemplates(c *gin.Context)

	// GetTemplate returns one template by id
	// GET /api/v1/templates/:template_id
	GetTemplate(c *gin.Context)

	// GetCollectionStats returns aggregate counts for the collection
	// GET /api/v1/collection/stats
	GetCollectionStats(c *gin.Context)

	// CreateScene creates a story scene (admin, requires authentication)
	// POST /api/v1/admin/scenes
	CreateScene(c *gin.Context)

	// UpdateScene replaces a story scene (admin, requires authentication)
	// PUT /api/v1/admin/scenes/:scene_id
	UpdateScene(c *gin.Context)

	// DeleteScene removes a story scene (admin, requires authentication)
	// DELETE /api/v1/admin/scenes/:scene_id
	DeleteScene(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST handler
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// accountParam extracts and validates the :account path parameter
func accountParam(c *gin.Context) (string, bool) {
	account := c.Param("account")
	if account == "" {
		respondBadRequest(c, "Missing account name")
		return "", false
	}
	return account, true
}

func (h *handler) GetInventory(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetInventory(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetRecommendations(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetRecommendations(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetAccountScenes(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetScenes(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetProgress(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetProgress(c.Request.Context(), account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) UnlockScene(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	sceneID := c.Param("scene_id")
	if sceneID == "" {
		respondBadRequest(c, "Missing scene id")
		return
	}

	resp, err := h.executor.UnlockScene(c.Request.Context(), account, sceneID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CompleteBlend(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	blendID := c.Param("blend_id")
	if blendID == "" {
		respondBadRequest(c, "Missing blend id")
		return
	}

	resp, err := h.executor.CompleteBlend(c.Request.Context(), account, blendID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetBlends(c *gin.Context) {
	grouped := c.Query("grouped") == "true"
	resp, err := h.executor.GetCatalog(c.Request.Context(), grouped)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetScenes(c *gin.Context) {
	resp, err := h.executor.GetScenes(c.Request.Context(), "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTemplates(c *gin.Context) {
	resp, err := h.executor.GetTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTemplate(c *gin.Context) {
	templateID := c.Param("template_id")
	if templateID == "" {
		respondBadRequest(c, "Missing template id")
		return
	}

	resp, err := h.executor.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCollectionStats(c *gin.Context) {
	resp, err := h.executor.GetCollectionStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateScene(c *gin.Context) {
	var req dto.CreateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.CreateScene(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) UpdateScene(c *gin.Context) {
	sceneID := c.Param("scene_id")
	if sceneID == "" {
		respondBadRequest(c, "Missing scene id")
		return
	}

	var req dto.UpdateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.UpdateScene(c.Request.Context(), sceneID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteScene(c *gin.Context) {
	sceneID := c.Param("scene_id")
	if sceneID == "" {
		respondBadRequest(c, "Missing scene id")
		return
	}

	if err := h.executor.DeleteScene(c.Request.Context(), sceneID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
