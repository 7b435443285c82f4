package handler

import (
	"net/http"

	"github.com/Alchez/shopify-integration/internal/application/sync"
	"github.com/Alchez/shopify-integration/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the sync trigger endpoints
type SyncHandler struct {
	BaseHandler
	service *sync.Service
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(service *sync.Service) *SyncHandler {
	return &SyncHandler{service: service}
}

// RegisterRoutes registers sync routes on the given group
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/sync")
	group.POST("/products", h.TriggerProducts)
	group.POST("/payouts", h.TriggerPayouts)
}

// TriggerResponse reports whether a sync pass was queued
type TriggerResponse struct {
	Accepted bool `json:"accepted"`
}

// TriggerProducts queues a product sync pass. A pass already queued or
// running is reported as not accepted; the trigger is never stacked.
func (h *SyncHandler) TriggerProducts(c *gin.Context) {
	if !h.service.Enabled() {
		h.Error(c, http.StatusConflict, dto.ErrCodeSyncDisabled, "sync is disabled")
		return
	}
	h.Accepted(c, TriggerResponse{Accepted: h.service.TriggerProductSync()})
}

// TriggerPayouts queues a payout sync pass.
func (h *SyncHandler) TriggerPayouts(c *gin.Context) {
	if !h.service.Enabled() {
		h.Error(c, http.StatusConflict, dto.ErrCodeSyncDisabled, "sync is disabled")
		return
	}
	h.Accepted(c, TriggerResponse{Accepted: h.service.TriggerPayoutSync()})
}
