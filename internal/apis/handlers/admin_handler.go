package handlers

import (
	"log"
	"net/http"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationService services.IModerationService
}

func NewAdminHandler(moderationService services.IModerationService) *AdminHandler {
	if moderationService == nil {
		log.Fatal("Moderation service cannot be nil")
	}
	return &AdminHandler{
		moderationService: moderationService,
	}
}

// @Summary Block user
// @Description Block a user from chatting
// @Accept json
// @Produce json
// @Param blockRequest body dtos.BlockUserRequest true "Block request"
// @Success 200 {object} dtos.Response
func (h *AdminHandler) BlockUser(c *gin.Context) {
	var req dtos.BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	adminID := c.GetString("userID")
	statusCode, err := h.moderationService.BlockUser(c.Request.Context(), adminID, req.UserID, req.Reason)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

// @Summary Unblock user
// @Description Lift a user's block; the violation history is kept
// @Accept json
// @Produce json
// @Param unblockRequest body dtos.UnblockUserRequest true "Unblock request"
// @Success 200 {object} dtos.Response
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	var req dtos.UnblockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	adminID := c.GetString("userID")
	statusCode, err := h.moderationService.UnblockUser(c.Request.Context(), adminID, req.UserID)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

// @Summary Review flag
// @Description Mark a flagged message as reviewed
// @Accept json
// @Produce json
// @Param reviewRequest body dtos.ReviewFlagRequest true "Review request"
// @Success 200 {object} dtos.Response
func (h *AdminHandler) ReviewFlag(c *gin.Context) {
	var req dtos.ReviewFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	adminID := c.GetString("userID")
	statusCode, err := h.moderationService.ReviewFlag(c.Request.Context(), adminID, req.FlagID)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

// @Summary List flagged messages
// @Description List flagged messages, optionally only unreviewed ones
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AdminHandler) ListFlags(c *gin.Context) {
	var req dtos.ListFlagsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	flags, statusCode, err := h.moderationService.ListFlagged(req.UnreviewedOnly)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    flags,
	})
}

// @Summary List violations
// @Description List per-user violation state
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AdminHandler) ListViolations(c *gin.Context) {
	violations, statusCode, err := h.moderationService.ListViolations()
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    violations,
	})
}

// @Summary Audit log
// @Description List recent admin moderation actions
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AdminHandler) AuditLog(c *gin.Context) {
	var req dtos.AuditLogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	actions, statusCode, err := h.moderationService.ListAuditLog(req.Limit)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    actions,
	})
}
