package handlers

import (
	"encoding/json"
	"net/http"

	"everafter/services/booking"
	"everafter/utils"

	"github.com/gin-gonic/gin"
)

// InquiryHandler drives the vendor inquiry sidebar.
type InquiryHandler struct {
	Service booking.InquiryService
}

func NewInquiryHandler(s booking.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: s}
}

type startSessionRequest struct {
	VendorSlug string `json:"vendorSlug" binding:"required"`
	booking.StartRequest
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type adjustGuestsRequest struct {
	Kind  booking.GuestKind `json:"kind" binding:"required"`
	Delta int               `json:"delta" binding:"required"`
}

type nextStepRequest struct {
	Step booking.Step    `json:"step" binding:"required"`
	Data json.RawMessage `json:"data"`
}

type changeStepRequest struct {
	Step booking.Step `json:"step" binding:"required"`
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return false
	}
	return true
}

// StartSessionHandler handles POST /api/inquiries/sessions.
func (h *InquiryHandler) StartSessionHandler(c *gin.Context) {
	var req startSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Service.StartSession(c.Request.Context(), req.VendorSlug, req.StartRequest)
	if err != nil {
		respondError(c, "Unable to start inquiry", err)
		return
	}
	c.JSON(http.StatusCreated, session.View())
}

// GetSessionHandler handles GET /api/inquiries/sessions/:id.
func (h *InquiryHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Inquiry session not found", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// CancelSessionHandler handles DELETE /api/inquiries/sessions/:id.
func (h *InquiryHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to cancel inquiry", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectDateHandler handles PUT /api/inquiries/sessions/:id/dates.
func (h *InquiryHandler) SelectDateHandler(c *gin.Context) {
	var req selectDateRequest
	if !bindJSON(c, &req) {
		return
	}
	day, err := booking.ParseDay(req.Date)
	if err != nil {
		respondError(c, "Invalid date", err)
		return
	}
	session, err := h.Service.SelectDate(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		respondError(c, "Date not available", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// AdjustGuestsHandler handles PUT /api/inquiries/sessions/:id/guests.
func (h *InquiryHandler) AdjustGuestsHandler(c *gin.Context) {
	var req adjustGuestsRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Service.AdjustGuests(c.Request.Context(), c.Param("id"), req.Kind, req.Delta)
	if err != nil {
		respondError(c, "Unable to update guests", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// NextStepHandler handles PUT /api/inquiries/sessions/:id/next.
func (h *InquiryHandler) NextStepHandler(c *gin.Context) {
	var req nextStepRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Service.Advance(c.Request.Context(), c.Param("id"), req.Step, req.Data)
	if err != nil {
		respondError(c, "Unable to continue", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// ChangeStepHandler handles PUT /api/inquiries/sessions/:id/change.
func (h *InquiryHandler) ChangeStepHandler(c *gin.Context) {
	var req changeStepRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.Service.Change(c.Request.Context(), c.Param("id"), req.Step)
	if err != nil {
		respondError(c, "Unable to change step", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// BackHandler handles PUT /api/inquiries/sessions/:id/back.
func (h *InquiryHandler) BackHandler(c *gin.Context) {
	session, err := h.Service.BackToEdit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Unable to go back", err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

// ConfirmHandler handles POST /api/inquiries/sessions/:id/confirm.
func (h *InquiryHandler) ConfirmHandler(c *gin.Context) {
	inquiry, session, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to send inquiry", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"inquiry": inquiry,
		"session": session.View(),
	})
}
