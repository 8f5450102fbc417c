// File: everafter/handlers/admin.go
package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"everafter/middleware"
	"everafter/models"
	"everafter/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultInquiryCap = 50
	maxInquiryCap     = 500
)

// InquiryLister reads submitted inquiries for the admin dashboard.
type InquiryLister interface {
	List(ctx context.Context, vendorSlug string, limit int) ([]models.Inquiry, error)
}

// AdminHandler encapsulates admin sign-in and elevated reads.
type AdminHandler struct {
	Email        string
	PasswordHash string
	Secret       []byte
	TokenTTL     time.Duration
	Inquiries    InquiryLister
}

func NewAdminHandler(email, passwordHash string, secret []byte, inquiries InquiryLister) *AdminHandler {
	return &AdminHandler{
		Email:        email,
		PasswordHash: passwordHash,
		Secret:       secret,
		TokenTTL:     utils.AdminTokenTTL,
		Inquiries:    inquiries,
	}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var req adminLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if h.Email == "" || h.PasswordHash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "Admin access is not configured", "")
		return
	}

	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(req.Email))),
		[]byte(strings.ToLower(h.Email)),
	) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password))
	if !emailOK || passErr != nil {
		getLogger(c).Warn("Admin login failed", zap.String("email", req.Email))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	token, err := utils.GenerateToken(h.Secret, h.Email, middleware.AdminRole, h.TokenTTL)
	if err != nil {
		getLogger(c).Error("Failed to issue admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(h.TokenTTL.Seconds()),
	})
}

// ListInquiriesHandler handles GET /api/admin/inquiries?vendor=&limit=.
func (h *AdminHandler) ListInquiriesHandler(c *gin.Context) {
	limit := defaultInquiryCap
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = min(n, maxInquiryCap)
	}

	inquiries, err := h.Inquiries.List(c.Request.Context(), c.Query("vendor"), limit)
	if err != nil {
		respondError(c, "Failed to fetch inquiries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries, "count": len(inquiries)})
}
