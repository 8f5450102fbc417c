// File: everafter/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AdminSecret       []byte
	MaxRequestsPerMin int

	// Vendor directory endpoints
	ListVendorsHandler gin.HandlerFunc
	FacetsHandler      gin.HandlerFunc
	GetVendorHandler   gin.HandlerFunc
	QuoteHandler       gin.HandlerFunc
	AskVendorHandler   gin.HandlerFunc

	// Inquiry endpoints
	StartSessionHandler  gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	CancelSessionHandler gin.HandlerFunc
	SelectDateHandler    gin.HandlerFunc
	AdjustGuestsHandler  gin.HandlerFunc
	NextStepHandler      gin.HandlerFunc
	ChangeStepHandler    gin.HandlerFunc
	BackHandler          gin.HandlerFunc
	ConfirmHandler       gin.HandlerFunc

	// Content endpoints
	GetPublicContentHandler gin.HandlerFunc
	GetAdminContentHandler  gin.HandlerFunc
	EditSectionHandler      gin.HandlerFunc
	SaveDraftHandler        gin.HandlerFunc
	PublishHandler          gin.HandlerFunc
	DiscardHandler          gin.HandlerFunc

	// Admin endpoints
	AdminLoginHandler    gin.HandlerFunc
	ListInquiriesHandler gin.HandlerFunc
	UploadMediaHandler   gin.HandlerFunc
	DeleteMediaHandler   gin.HandlerFunc
}
