package models

// AIRequest is a single-turn question about a vendor.
type AIRequest struct {
	VendorSlug string `json:"-"`
	Prompt     string `json:"prompt" binding:"required"`
}

type AIResponse struct {
	VendorSlug   string `json:"vendorSlug"`
	ResponseText string `json:"responseText"`
}
