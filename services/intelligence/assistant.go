package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"everafter/models"

	"go.uber.org/zap"
)

const maxPromptRunes = 1000

var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrPromptTooLong = fmt.Errorf("prompt must be at most %d characters", maxPromptRunes)
	ErrAIUnavailable = errors.New("assistant is not configured")
)

// ContentGenerator turns a prompt into free text.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// VendorLookup provides the vendor bio the assistant answers from.
type VendorLookup interface {
	GetBySlug(ctx context.Context, slug string) (*models.Vendor, error)
}

// Assistant answers single-turn questions about a vendor.
type Assistant struct {
	Generator ContentGenerator
	Vendors   VendorLookup
	Cache     AnswerCache
	Logger    *zap.Logger
}

func NewAssistant(gen ContentGenerator, vendors VendorLookup, cache AnswerCache, logger *zap.Logger) *Assistant {
	return &Assistant{Generator: gen, Vendors: vendors, Cache: cache, Logger: logger}
}

// BuildPrompt combines the vendor bio with the visitor's question.
func BuildPrompt(v *models.Vendor, question string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vendor: %s (%s, %s)\n", v.BusinessName, v.Category, v.City)
	fmt.Fprintf(&sb, "Price tier: %s\n", v.PriceTier)
	bio := v.Bio
	if bio == "" {
		bio = v.Description
	}
	fmt.Fprintf(&sb, "Bio: %s\n\n", bio)
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

func (a *Assistant) Ask(ctx context.Context, req models.AIRequest) (*models.AIResponse, error) {
	question := strings.TrimSpace(req.Prompt)
	if question == "" {
		return nil, ErrEmptyPrompt
	}
	if utf8.RuneCountInString(question) > maxPromptRunes {
		return nil, ErrPromptTooLong
	}
	if a.Generator == nil {
		return nil, ErrAIUnavailable
	}

	vendor, err := a.Vendors.GetBySlug(ctx, req.VendorSlug)
	if err != nil {
		return nil, err
	}
	if a.Cache != nil {
		if answer, ok := a.Cache.Get(ctx, vendor.Slug, question); ok {
			return &models.AIResponse{VendorSlug: vendor.Slug, ResponseText: answer}, nil
		}
	}

	answer, err := a.Generator.GenerateContent(ctx, BuildPrompt(vendor, question))
	if err != nil {
		a.Logger.Error("assistant generation failed", zap.String("vendor", vendor.Slug), zap.Error(err))
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if a.Cache != nil {
		a.Cache.Set(ctx, vendor.Slug, question, answer)
	}
	return &models.AIResponse{VendorSlug: vendor.Slug, ResponseText: answer}, nil
}
