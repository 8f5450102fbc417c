package models

import "time"

type HeroContent struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	CTAText         string   `json:"ctaText"`
	CTALink         string   `json:"ctaLink"`
	BackgroundImage string   `json:"backgroundImage"`
	Slides          []string `json:"slides,omitempty"`
}

type AboutStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type AboutContent struct {
	Heading string      `json:"heading"`
	Body    string      `json:"body"`
	Image   string      `json:"image"`
	Stats   []AboutStat `json:"stats"`
}

type ServiceCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContentState is the editable homepage copy.
type ContentState struct {
	Hero     HeroContent   `json:"hero"`
	About    AboutContent  `json:"about"`
	Services []ServiceCard `json:"services"`
	FAQ      []FAQItem     `json:"faq"`
}

// PageContent is the persisted draft/published record for one page slug.
type PageContent struct {
	Slug             string     `bson:"slug" json:"slug"`
	DraftContent     string     `bson:"draft_content,omitempty" json:"-"`
	PublishedContent string     `bson:"published_content,omitempty" json:"-"`
	Published        bool       `bson:"published" json:"published"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updatedAt"`
	PublishedAt      *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
}

// ContentResponse is what content endpoints return.
type ContentResponse struct {
	Slug        string       `json:"slug"`
	Source      string       `json:"source"` // "published", "draft", "workspace" or "default".
	Content     ContentState `json:"content"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
}
