package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"everafter/models"

	"github.com/google/uuid"
)

// Section names an editable part of the homepage.
type Section string

const (
	SectionHero     Section = "hero"
	SectionAbout    Section = "about"
	SectionServices Section = "services"
	SectionFAQ      Section = "faq"
)

var (
	ErrUnknownSection = errors.New("unknown content section")
	ErrInvalidPatch   = errors.New("invalid section content")
)

// ParseSection accepts a section name in any case.
func ParseSection(s string) (Section, error) {
	switch sec := Section(strings.ToLower(strings.TrimSpace(s))); sec {
	case SectionHero, SectionAbout, SectionServices, SectionFAQ:
		return sec, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// clone deep-copies the list fields so updates never alias the input.
func clone(s models.ContentState) models.ContentState {
	s.Hero.Slides = slices.Clone(s.Hero.Slides)
	s.About.Stats = slices.Clone(s.About.Stats)
	s.Services = slices.Clone(s.Services)
	s.FAQ = slices.Clone(s.FAQ)
	return s
}

// patchKeys lists the top-level keys of an object patch. Lists named in
// the patch are decoded into fresh slices so no old element survives.
func patchKeys(patch json.RawMessage) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(patch, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// ApplyHero merges the keys present in patch into the hero section.
// A slides key replaces the whole list.
func ApplyHero(state models.ContentState, patch json.RawMessage) (models.ContentState, error) {
	next := clone(state)
	keys, err := patchKeys(patch)
	if err != nil {
		return state, fmt.Errorf("%w: hero: %v", ErrInvalidPatch, err)
	}
	if _, ok := keys["slides"]; ok {
		next.Hero.Slides = nil
	}
	if err := json.Unmarshal(patch, &next.Hero); err != nil {
		return state, fmt.Errorf("%w: hero: %v", ErrInvalidPatch, err)
	}
	return next, nil
}

// ApplyAbout merges the keys present in patch into the about section.
// A stats key replaces the whole list.
func ApplyAbout(state models.ContentState, patch json.RawMessage) (models.ContentState, error) {
	next := clone(state)
	keys, err := patchKeys(patch)
	if err != nil {
		return state, fmt.Errorf("%w: about: %v", ErrInvalidPatch, err)
	}
	if _, ok := keys["stats"]; ok {
		next.About.Stats = nil
	}
	if err := json.Unmarshal(patch, &next.About); err != nil {
		return state, fmt.Errorf("%w: about: %v", ErrInvalidPatch, err)
	}
	return next, nil
}

// ReplaceServices swaps in a new services list. Cards without an ID get one.
func ReplaceServices(state models.ContentState, cards []models.ServiceCard) models.ContentState {
	next := clone(state)
	next.Services = make([]models.ServiceCard, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		next.Services[i] = c
	}
	return next
}

// ReplaceFAQ swaps in a new FAQ list. Items without an ID get one.
func ReplaceFAQ(state models.ContentState, items []models.FAQItem) models.ContentState {
	next := clone(state)
	next.FAQ = make([]models.FAQItem, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		next.FAQ[i] = it
	}
	return next
}

// ApplySection routes a raw update by section kind: object sections merge,
// list sections replace.
func ApplySection(state models.ContentState, section Section, raw json.RawMessage) (models.ContentState, error) {
	switch section {
	case SectionHero:
		return ApplyHero(state, raw)
	case SectionAbout:
		return ApplyAbout(state, raw)
	case SectionServices:
		var cards []models.ServiceCard
		if err := json.Unmarshal(raw, &cards); err != nil {
			return state, fmt.Errorf("%w: services must be a list: %v", ErrInvalidPatch, err)
		}
		return ReplaceServices(state, cards), nil
	case SectionFAQ:
		var items []models.FAQItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return state, fmt.Errorf("%w: faq must be a list: %v", ErrInvalidPatch, err)
		}
		return ReplaceFAQ(state, items), nil
	}
	return state, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}
