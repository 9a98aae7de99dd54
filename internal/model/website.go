package model

import (
	"fmt"
	"strings"
	"time"
)

// SiteType represents the platform a website runs on.
type SiteType string

const (
	SiteTypeCustom    SiteType = "custom"
	SiteTypeShopify   SiteType = "shopify"
	SiteTypeWordpress SiteType = "wordpress"
)

// Website represents a site tracked by the platform.
type Website struct {
	ID          string
	Domain      string
	SiteType    SiteType
	Industry    string
	Competitors []string
	CreatedAt   time.Time
}

// NewWebsite is the configuration for registering a website.
type NewWebsite struct {
	Domain      string
	SiteType    SiteType
	Industry    string
	Competitors []string
}

// Validate validates the website registration request.
func (w *NewWebsite) Validate() error {
	if w.Domain == "" {
		return fmt.Errorf("domain is required: %w", ErrNotValid)
	}
	if strings.Contains(w.Domain, "://") {
		return fmt.Errorf("domain must not include a scheme: %w", ErrNotValid)
	}

	switch w.SiteType {
	case "":
		w.SiteType = SiteTypeCustom
	case SiteTypeCustom, SiteTypeShopify, SiteTypeWordpress:
	default:
		return fmt.Errorf("unknown site type %q: %w", w.SiteType, ErrNotValid)
	}

	for _, c := range w.Competitors {
		if c == "" {
			return fmt.Errorf("competitor domain cannot be empty: %w", ErrNotValid)
		}
	}

	return nil
}
