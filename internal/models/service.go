// Package models defines core data structures for services, search options, and results.
package models

import (
	"strings"
	"time"
)

// Category classifies a service by the need it addresses.
type Category string

const (
	CategoryFood       Category = "Food"
	CategoryCrisis     Category = "Crisis"
	CategoryHousing    Category = "Housing"
	CategoryHealth     Category = "Health"
	CategoryLegal      Category = "Legal"
	CategoryWellness   Category = "Wellness"
	CategoryFinancial  Category = "Financial"
	CategoryEmployment Category = "Employment"
	CategoryEducation  Category = "Education"
	CategoryTransport  Category = "Transport"
	CategoryCommunity  Category = "Community"
	CategoryIndigenous Category = "Indigenous"
)

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{
		CategoryFood, CategoryCrisis, CategoryHousing, CategoryHealth,
		CategoryLegal, CategoryWellness, CategoryFinancial, CategoryEmployment,
		CategoryEducation, CategoryTransport, CategoryCommunity, CategoryIndigenous,
	}
}

// ParseCategory returns the category matching s (case-insensitive) and whether it is valid.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// VerificationLevel is the verification-confidence ladder for a service record,
// from unverified (L0) to provider-confirmed (L3).
type VerificationLevel int

const (
	VerificationL0 VerificationLevel = iota
	VerificationL1
	VerificationL2
	VerificationL3
)

// String returns a string representation of the verification level.
func (v VerificationLevel) String() string {
	switch v {
	case VerificationL0:
		return "L0"
	case VerificationL1:
		return "L1"
	case VerificationL2:
		return "L2"
	case VerificationL3:
		return "L3"
	default:
		return "unknown"
	}
}

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// LocalizedText holds an English and a French rendering of the same text.
type LocalizedText struct {
	EN string `json:"en" yaml:"en"`
	FR string `json:"fr" yaml:"fr"`
}

// SyntheticQueries are curated intent phrases attached to a service,
// per language, used to boost lexical recall beyond literal name/description text.
type SyntheticQueries struct {
	EN []string `json:"en,omitempty" yaml:"en,omitempty"`
	FR []string `json:"fr,omitempty" yaml:"fr,omitempty"`
}

// Service represents one support organization or offering. Services are loaded
// once per process from the store and are read-only during a search.
type Service struct {
	ID           string            `json:"id"`
	Name         LocalizedText     `json:"name"`
	Description  LocalizedText     `json:"description"`
	Category     Category          `json:"category"`
	Verification VerificationLevel `json:"verification_level"`
	IdentityTags []string          `json:"identity_tags,omitempty"`
	Synthetic    SyntheticQueries  `json:"synthetic_queries,omitempty"`
	Location     *Location         `json:"location,omitempty"`
	Embedding    []float32         `json:"-"`
	LastVerified *time.Time        `json:"last_verified,omitempty"`
	Hours        WeeklyHours       `json:"hours,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
