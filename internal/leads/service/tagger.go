package service

import (
	"strings"

	"lingualeads_backend/internal/leads/transport"
)

// Categorize maps a translated English message to an intake tag via
// case-insensitive substring rules. Rules are evaluated in fixed priority
// order and the first match wins, so a message mentioning both "price" and
// "demo" tags as pricing.
func Categorize(englishText string) transport.Tag {
	text := strings.ToLower(englishText)
	switch {
	case strings.Contains(text, "price") || strings.Contains(text, "cost"):
		return transport.TagPricing
	case strings.Contains(text, "demo"):
		return transport.TagDemo
	case strings.Contains(text, "support") || strings.Contains(text, "issue"):
		return transport.TagSupport
	case strings.Contains(text, "enterprise"):
		return transport.TagEnterprise
	default:
		return transport.TagGeneral
	}
}
