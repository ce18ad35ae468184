package services

import (
	"strings"

	"djurdata-ai/internal/constants"
)

// ValidationResult is the outcome of checking one outgoing chat message.
type ValidationResult struct {
	Allowed  bool
	Reason   string
	Severity string
}

// ModerationPolicy carries the term lists the validator checks against.
// Matching is case-insensitive substring matching in a fixed precedence:
// domain allow-list first, then manipulation patterns, then the blocklist.
type ModerationPolicy struct {
	AllowTerms           []string
	ManipulationPatterns []string
	BlockedTerms         []string
}

// DefaultModerationPolicy returns the built-in Swedish pet-care policy.
func DefaultModerationPolicy() ModerationPolicy {
	return ModerationPolicy{
		AllowTerms:           constants.DomainAllowTerms,
		ManipulationPatterns: constants.ManipulationPatterns,
		BlockedTerms:         constants.StrictlyBlockedTerms,
	}
}

type MessageValidator struct {
	policy ModerationPolicy
}

func NewMessageValidator(policy ModerationPolicy) *MessageValidator {
	return &MessageValidator{policy: policy}
}

// Validate classifies a single user message. A hit on the domain allow-list
// admits the message before either blocklist is consulted, so care questions
// that happen to share a word with a blocked term still go through.
func (v *MessageValidator) Validate(message string) ValidationResult {
	lower := strings.ToLower(message)

	for _, term := range v.policy.AllowTerms {
		if strings.Contains(lower, term) {
			return ValidationResult{Allowed: true}
		}
	}

	for _, pattern := range v.policy.ManipulationPatterns {
		if strings.Contains(lower, pattern) {
			return ValidationResult{
				Allowed:  false,
				Reason:   constants.FlagReasonManipulation,
				Severity: constants.SeverityHigh,
			}
		}
	}

	for _, term := range v.policy.BlockedTerms {
		if strings.Contains(lower, term) {
			return ValidationResult{
				Allowed:  false,
				Reason:   term,
				Severity: constants.SeverityHigh,
			}
		}
	}

	return ValidationResult{Allowed: true}
}
