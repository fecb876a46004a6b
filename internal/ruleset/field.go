// Package ruleset holds the document rules for invoice drafts: field format
// checks, structural validation that gates save and export, HSN code
// suggestion, and document-type guidance. Everything here is a pure function
// over the draft value; nothing blocks, errors are collected and returned,
// never panicked.
package ruleset

import (
	"errors"
	"regexp"
	"strings"

	"gstgenius/internal/domain"
)

var (
	// GSTIN: 2-digit state code, PAN (5 letters, 4 digits, 1 letter),
	// entity number, literal Z, check code.
	gstinRe = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panRe   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

var (
	ErrGSTINFormat = errors.New("Invalid GSTIN format (e.g., 27ABCDE1234F1Z5)")
	ErrPANFormat   = errors.New("Invalid PAN format (e.g., ABCDE1234F)")
	ErrEmailFormat = errors.New("Invalid email address")
	ErrPhoneFormat = errors.New("Phone must be 10 digits")
)

// ValidateField checks a single party field against its format rule. An empty
// or whitespace-only value is treated as not provided and passes. A nil
// return means valid.
func ValidateField(kind domain.FieldKind, value string) error {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return nil
	}

	switch kind {
	case domain.FieldGSTIN:
		if !gstinRe.MatchString(clean) {
			return ErrGSTINFormat
		}
	case domain.FieldPAN:
		if !panRe.MatchString(clean) {
			return ErrPANFormat
		}
	case domain.FieldEmail:
		if !emailRe.MatchString(clean) {
			return ErrEmailFormat
		}
	case domain.FieldPhone:
		if !phoneRe.MatchString(clean) {
			return ErrPhoneFormat
		}
	}
	return nil
}
