package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidDraft       = errors.New("draft failed validation")
	ErrShareTooLarge      = errors.New("invoice is too large to share via link")
	ErrShareCorrupt       = errors.New("share token could not be decoded")
	ErrExtractFailed      = errors.New("assistant could not extract invoice data")
	ErrUnsupportedLogo    = errors.New("unsupported logo file type")
	ErrLogoTooLarge       = errors.New("logo exceeds maximum allowed size")
	ErrUploadFailed       = errors.New("file upload to storage failed")
	ErrBuyerEmailMissing  = errors.New("buyer has no email address")
)

// ValidationError carries the full list of structural errors for a draft so
// callers can show them all at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "draft failed validation"
}

// Is lets errors.Is match a ValidationError against ErrInvalidDraft.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDraft
}
