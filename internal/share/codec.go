// Package share encodes an invoice draft into a compact URL-safe token and
// back. The token is base64 over the draft's JSON; it carries no secrets and
// anyone with the link can read the draft.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"gstgenius/internal/domain"
)

// MaxTokenLen bounds the encoded token so the resulting link stays under
// roughly 8KB, the practical limit for URLs pasted into chats and mails.
const MaxTokenLen = 8000

// Encode serializes a draft into a share token. Inline data-URL logos are
// stripped first since they blow past the link size limit on their own.
func Encode(d domain.InvoiceDraft) (string, error) {
	if strings.HasPrefix(d.Seller.LogoURL, "data:image") {
		d.Seller.LogoURL = ""
	}
	if strings.HasPrefix(d.Buyer.LogoURL, "data:image") {
		d.Buyer.LogoURL = ""
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshaling draft for sharing: %w", err)
	}

	token := base64.StdEncoding.EncodeToString(raw)
	if len(token) > MaxTokenLen {
		return "", domain.ErrShareTooLarge
	}
	return token, nil
}

// Decode parses a share token back into a draft. Tokens that passed through
// query strings often arrive with '+' turned into spaces, and some clients
// re-encode with the URL-safe alphabet, so decoding is tolerant of both.
func Decode(token string) (domain.InvoiceDraft, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), " ", "+")

	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		raw, err = base64.URLEncoding.DecodeString(strings.TrimSpace(token))
	}
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(cleaned)
	}
	if err != nil {
		return domain.InvoiceDraft{}, domain.ErrShareCorrupt
	}

	var d domain.InvoiceDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.InvoiceDraft{}, domain.ErrShareCorrupt
	}
	return d, nil
}
