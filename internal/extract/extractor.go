// Package extract turns free-text transaction descriptions into partial
// invoice updates using an OpenAI-compatible chat model.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"

	"gstgenius/internal/config"
	"gstgenius/internal/domain"
	"gstgenius/internal/port"
	"gstgenius/internal/ruleset"
)

const systemPrompt = `You convert a plain-English description of an Indian sales transaction into a JSON patch for an invoice draft.

Respond with ONLY a JSON object, no prose. Fields, all optional:
  "type":  one of "Tax Invoice", "Bill of Supply", "Proforma Invoice", "Credit Note", "Debit Note"
  "buyer": {"name": string, "state": string, "gstin": string, "address": string}
  "items": [{"description": string, "hsn": string, "qty": number, "rate": number, "gstRate": number}]
  "notes": string

Rules:
- gstRate must be one of 0, 5, 12, 18, 28. Pick the usual rate for the goods or services named; use 18 when unsure.
- Interpret Indian shorthand: "45k" is 45000, "1.5L" is 150000.
- buyer.state must be an Indian state name when a city or state is mentioned (e.g. Bangalore means Karnataka).
- Omit every field the text says nothing about. Never invent a buyer GSTIN.`

type extractor struct {
	client openai.Client
	model  string
}

// New creates a DraftExtractor backed by an OpenAI-compatible endpoint.
func New(cfg config.ExtractConfig) port.DraftExtractor {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &extractor{
		client: openai.NewClient(opts...),
		model:  cfg.DefaultModel,
	}
}

func (e *extractor) Extract(ctx context.Context, prompt string) (domain.DraftPatch, error) {
	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: e.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   param.NewOpt[int64](2048),
		Temperature: param.NewOpt[float64](0.1),
	})
	if err != nil {
		return domain.DraftPatch{}, fmt.Errorf("extract chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.DraftPatch{}, domain.ErrExtractFailed
	}

	var patch domain.DraftPatch
	if err := json.Unmarshal([]byte(ExtractJSON(resp.Choices[0].Message.Content)), &patch); err != nil {
		return domain.DraftPatch{}, domain.ErrExtractFailed
	}
	return patch, nil
}

// ExtractJSON pulls the JSON payload out of a model response, tolerating
// markdown code fences around it.
func ExtractJSON(response string) string {
	if start := strings.Index(response, "```json"); start != -1 {
		start += 7
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	if start := strings.Index(response, "```"); start != -1 {
		start += 3
		if nl := strings.Index(response[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	return strings.TrimSpace(response)
}

// Apply merges a patch into a draft and returns the result. The input draft
// is never modified; a patch that fails sanity checks is rejected whole so a
// bad extraction cannot half-update the caller's draft.
func Apply(d domain.InvoiceDraft, p domain.DraftPatch) (domain.InvoiceDraft, error) {
	if p.Type != nil && !domain.ValidInvoiceTypes[*p.Type] {
		return domain.InvoiceDraft{}, domain.ErrExtractFailed
	}
	for _, it := range p.Items {
		if it.Qty <= 0 || it.Rate < 0 || !domain.ValidGSTRates[it.GSTRate] {
			return domain.InvoiceDraft{}, domain.ErrExtractFailed
		}
	}

	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Buyer != nil {
		if p.Buyer.Name != "" {
			d.Buyer.Name = p.Buyer.Name
		}
		if p.Buyer.State != "" && domain.IsIndianState(p.Buyer.State) {
			d.Buyer.State = p.Buyer.State
		}
		if p.Buyer.GSTIN != "" {
			d.Buyer.GSTIN = p.Buyer.GSTIN
		}
		if p.Buyer.Address != "" {
			d.Buyer.Address = p.Buyer.Address
		}
	}
	if len(p.Items) > 0 {
		items := make([]domain.LineItem, len(p.Items))
		for i, it := range p.Items {
			if it.ID == "" {
				it.ID = fmt.Sprintf("%d", i+1)
			}
			ruleset.AutoFillHSN(&it)
			items[i] = it
		}
		d.Items = items
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	return d, nil
}
