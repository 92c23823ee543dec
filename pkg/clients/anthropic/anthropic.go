package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

// Client defines the interface for AI listing extraction and commentary.
type Client interface {
	ExtractListing(ctx context.Context, listing string) (ListingExtraction, error)
	CommentOnMetrics(ctx context.Context, figures MetricFigures) (string, error)
}

// ListingExtraction holds the property fields recognised in free-form listing
// text. Pointers distinguish "not mentioned" from an explicit zero.
type ListingExtraction struct {
	PurchasePrice          *float64 `json:"purchase_price,omitempty"`
	LivingAreaSqm          *float64 `json:"living_area_sqm,omitempty"`
	MonthlyColdRent        *float64 `json:"monthly_cold_rent,omitempty"`
	BuildingFeeTotal       *float64 `json:"building_fee_total,omitempty"`
	BuildingFeePassThrough *float64 `json:"building_fee_pass_through,omitempty"`
	PropertyType           string   `json:"property_type,omitempty"`
	Notes                  string   `json:"notes,omitempty"`
}

// MetricFigures is the numeric summary the commentary prompt is built from.
type MetricFigures struct {
	MonthlyCashFlow   float64 `json:"monthly_cash_flow"`
	NetRentalYieldPct float64 `json:"net_rental_yield_pct"`
	DSCR              float64 `json:"dscr"`
	EquityRatioPct    float64 `json:"equity_ratio_pct"`
}

type anthropicClient struct {
	httpClient *resty.Client
}

// NewClient creates a configured Anthropic client.
func NewClient(apiKey string) Client {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &anthropicClient{httpClient: client}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []Message `json:"messages"`
}

// Message is one turn of an Anthropic Messages conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

const extractionSystemPrompt = `You are a data extraction assistant for a German rental property analysis tool.
The user sends the raw text of a property listing. Extract the financial fields and answer with ONLY a JSON object, no prose:
{
  "purchase_price": (number or null, EUR),
  "living_area_sqm": (number or null),
  "monthly_cold_rent": (number or null, EUR, Kaltmiete; for vacant units use the advertised achievable rent),
  "building_fee_total": (number or null, EUR monthly Hausgeld),
  "building_fee_pass_through": (number or null, EUR monthly umlagefaehig portion),
  "property_type": ("apartment", "house", "multi-family-house", or null),
  "notes": (short string with anything ambiguous, or null)
}
Rules:
- Never guess a number that is not in the text; use null instead.
- Normalize thousand separators and units ("315.000 EUR" -> 315000).
- Escape newlines inside the notes string.`

// ExtractListing asks the model to pull property financials out of free-form
// listing text.
func (c *anthropicClient) ExtractListing(ctx context.Context, listing string) (ListingExtraction, error) {
	raw, err := c.complete(ctx, extractionSystemPrompt, listing)
	if err != nil {
		return ListingExtraction{}, err
	}

	var extraction ListingExtraction
	if err := json.Unmarshal([]byte(cleanJSONReply(raw)), &extraction); err != nil {
		return ListingExtraction{}, fmt.Errorf("parse extraction reply: %w", err)
	}
	return extraction, nil
}

const commentarySystemPrompt = `You are an investment analyst writing for a private real estate investor.
The user message is a JSON summary of one rental property: monthly pre-tax cash flow (EUR), net rental yield (%), debt service coverage ratio and equity ratio (%).
Write 2-3 plain sentences assessing the investment. Mention concrete numbers. No greetings, no markdown, no disclaimers.`

// CommentOnMetrics produces a short free-text assessment of the four summary
// figures.
func (c *anthropicClient) CommentOnMetrics(ctx context.Context, figures MetricFigures) (string, error) {
	payload, err := json.Marshal(figures)
	if err != nil {
		return "", fmt.Errorf("marshal metric figures: %w", err)
	}

	reply, err := c.complete(ctx, commentarySystemPrompt, string(payload))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (c *anthropicClient) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []Message{{Role: "user", Content: user}},
	}

	result := new(messageResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(result).
		Post(apiURL)
	if err != nil {
		return "", fmt.Errorf("call anthropic api: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("anthropic api error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	if len(result.Content) == 0 {
		return "", fmt.Errorf("anthropic api returned empty content")
	}
	return result.Content[0].Text, nil
}

// cleanJSONReply strips markdown fences the model sometimes wraps around JSON.
func cleanJSONReply(raw string) string {
	out := strings.TrimSpace(raw)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
