package summary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"cuashub/pkg/models"
)

// User-facing fallbacks. Generation failures are swallowed into these; they
// never surface as errors.
const (
	SummaryFallback  = "Unable to generate summary at this time. Please try again later."
	ReviewFallback   = "Unable to generate review content at this time. Please try again later."
	NoReviewsMessage = "No reviews available for this product yet."
)

// Client wraps the Gemini API for review summaries and drafted reviews.
// With no API key configured the client stays disabled and every call
// returns its fallback string.
type Client struct {
	genai  *genai.Client
	model  string
	logger *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) *Client {
	c := &Client{model: model, logger: logger}

	if apiKey == "" {
		logger.Warn("gemini api key not configured; summaries will use fallback text")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Warn("gemini client init failed; summaries will use fallback text", zap.Error(err))
		return c
	}
	c.genai = client
	return c
}

func (c *Client) generate(ctx context.Context, prompt, fallback string) string {
	if c.genai == nil {
		return fallback
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Warn("gemini generate failed", zap.Error(err))
		return fallback
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fallback
	}
	return text
}

// GenerateReviewSummary produces an AI summary of a product's reviews, or
// the fixed fallback on any failure.
func (c *Client) GenerateReviewSummary(ctx context.Context, productName string, reviews []models.Review) string {
	if len(reviews) == 0 {
		return NoReviewsMessage
	}
	return c.generate(ctx, summaryPrompt(productName, reviews), SummaryFallback)
}

// GenerateDraftReview asks the model for a structured draft review and
// returns the raw response text; the caller parses it into a typed draft.
func (c *Client) GenerateDraftReview(ctx context.Context, productName string) string {
	return c.generate(ctx, draftPrompt(productName), ReviewFallback)
}

func summaryPrompt(productName string, reviews []models.Review) string {
	var blocks []string
	for _, r := range reviews {
		cr := r.CategoryRatings
		avg := float64(cr.Transportability+cr.EaseOfUse+cr.Interoperability+cr.Detection+cr.Reliability) / 5

		var comments []string
		for _, c := range r.AdditionalComments.Values() {
			if c != "" {
				comments = append(comments, c)
			}
		}

		blocks = append(blocks, fmt.Sprintf(
			"Reviewer: %s (%s - %s)\nRating: %.1f/5\nTransportability: %d/5\nEase of Use: %d/5\nInteroperability: %d/5\nDetection: %d/5\nReliability: %d/5\nReview: %s",
			r.Author, r.MilService, r.Role, avg,
			cr.Transportability, cr.EaseOfUse, cr.Interoperability, cr.Detection, cr.Reliability,
			strings.Join(comments, " "),
		))
	}

	return fmt.Sprintf(`Please provide a comprehensive summary of all reviews for the "%s" counter-UAS system. Analyze the following reviews and provide:

1. Overall sentiment and average ratings across all categories
2. Key strengths and weaknesses mentioned
3. Common themes and patterns in feedback
4. Recommendations or concerns from users
5. Summary of suitability for different military contexts

Reviews:
%s

Please keep the summary concise but informative, focusing on actionable insights for potential users.`,
		productName, strings.Join(blocks, "\n\n---\n\n"))
}

func draftPrompt(productName string) string {
	return fmt.Sprintf(`Generate a detailed review for the %s counter-UAS system.
Focus on these categories: Transportability & Mobility, Ease of Use, Interoperability, Detection & Effectiveness, System Reliability.
Provide specific, realistic feedback that a military operator might give based on actual system characteristics.
Include both ratings (1-5 scale) and detailed comments for each category.
Also suggest what other UAS systems this user might have experience with.

Format the response as a JSON object with this structure:
{
  "categoryRatings": {
    "transportability": number (1-5),
    "easeOfUse": number (1-5),
    "interoperability": number (1-5),
    "detection": number (1-5),
    "reliability": number (1-5)
  },
  "additionalComments": {
    "transportability": "detailed comment",
    "easeOfUse": "detailed comment",
    "interoperability": "detailed comment",
    "detection": "detailed comment",
    "reliability": "detailed comment"
  },
  "otherUASSystems": "list of other systems"
}`, productName)
}
