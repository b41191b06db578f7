package reviews

import (
	"encoding/json"
	"fmt"
	"strings"

	"cuashub/pkg/models"
)

// DraftReview is the typed form of an AI-generated review draft. The model
// is asked for exactly this shape; anything else is a parse failure, never a
// silently-trusted object.
type DraftReview struct {
	CategoryRatings    models.CategoryRatings  `json:"categoryRatings"`
	AdditionalComments models.CategoryComments `json:"additionalComments"`
	OtherUASSystems    string                  `json:"otherUASSystems"`
}

// ParseDraftReview decodes the model's response into a DraftReview. Markdown
// code fences around the JSON are tolerated; out-of-range ratings are not.
func ParseDraftReview(raw string) (*DraftReview, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var draft DraftReview
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("decode draft review: %w", err)
	}

	for _, v := range []int{
		draft.CategoryRatings.Transportability,
		draft.CategoryRatings.EaseOfUse,
		draft.CategoryRatings.Interoperability,
		draft.CategoryRatings.Detection,
		draft.CategoryRatings.Reliability,
	} {
		if v < 1 || v > 5 {
			return nil, fmt.Errorf("draft rating %d out of range", v)
		}
	}

	return &draft, nil
}
