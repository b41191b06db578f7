// Package wizard implements the guided review flow: pick the system under
// review, rate the five fixed categories, confirm. The flow is strictly
// linear; a finished wizard cannot be rewound, callers start a new one.
package wizard

import (
	"errors"
	"strings"

	"cuashub/pkg/models"
)

type Step string

const (
	StepIntro    Step = "intro"
	StepReview   Step = "review"
	StepComplete Step = "complete"
)

// Category is one rating slot of the form. Rating and NotApplicable are
// mutually exclusive by construction: setting one clears the other.
type Category struct {
	ID            string
	Title         string
	Description   string
	Rating        int
	Comment       string
	NotApplicable bool
}

// Submission is the assembled payload handed off when the wizard completes.
type Submission struct {
	SystemName         string
	CUASExperience     string
	PreviousSystems    string
	Categories         []Category
	AdditionalFeedback string
}

// SubmitFunc receives the payload on completion. An error keeps the wizard
// on the review step so the operator can retry.
type SubmitFunc func(Submission) error

// ErrIncomplete signals a blocked transition; the wizard state is unchanged.
var ErrIncomplete = errors.New("review incomplete")

type Wizard struct {
	step       Step
	products   []models.Product
	prefilled  bool
	submit     SubmitFunc
	categories []Category

	SystemName         string
	CUASExperience     string
	PreviousSystems    string
	AdditionalFeedback string
}

// New starts a wizard at the intro step with the selectable product list.
func New(products []models.Product, submit SubmitFunc) *Wizard {
	return &Wizard{
		step:       StepIntro,
		products:   products,
		submit:     submit,
		categories: DefaultCategories(),
	}
}

// NewForProduct starts a wizard whose system name is pre-supplied from a
// product page; the intro gate always passes.
func NewForProduct(products []models.Product, productName string, submit SubmitFunc) *Wizard {
	w := New(products, submit)
	w.SystemName = productName
	w.prefilled = true
	return w
}

func (w *Wizard) Step() Step { return w.step }

// Categories returns the form slots in order.
func (w *Wizard) Categories() []Category {
	return append([]Category(nil), w.categories...)
}

// SelectProduct fills the system name from the catalog dropdown.
func (w *Wizard) SelectProduct(p models.Product) {
	w.SystemName = p.Name
}

// FilteredProducts narrows the selectable products by the current system
// name, matching name, manufacturer or category.
func (w *Wizard) FilteredProducts() []models.Product {
	term := strings.ToLower(strings.TrimSpace(w.SystemName))
	if term == "" {
		return append([]models.Product(nil), w.products...)
	}

	var out []models.Product
	for _, p := range w.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Manufacturer), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

func (w *Wizard) CanProceedToReview() bool {
	if w.prefilled {
		return true
	}
	return strings.TrimSpace(w.SystemName) != ""
}

// CanSubmitReview requires every category rated or marked not applicable,
// and a non-empty experience level.
func (w *Wizard) CanSubmitReview() bool {
	for _, cat := range w.categories {
		if cat.Rating <= 0 && !cat.NotApplicable {
			return false
		}
	}
	return strings.TrimSpace(w.CUASExperience) != ""
}

// Start moves intro -> review. A blocked transition is a no-op.
func (w *Wizard) Start() error {
	if w.step != StepIntro || !w.CanProceedToReview() {
		return ErrIncomplete
	}
	w.step = StepReview
	return nil
}

// SetRating records a 1-5 rating and clears the category's N/A flag.
// Out-of-range ratings and unknown categories are ignored.
func (w *Wizard) SetRating(categoryID string, rating int) {
	if rating < 1 || rating > 5 {
		return
	}
	for i := range w.categories {
		if w.categories[i].ID == categoryID {
			w.categories[i].Rating = rating
			w.categories[i].NotApplicable = false
			return
		}
	}
}

// ToggleNotApplicable flips the N/A flag; turning it on clears the rating.
func (w *Wizard) ToggleNotApplicable(categoryID string) {
	for i := range w.categories {
		if w.categories[i].ID == categoryID {
			w.categories[i].NotApplicable = !w.categories[i].NotApplicable
			if w.categories[i].NotApplicable {
				w.categories[i].Rating = 0
			}
			return
		}
	}
}

func (w *Wizard) SetComment(categoryID, comment string) {
	for i := range w.categories {
		if w.categories[i].ID == categoryID {
			w.categories[i].Comment = comment
			return
		}
	}
}

// Submit validates the review step, hands the payload to the submit
// callback and moves to complete. Validation failure and callback errors
// both leave the wizard on the review step.
func (w *Wizard) Submit() (*Submission, error) {
	if w.step != StepReview || !w.CanSubmitReview() {
		return nil, ErrIncomplete
	}

	sub := Submission{
		SystemName:         strings.TrimSpace(w.SystemName),
		CUASExperience:     strings.TrimSpace(w.CUASExperience),
		PreviousSystems:    strings.TrimSpace(w.PreviousSystems),
		Categories:         append([]Category(nil), w.categories...),
		AdditionalFeedback: strings.TrimSpace(w.AdditionalFeedback),
	}

	if w.submit != nil {
		if err := w.submit(sub); err != nil {
			return nil, err
		}
	}

	w.step = StepComplete
	return &sub, nil
}
