package models

type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Manufacturer   string   `json:"manufacturer"`
	Category       string   `json:"category"`
	Price          string   `json:"price"`
	Image          string   `json:"image,omitempty"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
}
