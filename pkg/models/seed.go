package models

// SeedFile is the bundled dataset format: an ordered product list plus
// reviews keyed by product id. Keys are strings in the JSON document and are
// converted to int64 product ids at load time.
type SeedFile struct {
	Products []Product           `json:"products"`
	Reviews  map[string][]Review `json:"reviews"`
}
