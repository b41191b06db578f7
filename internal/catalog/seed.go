package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"cuashub/pkg/models"
)

//go:embed data/products.json
var embeddedSeed []byte

// LoadSeed reads the bundled dataset, or the file at path when one is given
// (CUASHUB_SEED_PATH override).
func LoadSeed(path string) (models.SeedFile, error) {
	raw := embeddedSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return models.SeedFile{}, fmt.Errorf("read seed %s: %w", path, err)
		}
		raw = b
	}

	var seed models.SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return models.SeedFile{}, fmt.Errorf("decode seed data: %w", err)
	}
	return seed, nil
}
