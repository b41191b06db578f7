package catalog

import (
	"strconv"
	"sync"

	"cuashub/pkg/models"
)

// Store is the in-memory product catalog: the product list plus the mapping
// from product id to its reviews. It is seeded once at startup and mutated
// only by AddProduct/AddReview. Concurrent HTTP handlers read and write, so
// access is guarded by a RWMutex and accessors return copies.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	reviews  map[int64][]models.Review
}

func NewStore(seed models.SeedFile) *Store {
	s := &Store{
		products: append([]models.Product(nil), seed.Products...),
		reviews:  make(map[int64][]models.Review, len(seed.Reviews)),
	}
	// seed review keys arrive as strings; convert to product ids
	for key, list := range seed.Reviews {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		s.reviews[id] = append([]models.Review(nil), list...)
	}
	return s
}

// Product returns the product with the given id, or false if unknown.
func (s *Store) Product(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products returns the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// ReviewsFor returns a product's reviews, most recent first. Unknown product
// ids yield an empty slice, never an error.
func (s *Store) ReviewsFor(productID int64) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Review(nil), s.reviews[productID]...)
}

// AllReviews returns a snapshot of the full product-to-reviews mapping.
func (s *Store) AllReviews() map[int64][]models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int64][]models.Review, len(s.reviews))
	for id, list := range s.reviews {
		out[id] = append([]models.Review(nil), list...)
	}
	return out
}

// AddReview prepends a review to the product's list, creating the list if
// this is the product's first review. Rating-range validation is the
// submitting layer's job, not the store's.
func (s *Store) AddReview(productID int64, review models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[productID] = append([]models.Review{review}, s.reviews[productID]...)
}

// AddProduct assigns the next id (max existing + 1, starting at 1) and fills
// missing fields with zero values. The stored product is returned.
func (s *Store) AddProduct(partial models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	p := partial
	p.ID = maxID + 1
	if p.Specifications == nil {
		p.Specifications = []string{}
	}
	s.products = append(s.products, p)
	return p
}

func (s *Store) TotalProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) TotalReviews() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, list := range s.reviews {
		total += len(list)
	}
	return total
}
