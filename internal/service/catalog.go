package service

import (
	"errors"
	"fmt"

	"github.com/xolan/sip/internal/catalog"
)

// ErrUnknownDrink is returned when a name matches no catalog drink
var ErrUnknownDrink = errors.New("unknown drink")

// CatalogService serves the drink catalog loaded at startup.
type CatalogService struct {
	catalog *catalog.Catalog
	err     error
}

// NewCatalogService loads the catalog at path, or the built-in one.
func NewCatalogService(path string) *CatalogService {
	c, err := catalog.Load(path)
	return &CatalogService{catalog: c, err: err}
}

// Get returns the catalog, or the *catalog.LoadError that kept it from loading.
func (s *CatalogService) Get() (*catalog.Catalog, error) {
	return s.catalog, s.err
}

// Find looks up a drink by name, ignoring case.
func (s *CatalogService) Find(name string) (catalog.Drink, error) {
	if s.err != nil {
		return catalog.Drink{}, s.err
	}
	d, ok := s.catalog.Find(name)
	if !ok {
		return catalog.Drink{}, fmt.Errorf("%w %q", ErrUnknownDrink, name)
	}
	return d, nil
}
