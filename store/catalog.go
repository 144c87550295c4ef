package store

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the fixed product listing compiled into the binary. There is no
// inventory system behind it.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog parses the embedded catalog.
func NewCatalog() (*Catalog, error) {
	var payload struct {
		Products []Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(catalogYAML, &payload); err != nil {
		return nil, errors.Wrap(err, "[NewCatalog] failed to parse catalog")
	}
	if len(payload.Products) == 0 {
		return nil, errors.New("[NewCatalog] catalog is empty")
	}

	byID := make(map[string]Product, len(payload.Products))
	for _, p := range payload.Products {
		if p.ID == "" {
			return nil, errors.Errorf("[NewCatalog] product %q has no id", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, errors.Errorf("[NewCatalog] duplicate product id %q", p.ID)
		}
		if p.PriceCents < 0 {
			return nil, errors.Errorf("[NewCatalog] product %q has a negative price", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: payload.Products, byID: byID}, nil
}

// Products returns all listings in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by ID.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Categories returns the distinct categories in first-seen order, for the
// store page filter bar.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
