package store

import "fmt"

// Product is a single store listing. Prices are integer cents so cart math
// stays exact. PaymentLink is the pre-provisioned hosted checkout page for
// the product; payment itself is entirely external.
type Product struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	PriceCents  int64  `yaml:"price_cents" json:"price_cents"`
	Category    string `yaml:"category" json:"category"`
	PaymentLink string `yaml:"payment_link" json:"-"`
	Badge       string `yaml:"badge,omitempty" json:"badge,omitempty"`
}

// Price renders the product price for display.
func (p Product) Price() string {
	return FormatCents(p.PriceCents)
}

// FormatCents renders a cent amount as dollars, dropping the decimals for
// whole-dollar amounts the way the store pages do.
func FormatCents(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
