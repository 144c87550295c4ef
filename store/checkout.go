package store

// CheckoutLink is one hosted payment page to hand the visitor to. Checkout
// is a hand-off only: nothing here collects payment, confirms it, or clears
// the cart, and there is no callback channel from the payment provider.
type CheckoutLink struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	URL       string `json:"url"`
}

// CheckoutLinks resolves every cart line to its product's payment link, one
// link per line. Lines whose product has gone from the catalog or has no
// link are skipped.
func CheckoutLinks(cart Cart, catalog *Catalog) []CheckoutLink {
	var links []CheckoutLink
	for _, li := range cart.Items {
		product, ok := catalog.Get(li.ProductID)
		if !ok || product.PaymentLink == "" {
			continue
		}
		links = append(links, CheckoutLink{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			URL:       product.PaymentLink,
		})
	}
	return links
}
