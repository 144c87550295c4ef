package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// cartResponse is the JSON shape the store page works with.
type cartResponse struct {
	Items      []store.LineItem `json:"items"`
	TotalCents int64            `json:"total_cents"`
	Total      string           `json:"total"`
	Count      int              `json:"count"`
}

func newCartResponse(cart store.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []store.LineItem{}
	}
	return cartResponse{
		Items:      items,
		TotalCents: cart.TotalCents(),
		Total:      store.FormatCents(cart.TotalCents()),
		Count:      cart.Count(),
	}
}

// StorePageHandler renders the store with an optional category filter.
func (s *Server) StorePageHandler() http.HandlerFunc {
	tmpl, err := ParsePage("store.html")
	if err != nil {
		panic("Failed to parse store template: " + err.Error())
	}

	type storePage struct {
		basePage
		Products       []store.Product
		Categories     []string
		ActiveCategory string
		CartCount      int
	}

	return func(w http.ResponseWriter, r *http.Request) {
		active := r.URL.Query().Get("category")

		products := s.catalog.Products()
		if active != "" {
			filtered := products[:0]
			for _, p := range products {
				if p.Category == active {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		var count int
		if cookie, err := r.Cookie(cartCookieName); err == nil {
			if cart, err := s.carts.Get(cookie.Value); err == nil {
				count = cart.Count()
			}
		}

		s.renderPage(w, tmpl, storePage{
			basePage:       s.basePage("Store"),
			Products:       products,
			Categories:     s.catalog.Categories(),
			ActiveCategory: active,
			CartCount:      count,
		})
	}
}

// CartGetHandler returns the visitor's cart, empty if they have none yet.
func (s *Server) CartGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart := s.loadCart(w, r)
		writeJSON(w, http.StatusOK, newCartResponse(cart))
	}
}

// CartAddItemHandler puts one unit of a product in the cart.
func (s *Server) CartAddItemHandler() http.HandlerFunc {
	type addRequest struct {
		ProductID string `json:"product_id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
			writeJSONError(w, http.StatusBadRequest, "product_id is required")
			return
		}

		product, ok := s.catalog.Get(req.ProductID)
		if !ok {
			writeJSONError(w, http.StatusNotFound, "unknown product")
			return
		}

		cart := s.loadCart(w, r)
		cart.AddItem(product)
		if err := s.saveCart(cart); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to save cart")
			return
		}

		writeJSON(w, http.StatusOK, newCartResponse(cart))
	}
}

// CartChangeQuantityHandler applies a +/- delta to one cart line. The ledger
// clamps at zero and drops the line; unknown products are a no-op, not an
// error.
func (s *Server) CartChangeQuantityHandler() http.HandlerFunc {
	type quantityRequest struct {
		Delta int `json:"delta"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req quantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "delta is required")
			return
		}

		cart := s.loadCart(w, r)
		cart.ChangeQuantity(r.PathValue("id"), req.Delta)
		if err := s.saveCart(cart); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to save cart")
			return
		}

		writeJSON(w, http.StatusOK, newCartResponse(cart))
	}
}

// CartRemoveItemHandler drops a cart line unconditionally.
func (s *Server) CartRemoveItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart := s.loadCart(w, r)
		cart.RemoveItem(r.PathValue("id"))
		if err := s.saveCart(cart); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to save cart")
			return
		}

		writeJSON(w, http.StatusOK, newCartResponse(cart))
	}
}

// CartCheckoutHandler resolves the cart to its hosted payment links. This is
// the hand-off boundary: the cart is left untouched and no confirmation ever
// comes back.
func (s *Server) CartCheckoutHandler() http.HandlerFunc {
	type checkoutResponse struct {
		Links []store.CheckoutLink `json:"links"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		cart := s.loadCart(w, r)

		links := store.CheckoutLinks(cart, s.catalog)
		if links == nil {
			links = []store.CheckoutLink{}
		}

		writeJSON(w, http.StatusOK, checkoutResponse{Links: links})
	}
}

// loadCart fetches the visitor's cart, minting an empty one on first touch.
func (s *Server) loadCart(w http.ResponseWriter, r *http.Request) store.Cart {
	id := s.cartID(w, r)

	cart, err := s.carts.Get(id)
	if err != nil {
		if !errors.Is(err, store.ErrCartNotFound) {
			log.Err(err).Str("cart_id", id).Msg("Failed to load cart")
		}
		return store.NewCart(id, time.Now())
	}
	return cart
}

func (s *Server) saveCart(cart store.Cart) error {
	return s.carts.Upsert(cart.ID, cart)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
