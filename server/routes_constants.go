package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Site pages
	RouteIndex      = "/"
	RouteAbout      = "/about"
	RouteServices   = "/services"
	RouteBlog       = "/blog"
	RouteBlogPost   = "/blog/{slug}"
	RouteContact    = "/contact"
	RouteNewsletter = "/newsletter"
	RouteStore      = "/store"
	RoutePrivacy    = "/privacy"
	RouteTerms      = "/terms"

	// Portal (guarded demo area)
	RoutePortal       = "/portal"
	RoutePortalLogin  = "/portal/login"
	RoutePortalLogout = "/portal/logout"

	// Cart API (called by the store page)
	RouteAPICart             = "/api/cart"
	RouteAPICartItems        = "/api/cart/items"
	RouteAPICartItemQuantity = "/api/cart/items/{id}/quantity"
	RouteAPICartItem         = "/api/cart/items/{id}"
	RouteAPICartCheckout     = "/api/cart/checkout"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)
