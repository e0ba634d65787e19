package http

import (
	"time"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/queries"
)

// Every response carries a boolean Status field: true on success, false
// on failure. Clients branch on it without inspecting transport codes.

// ErrorResponse is the envelope for any failed request.
type ErrorResponse struct {
	Status bool   `json:"status"`
	Error  string `json:"error"`
}

// StatusResponse is the envelope for mutations with no payload.
type StatusResponse struct {
	Status bool `json:"status"`
}

// AddItemRequest is the body of POST /api/v1/cart/items.
type AddItemRequest struct {
	OfferID  string `json:"offer_id"`
	Quantity int    `json:"quantity"`
}

// UpdateItemRequest is the body of PATCH /api/v1/cart/items/:id.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItem is one cart line in responses.
type CartItem struct {
	ID        string `json:"id"`
	OfferID   string `json:"offer_id"`
	OfferName string `json:"offer_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

// CartResponse is the body of GET /api/v1/cart.
type CartResponse struct {
	Status bool       `json:"status"`
	Items  []CartItem `json:"items"`
	Total  int64      `json:"total"`
}

// CartItemResponse is the body of cart item reads and mutations.
type CartItemResponse struct {
	Status bool     `json:"status"`
	Item   CartItem `json:"item"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderID   string `json:"order_id"`
	ContactID string `json:"contact_id"`
}

// Order is one placed order in responses.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"state"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// OrdersResponse is the body of GET /api/v1/orders.
type OrdersResponse struct {
	Status bool    `json:"status"`
	Orders []Order `json:"orders"`
}

// SellerOrder is one incoming order in partner responses.
type SellerOrder struct {
	ID        string    `json:"id"`
	Status    string    `json:"state"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	House     string    `json:"house"`
	Phone     string    `json:"phone"`
}

// SellerOrdersResponse is the body of GET /api/v1/partner/orders.
type SellerOrdersResponse struct {
	Status bool          `json:"status"`
	Orders []SellerOrder `json:"orders"`
}

// Offer is one catalog offer in search responses.
type Offer struct {
	ID       string `json:"id"`
	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// OffersResponse is the body of GET /api/v1/offers.
type OffersResponse struct {
	Status bool    `json:"status"`
	Offers []Offer `json:"offers"`
}

// PriceListItem is one offer row of a partner price list upload.
type PriceListItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// ImportPriceListRequest is the body of POST /api/v1/partner/pricelist.
type ImportPriceListRequest struct {
	ShopName string          `json:"shop_name"`
	Offers   []PriceListItem `json:"offers"`
}

// ShopStateRequest is the body of POST /api/v1/partner/state.
type ShopStateRequest struct {
	AcceptsOrders bool `json:"accepts_orders"`
}

// ContactRequest is the body of contact creation and update.
type ContactRequest struct {
	City   string `json:"city"`
	Street string `json:"street"`
	House  string `json:"house"`
	Phone  string `json:"phone"`
}

// Contact is one saved contact in responses.
type Contact struct {
	ID     string `json:"id"`
	City   string `json:"city"`
	Street string `json:"street"`
	House  string `json:"house"`
	Phone  string `json:"phone"`
}

// ContactsResponse is the body of GET /api/v1/contacts.
type ContactsResponse struct {
	Status   bool      `json:"status"`
	Contacts []Contact `json:"contacts"`
}

// CreatedResponse is the body of creations that return the new id.
type CreatedResponse struct {
	Status bool   `json:"status"`
	ID     string `json:"id"`
}

func toCartItem(item queries.CartItemResponse) CartItem {
	return CartItem{
		ID:        item.ItemID.String(),
		OfferID:   item.OfferID.String(),
		OfferName: item.OfferName,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
	}
}
