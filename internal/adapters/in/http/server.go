// Package http exposes the marketplace API over echo. Request and
// response schemas are declared explicitly in this package; every
// response carries the status envelope.
package http

import (
	"net/http"

	"github.com/BarinovG/EShop-API/internal/core/application/usecases/commands"
	"github.com/BarinovG/EShop-API/internal/core/application/usecases/queries"
	"github.com/BarinovG/EShop-API/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// HeaderUserID identifies the authenticated user. Authentication itself
// happens upstream; this service trusts the header.
const HeaderUserID = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addItemHandler         commands.AddItemCommandHandler
	updateItemHandler      commands.UpdateItemQuantityCommandHandler
	removeItemHandler      commands.RemoveItemCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	importPriceListHandler commands.ImportPriceListCommandHandler
	changeShopStateHandler commands.ChangeShopStateCommandHandler
	addContactHandler      commands.AddContactCommandHandler
	updateContactHandler   commands.UpdateContactCommandHandler
	deleteContactHandler   commands.DeleteContactCommandHandler

	// Query handlers
	getCartHandler      queries.GetCartQueryHandler
	getCartItemHandler  queries.GetCartItemQueryHandler
	getBuyerOrders      queries.GetBuyerOrdersQueryHandler
	getSellerOrders     queries.GetSellerOrdersQueryHandler
	searchOffersHandler queries.SearchOffersQueryHandler
	getContactsHandler  queries.GetContactsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemQuantityCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	importPriceListHandler commands.ImportPriceListCommandHandler,
	changeShopStateHandler commands.ChangeShopStateCommandHandler,
	addContactHandler commands.AddContactCommandHandler,
	updateContactHandler commands.UpdateContactCommandHandler,
	deleteContactHandler commands.DeleteContactCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getCartItemHandler queries.GetCartItemQueryHandler,
	getBuyerOrders queries.GetBuyerOrdersQueryHandler,
	getSellerOrders queries.GetSellerOrdersQueryHandler,
	searchOffersHandler queries.SearchOffersQueryHandler,
	getContactsHandler queries.GetContactsQueryHandler,
) *Server {
	return &Server{
		addItemHandler:         addItemHandler,
		updateItemHandler:      updateItemHandler,
		removeItemHandler:      removeItemHandler,
		placeOrderHandler:      placeOrderHandler,
		importPriceListHandler: importPriceListHandler,
		changeShopStateHandler: changeShopStateHandler,
		addContactHandler:      addContactHandler,
		updateContactHandler:   updateContactHandler,
		deleteContactHandler:   deleteContactHandler,
		getCartHandler:         getCartHandler,
		getCartItemHandler:     getCartItemHandler,
		getBuyerOrders:         getBuyerOrders,
		getSellerOrders:        getSellerOrders,
		searchOffersHandler:    searchOffersHandler,
		getContactsHandler:     getContactsHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddItem)
	api.GET("/cart/items/:id", s.GetCartItem)
	api.PATCH("/cart/items/:id", s.UpdateItem)
	api.DELETE("/cart/items/:id", s.RemoveItem)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.PlaceOrder)

	api.GET("/offers", s.SearchOffers)

	api.GET("/contacts", s.GetContacts)
	api.POST("/contacts", s.AddContact)
	api.PUT("/contacts/:id", s.UpdateContact)
	api.DELETE("/contacts/:id", s.DeleteContact)

	api.GET("/partner/orders", s.GetPartnerOrders)
	api.POST("/partner/pricelist", s.ImportPriceList)
	api.POST("/partner/state", s.ChangeShopState)

	e.GET("/health", s.Health)
}

// userID resolves the caller's identity from the X-User-ID header.
func userID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized)
	}

	return id, nil
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Status: false,
		Error:  "user is not identified",
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// GetCart handles GET /api/v1/cart - returns the buyer's open cart.
func (s *Server) GetCart(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCartQuery(buyerID)
	if err != nil {
		return fail(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]CartItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = toCartItem(item)
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		Status: true,
		Items:  items,
		Total:  cart.Total,
	})
}

// AddItem handles POST /api/v1/cart/items - adds an offer to the cart.
func (s *Server) AddItem(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	offerID, err := kernel.UUIDFromString(req.OfferID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(buyerID, offerID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CartItemResponse{
		Status: true,
		Item: CartItem{
			ID:       result.ItemID.String(),
			OfferID:  result.OfferID.String(),
			Quantity: result.Quantity,
			Subtotal: result.Subtotal,
		},
	})
}

// GetCartItem handles GET /api/v1/cart/items/:id.
func (s *Server) GetCartItem(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetCartItemQuery(buyerID, itemID)
	if err != nil {
		return fail(ctx, err)
	}

	item, err := s.getCartItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	if item == nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Status: false,
			Error:  "item is not in the cart",
		})
	}

	return ctx.JSON(http.StatusOK, CartItemResponse{
		Status: true,
		Item:   toCartItem(*item),
	})
}

// UpdateItem handles PATCH /api/v1/cart/items/:id - changes quantity.
func (s *Server) UpdateItem(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req UpdateItemRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(buyerID, itemID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.updateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartItemResponse{
		Status: true,
		Item: CartItem{
			ID:       result.ItemID.String(),
			OfferID:  result.OfferID.String(),
			Quantity: result.Quantity,
			Subtotal: result.Subtotal,
		},
	})
}

// RemoveItem handles DELETE /api/v1/cart/items/:id.
func (s *Server) RemoveItem(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveItemCommand(buyerID, itemID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// GetOrders handles GET /api/v1/orders - the buyer's placed orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:        o.OrderID.String(),
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{Status: true, Orders: response})
}

// PlaceOrder handles POST /api/v1/orders - turns the cart into an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return fail(ctx, err)
	}

	contactID, err := kernel.UUIDFromString(req.ContactID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(buyerID, orderID, contactID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// SearchOffers handles GET /api/v1/offers?search=term.
func (s *Server) SearchOffers(ctx echo.Context) error {
	query := queries.NewSearchOffersQuery(ctx.QueryParam("search"))

	offers, err := s.searchOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Offer, len(offers))
	for i, o := range offers {
		response[i] = Offer{
			ID:       o.OfferID.String(),
			ShopID:   o.ShopID.String(),
			ShopName: o.ShopName,
			Name:     o.Name,
			Price:    o.Price,
			Stock:    o.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, OffersResponse{Status: true, Offers: response})
}

// GetContacts handles GET /api/v1/contacts.
func (s *Server) GetContacts(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetContactsQuery(buyerID)
	if err != nil {
		return fail(ctx, err)
	}

	contacts, err := s.getContactsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Contact, len(contacts))
	for i, c := range contacts {
		response[i] = Contact{
			ID:     c.ContactID.String(),
			City:   c.City,
			Street: c.Street,
			House:  c.House,
			Phone:  c.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, ContactsResponse{Status: true, Contacts: response})
}

// AddContact handles POST /api/v1/contacts.
func (s *Server) AddContact(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req ContactRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddContactCommand(buyerID, req.City, req.Street, req.House, req.Phone)
	if err != nil {
		return fail(ctx, err)
	}

	id, err := s.addContactHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{Status: true, ID: id.String()})
}

// UpdateContact handles PUT /api/v1/contacts/:id.
func (s *Server) UpdateContact(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	contactID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req ContactRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateContactCommand(
		buyerID, contactID, req.City, req.Street, req.House, req.Phone)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// DeleteContact handles DELETE /api/v1/contacts/:id.
func (s *Server) DeleteContact(ctx echo.Context) error {
	buyerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	contactID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteContactCommand(buyerID, contactID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// GetPartnerOrders handles GET /api/v1/partner/orders - the seller's
// incoming orders.
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	sellerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetSellerOrdersQuery(sellerID)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.getSellerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]SellerOrder, len(orders))
	for i, o := range orders {
		response[i] = SellerOrder{
			ID:        o.OrderID.String(),
			Status:    o.Status,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			City:      o.City,
			Street:    o.Street,
			House:     o.House,
			Phone:     o.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, SellerOrdersResponse{Status: true, Orders: response})
}

// ImportPriceList handles POST /api/v1/partner/pricelist.
func (s *Server) ImportPriceList(ctx echo.Context) error {
	sellerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req ImportPriceListRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	entries := make([]commands.PriceListEntry, 0, len(req.Offers))
	for _, row := range req.Offers {
		offerID, idErr := kernel.UUIDFromString(row.ID)
		if idErr != nil {
			return fail(ctx, idErr)
		}

		entries = append(entries, commands.PriceListEntry{
			OfferID: offerID,
			Name:    row.Name,
			Price:   row.Price,
			Stock:   row.Stock,
		})
	}

	cmd, err := commands.NewImportPriceListCommand(sellerID, req.ShopName, entries)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.importPriceListHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}

// ChangeShopState handles POST /api/v1/partner/state.
func (s *Server) ChangeShopState(ctx echo.Context) error {
	sellerID, err := userID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req ShopStateRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeShopStateCommand(sellerID, req.AcceptsOrders)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.changeShopStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: true})
}
