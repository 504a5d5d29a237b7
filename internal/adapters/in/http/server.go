package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API of the shipping service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	getActiveMethodsHandler    queries.GetActiveMethodsQueryHandler
	getAvailableMethodsHandler queries.GetAvailableMethodsQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getActiveMethodsHandler queries.GetActiveMethodsQueryHandler,
	getAvailableMethodsHandler queries.GetAvailableMethodsQueryHandler,
) *Server {
	return &Server{
		getActiveMethodsHandler:    getActiveMethodsHandler,
		getAvailableMethodsHandler: getAvailableMethodsHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/shipment-methods", s.GetShipmentMethods)
	e.POST("/api/v1/quotes/available-methods", s.GetAvailableMethods)
}

// Error is the JSON error envelope of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShipmentMethod is the JSON representation of an offered shipping method.
type ShipmentMethod struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CarrierName string `json:"carrierName"`
	TaxRate     string `json:"taxRate"`
}

// GetShipmentMethods handles GET /api/v1/shipment-methods - retrieves all
// active methods of active carriers.
func (s *Server) GetShipmentMethods(ctx echo.Context) error {
	query := queries.NewGetActiveMethodsQuery()

	methods, err := s.getActiveMethodsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment methods",
		})
	}

	response := make([]ShipmentMethod, len(methods))
	for i, m := range methods {
		response[i] = ShipmentMethod{
			ID:          m.ID,
			Name:        m.Name,
			CarrierName: m.CarrierName,
			TaxRate:     m.TaxRate.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AvailableMethodsRequest carries the quote whose shipping offers are computed.
// Items without a destination group under the empty address.
type AvailableMethodsRequest struct {
	StoreID      int64  `json:"storeId"`
	CurrencyCode string `json:"currencyCode"`
	PriceMode    string `json:"priceMode"`
	Items        []struct {
		ID       int64  `json:"id"`
		SKU      string `json:"sku"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Shipment struct {
			RequestedDeliveryDate *string  `json:"requestedDeliveryDate"`
			Address               *Address `json:"address"`
		} `json:"shipment"`
	} `json:"items"`
}

// Address is the JSON representation of a shipping destination.
type Address struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	Region      string `json:"region"`
	ZipCode     string `json:"zipCode"`
	CountryCode string `json:"countryCode"`
}

// AvailableMethodsGroup is one shipment group's offer.
type AvailableMethodsGroup struct {
	GroupHash string            `json:"groupHash"`
	ItemIDs   []int64           `json:"itemIds"`
	Methods   []AvailableMethod `json:"methods"`
}

// AvailableMethod is the JSON representation of one offered method with its
// resolved price.
type AvailableMethod struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	CarrierName        string `json:"carrierName"`
	StoreCurrencyPrice int64  `json:"storeCurrencyPrice"`
	CurrencyCode       string `json:"currencyCode"`
	DeliveryTimeNanos  *int64 `json:"deliveryTimeNanos,omitempty"`
	TaxRate            string `json:"taxRate"`
}

// GetAvailableMethods handles POST /api/v1/quotes/available-methods -
// computes the shipping methods offered per shipment group of a quote.
func (s *Server) GetAvailableMethods(ctx echo.Context) error {
	var request AvailableMethodsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	quote, err := toQuote(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote data: " + err.Error(),
		})
	}

	query, err := queries.NewGetAvailableMethodsQuery(quote)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote data: " + err.Error(),
		})
	}

	groups, err := s.getAvailableMethodsHandler.Handle(ctx.Request().Context(), query)
	if len(groups) == 0 && err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute available methods",
		})
	}

	// Degraded groups come back with an empty method list; the customer can
	// still check out the groups that resolved.
	response := make([]AvailableMethodsGroup, len(groups))
	for i, group := range groups {
		methods := make([]AvailableMethod, len(group.Methods))
		for j, m := range group.Methods {
			var deliveryTime *int64
			if m.DeliveryTime != nil {
				nanos := m.DeliveryTime.Nanoseconds()
				deliveryTime = &nanos
			}

			methods[j] = AvailableMethod{
				ID:                 m.MethodID,
				Name:               m.Name,
				CarrierName:        m.CarrierName,
				StoreCurrencyPrice: m.StoreCurrencyPrice,
				CurrencyCode:       m.CurrencyCode,
				DeliveryTimeNanos:  deliveryTime,
				TaxRate:            m.TaxRate.String(),
			}
		}

		response[i] = AvailableMethodsGroup{
			GroupHash: group.GroupHash,
			ItemIDs:   group.ItemIDs,
			Methods:   methods,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// toQuote builds the domain quote from the request, attaching a shipment
// draft to every item so the grouper can derive group hashes.
func toQuote(request AvailableMethodsRequest) (*order.Quote, error) {
	priceMode, err := shipment.PriceModeFromString(request.PriceMode)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(request.Items))
	for _, requestItem := range request.Items {
		item, itemErr := shipment.NewItem(requestItem.ID, requestItem.SKU, requestItem.Name, requestItem.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		var address *shipment.Address
		if requestItem.Shipment.Address != nil {
			addr, addrErr := shipment.NewAddress(
				requestItem.Shipment.Address.Line1,
				requestItem.Shipment.Address.Line2,
				requestItem.Shipment.Address.City,
				requestItem.Shipment.Address.Region,
				requestItem.Shipment.Address.ZipCode,
				requestItem.Shipment.Address.CountryCode,
			)
			if addrErr != nil {
				return nil, addrErr
			}
			address = &addr
		}

		item.SetShipment(shipment.NewShipment(nil, address, "", requestItem.Shipment.RequestedDeliveryDate))
		items = append(items, item)
	}

	return order.NewQuote(request.StoreID, request.CurrencyCode, priceMode, items)
}
