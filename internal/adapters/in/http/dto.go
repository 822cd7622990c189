package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
)

const dateLayout = "2006-01-02"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	OrderNumber string `json:"order_number"`
}

// UpdateOrderRequest is the body for PUT /orders/:id. Omitted fields are
// left unchanged.
type UpdateOrderRequest struct {
	OrderNumber *string `json:"order_number,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AddOrderItemRequest is the body for POST /orders/:id/items.
type AddOrderItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ChangeItemQuantityRequest is the body for PUT /orders/:id/items/:itemId.
type ChangeItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ProductRequest is the body for POST /products and PUT /products/:id.
type ProductRequest struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
}

// OrderSummaryResponse is one row of the order list and the shape returned
// by order mutations.
type OrderSummaryResponse struct {
	ID          uint64 `json:"id"`
	OrderNumber string `json:"order_number"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	NumProducts int    `json:"num_products"`
	FinalPrice  string `json:"final_price"`
}

// OrderDetailsResponse is the full order view with line items.
type OrderDetailsResponse struct {
	OrderSummaryResponse
	Items []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line. ProductName is resolved at read
// time on the detail endpoint and omitted on mutation responses.
type OrderItemResponse struct {
	ID          uint64 `json:"id"`
	ProductID   uint64 `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
}

func orderToSummary(o *order.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:          o.ID(),
		OrderNumber: o.Number(),
		Date:        o.Date().Format(dateLayout),
		Status:      o.Status().String(),
		NumProducts: o.Totals().NumProducts,
		FinalPrice:  o.Totals().FinalPrice.String(),
	}
}

func orderToDetails(o *order.Order) OrderDetailsResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
			TotalPrice: item.TotalPrice().String(),
		})
	}

	return OrderDetailsResponse{
		OrderSummaryResponse: orderToSummary(o),
		Items:                items,
	}
}

func orderQueryToSummary(row queries.OrderSummaryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		Date:        row.Date.Format(dateLayout),
		Status:      row.Status.String(),
		NumProducts: row.NumProducts,
		FinalPrice:  row.FinalPrice.String(),
	}
}

func orderQueryToDetails(row queries.OrderDetailsResponse) OrderDetailsResponse {
	items := make([]OrderItemResponse, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			TotalPrice:  item.TotalPrice.String(),
		})
	}

	return OrderDetailsResponse{
		OrderSummaryResponse: OrderSummaryResponse{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			Date:        row.Date.Format(dateLayout),
			Status:      row.Status.String(),
			NumProducts: row.NumProducts,
			FinalPrice:  row.FinalPrice.String(),
		},
		Items: items,
	}
}

func productToResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().String(),
	}
}

func productQueryToResponse(row queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:        row.ID,
		Name:      row.Name,
		UnitPrice: row.UnitPrice.String(),
	}
}
