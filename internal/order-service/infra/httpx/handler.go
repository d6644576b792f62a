package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

// Handler exposes the order operations over HTTP. All request validation
// lives here; the domain entities only compute.
type Handler struct {
	orderService ports.OrderService
}

func NewHandler(os ports.OrderService) *Handler {
	return &Handler{orderService: os}
}

// CreateOrder receives the request, persists the order, and triggers the
// best-effort stock notification. Notification outcomes are never visible
// in the response.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.CustomerID == "" || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer_id and items are required")
		return
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.Price <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_item", "product_id, quantity, and price must be valid")
			return
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
	}

	requestID := middleware.GetReqID(r.Context())
	slog.InfoContext(r.Context(), "creating order", "request_id", requestID, "customer_id", req.CustomerID)

	order, err := h.orderService.CreateOrder(r.Context(), req.CustomerID, items)
	if err != nil {
		slog.ErrorContext(r.Context(), "order creation failed", "request_id", requestID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "could not create order")
		return
	}

	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

// GetOrderByID retrieves a single order by its ID.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, entity.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order_not_found", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "could not fetch order")
		return
	}

	writeJSON(w, http.StatusOK, mapOrderToResponse(order))
}

func mapOrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, it := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount(),
		Items:       items,
		CreatedAt:   order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
