package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shefazol/ordering/internal/core/domain"
	"github.com/shefazol/ordering/internal/core/service"
)

// HTTPHandler is the form surface in front of the order service: cart
// mutation, submission, print and settings. Presentation only; all rules
// live in the service.
type HTTPHandler struct {
	orderService *service.OrderService
}

func NewHTTPHandler(orderService *service.OrderService) *HTTPHandler {
	return &HTTPHandler{orderService: orderService}
}

// Register attaches all routes to the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /api/cart", h.CartSummary)
	mux.HandleFunc("POST /api/cart/items", h.AddItem)
	mux.HandleFunc("POST /api/cart/items/{id}/increase", h.IncreaseItem)
	mux.HandleFunc("POST /api/cart/items/{id}/decrease", h.DecreaseItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("POST /api/orders", h.SubmitOrder)
	mux.HandleFunc("POST /api/orders/new", h.NewOrder)
	mux.HandleFunc("POST /api/orders/print", h.PrintOrder)
	mux.HandleFunc("GET /api/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/settings", h.SaveSettings)
}

type addItemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type cartResponse struct {
	Items   []domain.LineItem `json:"items"`
	Message string            `json:"message,omitempty"`
}

type submitOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
	CustomerNumber  string `json:"customer_number"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryType    string `json:"delivery_type"`
	Notes           string `json:"notes"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) CartSummary(w http.ResponseWriter, r *http.Request) {
	items := h.orderService.Summary()
	resp := cartResponse{Items: items}
	if len(items) == 0 {
		resp.Message = "לא נבחרו מוצרים"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	item, err := h.orderService.AddItem(req.ProductName, req.Quantity)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *HTTPHandler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	h.orderService.IncreaseItem(r.PathValue("id"))
	h.CartSummary(w, r)
}

func (h *HTTPHandler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	h.orderService.DecreaseItem(r.PathValue("id"))
	h.CartSummary(w, r)
}

func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.orderService.RemoveItem(r.PathValue("id"))
	h.CartSummary(w, r)
}

func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	deliveryType := domain.DeliveryType(req.DeliveryType)
	if deliveryType != domain.DeliveryTypeDelivery && deliveryType != domain.DeliveryTypePickup {
		deliveryType = domain.DeliveryTypeDelivery
	}

	order, err := h.orderService.Submit(r.Context(), service.CustomerFields{
		Name:           req.CustomerName,
		Phone:          req.CustomerPhone,
		Email:          req.CustomerEmail,
		Address:        req.CustomerAddress,
		CustomerNumber: req.CustomerNumber,
		DeliveryDate:   req.DeliveryDate,
		DeliveryType:   deliveryType,
		Notes:          req.Notes,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: verr.Reason})
		case errors.Is(err, service.ErrEmptyCart):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "יש לבחור לפחות מוצר אחד"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Message: "אירעה שגיאה בשליחת ההזמנה. אנא נסה שוב מאוחר יותר.",
			})
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *HTTPHandler) NewOrder(w http.ResponseWriter, r *http.Request) {
	h.orderService.ResetDraft()
	writeJSON(w, http.StatusOK, map[string]string{
		"min_delivery_date": service.MinDeliveryDate(time.Now()),
	})
}

func (h *HTTPHandler) PrintOrder(w http.ResponseWriter, r *http.Request) {
	path, err := h.orderService.PrintLastOrder(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoOrderToPrint) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "אין נתוני הזמנה להדפסה"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "אירעה שגיאה בהדפסת ההזמנה. נסה שוב מאוחר יותר.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document": path})
}

func (h *HTTPHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.orderService.Settings(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *HTTPHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}
	if err := h.orderService.SaveSettings(r.Context(), settings); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
