package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/product"
	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/middleware"
)

type createSalesRequest struct {
	ProductType     string   `json:"product_type"`
	Quantity        *float64 `json:"quantity"`
	Unit            string   `json:"unit"`
	CustomerName    string   `json:"customer_name"`
	CustomerContact string   `json:"customer_contact"`
	SaleDate        string   `json:"sale_date"`
	UnitPrice       *float64 `json:"unit_price"`
	PaymentStatus   string   `json:"payment_status"`
	Notes           string   `json:"notes"`
}

type salesResponse struct {
	ID              string    `json:"id"`
	ProductType     string    `json:"product_type"`
	ProductLabel    string    `json:"product_label"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
	SaleDate        string    `json:"sale_date"`
	UnitPrice       float64   `json:"unit_price"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentStatus   string    `json:"payment_status"`
	Notes           string    `json:"notes"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type salesListResponse struct {
	Items []salesResponse `json:"items"`
	Total int             `json:"total"`
}

func (h *Handlers) ListSales(w http.ResponseWriter, r *http.Request) {
	records, err := h.Sales.List(r.Context())
	if err != nil {
		h.log.InternalError("sales.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]salesResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toSalesResponse(record))
	}

	writeJSON(w, http.StatusOK, salesListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) CreateSales(w http.ResponseWriter, r *http.Request) {
	var req createSalesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "quantity is required")
		return
	}
	if *req.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "quantity must not be negative")
		return
	}
	if req.UnitPrice == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unit price is required")
		return
	}
	if *req.UnitPrice < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "unit price must not be negative")
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer name is required")
		return
	}
	saleDate, err := parseDateOptional(req.SaleDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid sale date")
		return
	}

	input := salesdomain.CreateInput{
		ProductType:     req.ProductType,
		Quantity:        *req.Quantity,
		Unit:            req.Unit,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		SaleDate:        saleDate,
		UnitPrice:       *req.UnitPrice,
		PaymentStatus:   req.PaymentStatus,
		Notes:           req.Notes,
		CreatedBy:       user.ID,
	}

	created, err := h.Sales.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, salesdomain.ErrInvalidPaymentStatus) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid payment status")
			return
		}
		h.log.InternalError("sales.create: insert failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toSalesResponse(*created))
}

func (h *Handlers) DeleteSales(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	prof, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Sales.Delete(r.Context(), prof.Role, id); err != nil {
		switch {
		case errors.Is(err, salesdomain.ErrForbidden):
			h.log.BusinessError("sales.delete: forbidden", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusForbidden, "forbidden", "only the owner may delete records")
		case errors.Is(err, salesdomain.ErrRecordNotFound):
			h.log.BusinessError("sales.delete: not found", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusNotFound, "record_not_found", "sales record not found")
		default:
			h.log.InternalError("sales.delete: delete failed", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toSalesResponse(record salesdomain.Record) salesResponse {
	return salesResponse{
		ID:              record.ID,
		ProductType:     record.ProductType,
		ProductLabel:    product.Label(record.ProductType),
		Quantity:        record.Quantity,
		Unit:            record.Unit,
		CustomerName:    record.CustomerName,
		CustomerContact: record.CustomerContact,
		SaleDate:        record.SaleDate.Format("2006-01-02"),
		UnitPrice:       record.UnitPrice,
		TotalAmount:     record.TotalAmount,
		PaymentStatus:   record.PaymentStatus,
		Notes:           record.Notes,
		CreatedBy:       record.CreatedBy,
		CreatedAt:       record.CreatedAt,
	}
}
