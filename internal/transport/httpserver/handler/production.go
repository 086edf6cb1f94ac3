package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/product"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/middleware"
)

type createProductionRequest struct {
	ProductType    string   `json:"product_type"`
	Quantity       *float64 `json:"quantity"`
	Unit           string   `json:"unit"`
	ProductionDate string   `json:"production_date"`
	BatchNumber    string   `json:"batch_number"`
	QualityGrade   string   `json:"quality_grade"`
	Notes          string   `json:"notes"`
}

type productionResponse struct {
	ID             string    `json:"id"`
	ProductType    string    `json:"product_type"`
	ProductLabel   string    `json:"product_label"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	ProductionDate string    `json:"production_date"`
	BatchNumber    string    `json:"batch_number"`
	QualityGrade   string    `json:"quality_grade"`
	Notes          string    `json:"notes"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type productionListResponse struct {
	Items []productionResponse `json:"items"`
	Total int                  `json:"total"`
}

func (h *Handlers) ListProduction(w http.ResponseWriter, r *http.Request) {
	records, err := h.Production.List(r.Context())
	if err != nil {
		h.log.InternalError("production.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]productionResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toProductionResponse(record))
	}

	writeJSON(w, http.StatusOK, productionListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) CreateProduction(w http.ResponseWriter, r *http.Request) {
	var req createProductionRequest
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
	if strings.TrimSpace(req.BatchNumber) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "batch number is required")
		return
	}
	productionDate, err := parseDateOptional(req.ProductionDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid production date")
		return
	}

	input := productiondomain.CreateInput{
		ProductType:    req.ProductType,
		Quantity:       *req.Quantity,
		Unit:           req.Unit,
		ProductionDate: productionDate,
		BatchNumber:    req.BatchNumber,
		QualityGrade:   req.QualityGrade,
		Notes:          req.Notes,
		CreatedBy:      user.ID,
	}

	created, err := h.Production.Create(r.Context(), input)
	if err != nil {
		h.log.InternalError("production.create: insert failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toProductionResponse(*created))
}

func (h *Handlers) DeleteProduction(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Production.Delete(r.Context(), prof.Role, id); err != nil {
		switch {
		case errors.Is(err, productiondomain.ErrForbidden):
			h.log.BusinessError("production.delete: forbidden", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusForbidden, "forbidden", "only the owner may delete records")
		case errors.Is(err, productiondomain.ErrRecordNotFound):
			h.log.BusinessError("production.delete: not found", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusNotFound, "record_not_found", "production record not found")
		default:
			h.log.InternalError("production.delete: delete failed", err, "user_id", prof.ID, "record_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProductionResponse(record productiondomain.Record) productionResponse {
	return productionResponse{
		ID:             record.ID,
		ProductType:    record.ProductType,
		ProductLabel:   product.Label(record.ProductType),
		Quantity:       record.Quantity,
		Unit:           record.Unit,
		ProductionDate: record.ProductionDate.Format("2006-01-02"),
		BatchNumber:    record.BatchNumber,
		QualityGrade:   record.QualityGrade,
		Notes:          record.Notes,
		CreatedBy:      record.CreatedBy,
		CreatedAt:      record.CreatedAt,
	}
}
