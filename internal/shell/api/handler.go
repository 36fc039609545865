// Package api provides HTTP handlers for the Planter API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/artpar/planter/internal/core/domain"
	"github.com/artpar/planter/internal/shell/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// plantNotFoundMessage is the single not-found body used by both unmatched
// routes and missing plant lookups.
const plantNotFoundMessage = "Plant not found"

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API.
type Handler struct {
	store  store.Store
	logger *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, l *slog.Logger) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		store:  s,
		logger: l,
	}
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)

	// Unmatched routes converge on the same body as missing plants
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeNotFound(w)
	})

	// Health endpoints
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	// Plant routes
	r.Route("/plants", func(r chi.Router) {
		r.Get("/", h.handleListPlants)
		r.Post("/", h.handleCreatePlant)
		r.Get("/{id}", h.handleGetPlant)
		r.Patch("/{id}", h.handleUpdatePlant)
		r.Delete("/{id}", h.handleDeletePlant)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if err := h.store.Ping(r.Context()); err != nil {
		checks["database"] = "failed"
		h.writeJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status: "not_ready",
			Checks: checks,
		})
		return
	}
	checks["database"] = "ok"

	h.writeJSON(w, http.StatusOK, ReadyResponse{
		Status: "ready",
		Checks: checks,
	})
}

// =============================================================================
// Plant Handlers
// =============================================================================

func (h *Handler) handleListPlants(w http.ResponseWriter, r *http.Request) {
	plants, err := h.store.ListPlants(r.Context())
	if err != nil {
		h.logger.Error("failed to list plants", "error", err)
		h.writeServerError(w)
		return
	}

	resp := make([]PlantResponse, 0, len(plants))
	for _, p := range plants {
		resp = append(resp, plantToResponse(&p))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreatePlant(w http.ResponseWriter, r *http.Request) {
	var req CreatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}

	// Required fields; a typed zero value is fine, an absent field is not
	if req.Name == nil {
		h.writeBadRequest(w, domain.ErrNameRequired.Error())
		return
	}
	if req.Image == nil {
		h.writeBadRequest(w, domain.ErrImageRequired.Error())
		return
	}
	if req.Price == nil {
		h.writeBadRequest(w, domain.ErrPriceRequired.Error())
		return
	}

	isInStock := true
	if req.IsInStock != nil {
		isInStock = *req.IsInStock
	}

	plant, err := domain.NewPlant(*req.Name, *req.Image, *req.Price, isInStock)
	if err != nil {
		h.writeBadRequestErr(w, err)
		return
	}

	if err := h.store.CreatePlant(r.Context(), plant); err != nil {
		h.writeBadRequestErr(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, plantToResponse(plant))
}

func (h *Handler) handleGetPlant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.plantID(r)
	if !ok {
		h.writeNotFound(w)
		return
	}

	plant, err := h.store.GetPlant(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeNotFound(w)
			return
		}
		h.logger.Error("failed to get plant", "error", err, "id", id)
		h.writeServerError(w)
		return
	}

	h.writeJSON(w, http.StatusOK, plantToResponse(plant))
}

func (h *Handler) handleUpdatePlant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.plantID(r)
	if !ok {
		h.writeNotFound(w)
		return
	}

	plant, err := h.store.GetPlant(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeNotFound(w)
			return
		}
		h.logger.Error("failed to get plant", "error", err, "id", id)
		h.writeServerError(w)
		return
	}

	var req UpdatePlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}

	update := domain.PlantUpdate{
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		IsInStock: req.IsInStock,
	}
	if err := plant.Apply(update); err != nil {
		h.writeBadRequestErr(w, err)
		return
	}

	if err := h.store.UpdatePlant(r.Context(), plant); err != nil {
		if isNotFound(err) {
			h.writeNotFound(w)
			return
		}
		h.writeBadRequestErr(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, plantToResponse(plant))
}

func (h *Handler) handleDeletePlant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.plantID(r)
	if !ok {
		h.writeNotFound(w)
		return
	}

	if err := h.store.DeletePlant(r.Context(), id); err != nil {
		if isNotFound(err) {
			h.writeNotFound(w)
			return
		}
		h.logger.Error("failed to delete plant", "error", err, "id", id)
		h.writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

// plantID parses the {id} URL parameter. A non-integer segment is treated as
// an unmatched route, not a bad request.
func (h *Handler) plantID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeNotFound(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusNotFound, NotFoundResponse{Error: plantNotFoundMessage})
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, ErrorsResponse{Errors: []string{msg}})
}

// writeBadRequestErr maps a create or update failure to the 400 contract.
// Validation failures are expected client errors; storage faults also get
// logged before surfacing with the same shape.
func (h *Handler) writeBadRequestErr(w http.ResponseWriter, err error) {
	if !domain.IsValidationError(err) {
		h.logger.Error("failed to persist plant", "error", err)
	}
	h.writeBadRequest(w, err.Error())
}

func (h *Handler) writeServerError(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusInternalServerError, ErrorsResponse{
		Errors: []string{"internal server error"},
	})
}

func plantToResponse(p *domain.Plant) PlantResponse {
	return PlantResponse{
		ID:        p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		IsInStock: p.IsInStock,
	}
}

// isNotFound checks if an error is a not found error.
func isNotFound(err error) bool {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return errors.Is(storeErr.Unwrap(), store.ErrNotFound)
	}
	return false
}
