package api

// =============================================================================
// Request Types
// =============================================================================

// CreatePlantRequest is the request body for creating a plant.
// Pointer fields distinguish absent values from zero values; a wrong JSON type
// is rejected at decode time.
type CreatePlantRequest struct {
	Name      *string  `json:"name"`
	Image     *string  `json:"image"`
	Price     *float64 `json:"price"`
	IsInStock *bool    `json:"is_in_stock"`
}

// UpdatePlantRequest is the request body for partially updating a plant.
// Only the fields present in the body are applied; the ID is never updatable.
type UpdatePlantRequest struct {
	Name      *string  `json:"name"`
	Image     *string  `json:"image"`
	Price     *float64 `json:"price"`
	IsInStock *bool    `json:"is_in_stock"`
}

// =============================================================================
// Response Types
// =============================================================================

// PlantResponse is the response body for plant operations.
type PlantResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	IsInStock bool    `json:"is_in_stock"`
}

// ErrorsResponse is the bad request response format.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NotFoundResponse is the not found response format, shared by unmatched
// routes and missing plants.
type NotFoundResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the readiness check response.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
