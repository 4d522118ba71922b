/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers (and by the engine itself), not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/options.go: OptionsJSON type
*/
package api

import (
	"github.com/warp/sales-analytics/analytics"
	"github.com/warp/sales-analytics/factory"
	"github.com/warp/sales-analytics/store/sqlite"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// AnalyzeRequest carries an ad-hoc dataset and optional strategy selection.
type AnalyzeRequest struct {
	Data    *analytics.Dataset   `json:"data"`
	Options *factory.OptionsJSON `json:"options,omitempty"`
}

// ReportResponse wraps the ranked report rows.
type ReportResponse struct {
	Rows  []analytics.ReportRow `json:"rows"`
	Count int                   `json:"count"`
}

// DatasetSummaryDTO describes the stored dataset without shipping it.
type DatasetSummaryDTO struct {
	Counts   sqlite.DatasetCounts `json:"counts"`
	Scenario string               `json:"scenario,omitempty"`
}

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
