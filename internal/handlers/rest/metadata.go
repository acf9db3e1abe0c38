package rest

import (
	"net/http"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/registry"
)

// MetadataHandler serves the processor registration records and payment form
// field descriptors the host needs to render its screens
type MetadataHandler struct {
	registry *registry.Registry
}

// NewMetadataHandler creates the metadata handler
func NewMetadataHandler(reg *registry.Registry) *MetadataHandler {
	return &MetadataHandler{registry: reg}
}

// Processors handles GET /api/v1/processors
func (h *MetadataHandler) Processors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"processors": models.ProcessorTypes(),
	})
}

// ACHFields handles GET /api/v1/payment-fields/ach
func (h *MetadataHandler) ACHFields(w http.ResponseWriter, r *http.Request) {
	processor, err := h.registry.Get(models.ProcessorACH)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"fields":  processor.FormFields(),
	})
}
