package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	"github.com/cividesk/braintree-bridge/internal/registry"
	pkgerrors "github.com/cividesk/braintree-bridge/pkg/errors"
	"github.com/cividesk/braintree-bridge/pkg/observability"
)

// paymentRequest is the host's payment call: the processor to dispatch to
// and the flat field bundle its form collected
type paymentRequest struct {
	Processor string               `json:"processor"`
	Params    models.RequestBundle `json:"params"`
}

type paymentResponse struct {
	Success bool                 `json:"success"`
	Values  models.RequestBundle `json:"values"`
}

// PaymentHandler dispatches payment attempts through the processor registry
type PaymentHandler struct {
	registry *registry.Registry
	logger   ports.Logger
}

// NewPaymentHandler creates the payment handler
func NewPaymentHandler(reg *registry.Registry, logger ports.Logger) *PaymentHandler {
	return &PaymentHandler{registry: reg, logger: logger}
}

// ServeHTTP handles POST /api/v1/payments. The host API posts JSON; the
// hosted form posts url-encoded fields with a processor field.
func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodePaymentRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	processor, err := h.registry.Get(models.ProcessorKind(req.Processor))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	start := time.Now()
	outcome, err := processor.ProcessPayment(r.Context(), req.Params)
	if err != nil {
		h.writeFailure(w, req.Processor, start, err)
		return
	}

	status := "completed"
	if outcome.NoOp {
		status = "no_op"
	}
	amount, _ := req.Params.Amount()
	observability.RecordPayment(req.Processor, status, "", amount, time.Since(start))

	writeJSON(w, http.StatusOK, paymentResponse{
		Success: true,
		Values:  outcome.Bundle,
	})
}

func decodePaymentRequest(r *http.Request) (paymentRequest, error) {
	var req paymentRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Params = make(models.RequestBundle, len(r.PostForm))
		for key := range r.PostForm {
			if key == "processor" {
				continue
			}
			req.Params[key] = r.PostForm.Get(key)
		}
		req.Processor = r.PostForm.Get("processor")
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// writeFailure maps a typed processing error onto the HTTP surface. Every
// failure body carries the failed payment status for the host to record.
func (h *PaymentHandler) writeFailure(w http.ResponseWriter, processor string, start time.Time, err error) {
	failedStatus := strconv.Itoa(int(models.PaymentStatusFailed))

	var verr *pkgerrors.ValidationError
	if errors.As(err, &verr) {
		observability.RecordPayment(processor, "failed", "", decimal.Zero, time.Since(start))
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Success:         false,
			Error:           verr.Message,
			Field:           verr.Field,
			PaymentStatusID: failedStatus,
		})
		return
	}

	var perr *pkgerrors.ProcessorError
	if errors.As(err, &perr) {
		status := http.StatusPaymentRequired
		if perr.Category == pkgerrors.CategoryNetworkError || perr.Category == pkgerrors.CategorySystemError {
			status = http.StatusBadGateway
		}
		observability.RecordPayment(processor, "failed", perr.Code, decimal.Zero, time.Since(start))
		writeJSON(w, status, errorResponse{
			Success:         false,
			Error:           perr.Message,
			PaymentStatusID: failedStatus,
			ResponseCode:    perr.Code,
			Retriable:       perr.IsRetriable,
		})
		return
	}

	// Transport failures and anything else unexpected
	h.logger.Error("Payment failed with untyped error", ports.Err(err))
	observability.RecordPayment(processor, "failed", "", decimal.Zero, time.Since(start))
	writeJSON(w, http.StatusBadGateway, errorResponse{
		Success:         false,
		Error:           err.Error(),
		PaymentStatusID: failedStatus,
	})
}
