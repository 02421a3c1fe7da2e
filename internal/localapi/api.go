package localapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fleexa-Graduation-Project/relief-button/internal/validation"
)

// largest request body the local runner accepts
const maxBodyBytes = 1 << 20

// ClickHandler is satisfied by *clicks.Service
type ClickHandler interface {
	HandleRequest(ctx context.Context, raw json.RawMessage) (bool, error)
}

type API struct {
	Handler ClickHandler
	Logger  *slog.Logger
}

type ClickResponse struct {
	RequestID string `json:"request_id"`
	Handled   bool   `json:"handled"`
	Error     string `json:"error,omitempty"`
}

func New(handler ClickHandler, log *slog.Logger) *API {
	return &API{Handler: handler, Logger: log}
}

// Router exposes the lambda handler over HTTP for local runs.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", a.Health)
	r.Post("/click", a.Click)
	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		a.Logger.ErrorContext(r.Context(), "Failed to write response", "error", err)
	}
}

// Click runs one invocation with a fresh request id, the same way the lambda
// runtime would.
func (a *API) Click(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		a.writeJSON(r.Context(), w, http.StatusRequestEntityTooLarge, ClickResponse{RequestID: requestID, Error: "request body too large"})
		return
	}

	ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{AwsRequestID: requestID})
	handled, err := a.Handler.HandleRequest(ctx, body)
	if err != nil {
		status := http.StatusBadGateway
		if validation.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		a.Logger.ErrorContext(ctx, "Click invocation failed", "request_id", requestID, "status", status, "error", err)
		a.writeJSON(r.Context(), w, status, ClickResponse{RequestID: requestID, Error: err.Error()})
		return
	}

	a.writeJSON(r.Context(), w, http.StatusOK, ClickResponse{RequestID: requestID, Handled: handled})
}

func (a *API) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to write response", "status", status, "error", err)
	}
}
