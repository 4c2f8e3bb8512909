package transport

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"graphql-service/internal/logger"
	"graphql-service/internal/metrics"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Request is the JSON body accepted on POST /graphql.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type Handler struct {
	schema   *graphql.Schema
	maxDepth int
	metrics  *metrics.GraphQL
}

// NewHandler serves schema over HTTP. m may be nil.
func NewHandler(schema *graphql.Schema, maxDepth int, m *metrics.GraphQL) *Handler {
	return &Handler{schema: schema, maxDepth: maxDepth, metrics: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logger.FromCtx(r.Context()).With(zap.String("layer", "transport"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		log.Warn("invalid graphql request body", zap.Error(err))
		h.metrics.Observe(metrics.OutcomeBadRequest, time.Since(start))
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.metrics.Observe(metrics.OutcomeBadRequest, time.Since(start))
		writeJSONError(w, http.StatusBadRequest, "query is required")
		return
	}

	ctx := WithOperation(r.Context(), req.OperationName)
	log = log.With(zap.String("operation", OperationFrom(ctx)))

	if errs := ValidateDepth(req.Query, h.maxDepth); len(errs) > 0 {
		log.Warn("query rejected", zap.String("reason", errs[0].Message))
		h.metrics.Observe(metrics.OutcomeDepthRejected, time.Since(start))
		writeJSON(w, http.StatusOK, &graphql.Response{Errors: errs})
		return
	}

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	outcome := metrics.OutcomeOK
	if len(resp.Errors) > 0 {
		outcome = metrics.OutcomeErrors
		log.Info("graphql request finished with errors", zap.Int("errors", len(resp.Errors)))
	}
	h.metrics.Observe(outcome, time.Since(start))

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
