package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/noaa-owp/reach-decomp/internal/config"
	"github.com/noaa-owp/reach-decomp/internal/engine"
	"github.com/noaa-owp/reach-decomp/internal/ingest"
	"github.com/noaa-owp/reach-decomp/internal/metrics"
	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/obslog"
	"github.com/noaa-owp/reach-decomp/internal/query"
	"github.com/noaa-owp/reach-decomp/internal/toposort"
)

// Handler serves the decomposition endpoint. It holds no per-request
// state; every field is immutable configuration shared across concurrent
// requests.
type Handler struct {
	cfg      *config.IngestConfig
	validate *validator.Validate
	// segmentTablePath is read fresh on every request: the engine is a
	// pure function of its input rows, and this repo never caches a
	// decomposition across requests (§5, no shared resources).
	segmentTablePath string
}

// NewHandler builds a Handler reading the segment table from
// cfg.DefaultSegmentTable on every request.
func NewHandler(cfg *config.IngestConfig) *Handler {
	return &Handler{
		cfg:              cfg,
		validate:         validator.New(),
		segmentTablePath: cfg.DefaultSegmentTable,
	}
}

// Decompose handles GET /v1/decompose.
func (h *Handler) Decompose(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	logger := obslog.WithRun(runID)

	req := DecomposeRequest{
		LID:             r.URL.Query().Get("lid"),
		FeatureID:       r.URL.Query().Get("feature_id"),
		StartTime:       r.URL.Query().Get("start_time"),
		NumForecastDays: parseIntOrZero(r.URL.Query().Get("num_forecast_days")),
		Order:           r.URL.Query().Get("order"),
	}
	if err := h.validate.Struct(req); err != nil {
		metrics.RunsTotal.WithLabelValues("malformed_input").Inc()
		writeError(w, http.StatusUnprocessableEntity, "malformed_input", err.Error())
		return
	}

	f, err := os.Open(h.segmentTablePath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open segment table")
		writeError(w, http.StatusInternalServerError, "io_error", "segment table unavailable")
		return
	}
	defer f.Close()

	connections, waterbodies, err := ingest.LoadCSV(f)
	if err != nil {
		var malformed *ingest.ErrMalformedRow
		if errors.As(err, &malformed) {
			metrics.RunsTotal.WithLabelValues("malformed_input").Inc()
			writeError(w, http.StatusUnprocessableEntity, "malformed_input", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "io_error", err.Error())
		return
	}

	result := engine.Run(r.Context(), connections, waterbodies,
		ingest.WithTerminalCode(network.NodeID(h.cfg.TerminalCode)),
		ingest.WithNullSentinel(network.NodeID(h.cfg.NullSentinel)),
	)

	resp := DecomposeResponse{
		RunID:      runID,
		LID:        req.LID,
		FeatureID:  req.FeatureID,
		NodeCount:  len(query.Headwaters(result.Connections)) + len(query.Tailwaters(result.Connections)),
		ReachCount: len(result.Tuples),
	}

	if req.Order == "topo" {
		order, err := engine.TopoOrderOfReaches(result)
		if err != nil {
			var cycleErr *toposort.ErrCycleDetected
			if errors.As(err, &cycleErr) {
				metrics.RunsTotal.WithLabelValues("cycle_detected").Inc()
				writeError(w, http.StatusConflict, "cycle_detected", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal", err.Error())
			return
		}
		resp.TopoOrder = order
	} else {
		resp.Depths = result.Depths
	}
	metrics.RunsTotal.WithLabelValues("ok").Inc()

	logger.Info().
		Str("lid", req.LID).
		Str("feature_id", req.FeatureID).
		Int("reach_count", resp.ReachCount).
		Msg("decomposition run complete")

	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{Error: kind, Message: message})
}
