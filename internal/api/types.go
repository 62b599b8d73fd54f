// Package api exposes the thin HTTP surface of §4.9/§6: a single endpoint
// mirroring the original's FastAPI gauge-data route, wiring request
// parameters to the decomposition pipeline and rendering its output as
// JSON. It never invokes a hydrodynamic solver — that remains the
// unimplemented external collaborator the distilled spec describes;
// this package only demonstrates the shape the solver would be handed.
package api

import (
	"github.com/noaa-owp/reach-decomp/internal/network"
	"github.com/noaa-owp/reach-decomp/internal/reach"
)

// DecomposeRequest is the validated query-parameter shape of
// GET /v1/decompose, mirroring the original's (lid, feature_id,
// start_time, num_forecast_days) parameters. Request-parameter validation
// here (via go-playground/validator) is distinct from the input-row
// schema validation §1 places out of scope: this validates what the
// caller asked for, not the segment table itself.
type DecomposeRequest struct {
	LID              string `validate:"required"`
	FeatureID        string `validate:"required"`
	StartTime        string `validate:"required"`
	NumForecastDays  int    `validate:"required,gt=0"`
	Order            string `validate:"omitempty,oneof=depth topo"`
}

// DecomposeResponse is the JSON rendering of tuple_with_orders_into_dict's
// output (§4.4), depth-shifted per §6's consumer-side normalization rule.
type DecomposeResponse struct {
	RunID      string              `json:"run_id"`
	LID        string              `json:"lid"`
	FeatureID  string              `json:"feature_id"`
	NodeCount  int                 `json:"node_count"`
	ReachCount int                 `json:"reach_count"`
	Depths     map[int][]reach.Path `json:"depths,omitempty"`
	TopoOrder  []network.NodeID      `json:"topo_order,omitempty"`
}

// ErrorResponse is the JSON body returned for any of §7's error kinds.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
