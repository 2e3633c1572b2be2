package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

// SimulationHandler exposes the simulation service over HTTP/JSON.
type SimulationHandler struct {
	service pb.SimulationServiceServer
}

// NewSimulationHandler creates a new HTTP simulation handler.
func NewSimulationHandler(service pb.SimulationServiceServer) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate handles POST /api/v1/simulations.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req pb.SimulateRequest
	if !bindProto(c, &req) {
		return
	}

	result, err := h.service.Simulate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, result)
}

// Compare handles POST /api/v1/simulations/compare.
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req pb.CompareRequest
	if !bindProto(c, &req) {
		return
	}

	resp, err := h.service.Compare(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, resp)
}

// Get handles GET /api/v1/simulations/:id.
func (h *SimulationHandler) Get(c *gin.Context) {
	result, err := h.service.GetSimulation(c.Request.Context(), &pb.GetSimulationRequest{
		SimulationId: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, result)
}

// List handles GET /api/v1/simulations.
func (h *SimulationHandler) List(c *gin.Context) {
	pageSize, ok := int32Query(c, "pageSize")
	if !ok {
		return
	}

	resp, err := h.service.ListSimulations(c.Request.Context(), &pb.ListSimulationsRequest{
		ProductName: c.Query("productName"),
		RiskLevel:   c.Query("riskLevel"),
		PageSize:    pageSize,
		PageToken:   c.Query("pageToken"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, resp)
}

// int32Query parses an optional integer query parameter. On failure it writes
// a 400 and returns false.
func int32Query(c *gin.Context, name string) (int32, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeParamError(c, name)
		return 0, false
	}
	return int32(v), true
}
