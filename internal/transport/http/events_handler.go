package http

import (
	"github.com/gin-gonic/gin"

	pb "github.com/light-bringer/discount-impact-service/proto/simulation/v1"
)

// EventsHandler handles HTTP requests for outbox events.
type EventsHandler struct {
	service pb.SimulationServiceServer
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(service pb.SimulationServiceServer) *EventsHandler {
	return &EventsHandler{service: service}
}

// List handles GET /api/v1/events.
func (h *EventsHandler) List(c *gin.Context) {
	limit, ok := int32Query(c, "limit")
	if !ok {
		return
	}

	resp, err := h.service.ListEvents(c.Request.Context(), &pb.ListEventsRequest{
		EventType:   c.Query("eventType"),
		AggregateId: c.Query("aggregateId"),
		Status:      c.Query("status"),
		Limit:       limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	writeProto(c, resp)
}
