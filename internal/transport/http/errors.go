package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	grpcsim "github.com/light-bringer/discount-impact-service/internal/transport/grpc/simulation"
)

const fieldBody = "body"

var (
	// Unset wrappers render as null so clients can tell "no value" from zero.
	marshalOptions   = protojson.MarshalOptions{EmitUnpopulated: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

type errorBody struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// writeError maps a gRPC status error from the service onto an HTTP response.
func writeError(c *gin.Context, err error) {
	st := status.Convert(err)

	switch st.Code() {
	case codes.InvalidArgument:
		field, description, ok := grpcsim.FieldViolation(err)
		if !ok {
			description = st.Message()
		}
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid_input", Field: field, Message: description})
	case codes.NotFound:
		c.JSON(http.StatusNotFound, errorBody{Error: "not_found", Message: st.Message()})
	case codes.Unimplemented:
		c.JSON(http.StatusNotImplemented, errorBody{Error: "not_implemented", Message: st.Message()})
	case codes.DeadlineExceeded:
		c.JSON(http.StatusGatewayTimeout, errorBody{Error: "timeout", Message: st.Message()})
	case codes.Canceled:
		c.JSON(http.StatusRequestTimeout, errorBody{Error: "canceled", Message: st.Message()})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal", Message: "internal server error"})
	}
}

// bindProto decodes the request body as protobuf JSON. On failure it writes a
// 400 and returns false.
func bindProto(c *gin.Context, msg proto.Message) bool {
	body, err := c.GetRawData()
	if err == nil {
		err = unmarshalOptions.Unmarshal(body, msg)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid_input", Field: fieldBody, Message: "malformed request body"})
		return false
	}
	return true
}

func writeProto(c *gin.Context, msg proto.Message) {
	body, err := marshalOptions.Marshal(msg)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func writeParamError(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: "invalid_input", Field: field, Message: "must be an integer"})
}
