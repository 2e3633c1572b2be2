package simulation

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status errors.
// Invalid input carries a BadRequest detail naming the field. Unknown errors
// are logged and reported as a generic Internal error.
func mapDomainErrorToGRPC(err error, logger *zap.Logger) error {
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return invalidArgument(verr)

	case errors.Is(err, domain.ErrSimulationNotFound):
		return status.Error(codes.NotFound, "simulation not found")

	case errors.Is(err, domain.ErrHistoryDisabled):
		return status.Error(codes.Unimplemented, "simulation history is disabled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	default:
		logger.Error("request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}
}

func invalidArgument(verr *domain.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())
	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: verr.Field, Description: verr.Reason},
		},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FieldViolation extracts the first BadRequest field violation from a gRPC
// status error.
func FieldViolation(err error) (field, description string, ok bool) {
	st, isStatus := status.FromError(err)
	if !isStatus {
		return "", "", false
	}
	for _, detail := range st.Details() {
		if br, isBR := detail.(*errdetails.BadRequest); isBR && len(br.FieldViolations) > 0 {
			v := br.FieldViolations[0]
			return v.Field, v.Description, true
		}
	}
	return "", "", false
}
