package contracts

import (
	"context"

	"github.com/light-bringer/discount-impact-service/internal/pkg/committer"
)

//go:generate mockgen -source=plan_applier.go -destination=mocks/mock_plan_applier.go -package=mocks

// PlanApplier applies a commit plan atomically. *committer.Committer
// satisfies it.
type PlanApplier interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}
