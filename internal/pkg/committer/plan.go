// Package committer collects Spanner mutations into a plan and applies them
// in one transaction.
//
// Repositories build mutations without touching the database; a use case adds
// every mutation it needs (the record and its outbox event) to one CommitPlan
// and applies it once:
//
//	plan := committer.NewPlan()
//	plan.Add(simulationRepo.InsertMut(record))
//	plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	return committer.Apply(ctx, plan)
//
// Either every mutation lands or none does.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is an ordered set of mutations applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer applies CommitPlans against a Spanner client.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// RunInTransaction runs fn in a read-write transaction, for work that must
// read or issue DML before writing.
func (c *Committer) RunInTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
