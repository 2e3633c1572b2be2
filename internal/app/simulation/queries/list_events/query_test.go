package list_events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/contracts/mocks"
	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

func TestQuery_Execute_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, DefaultLimit},
		{"negative uses default", -5, DefaultLimit},
		{"within range", 10, 10},
		{"capped", 5000, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readModel := mocks.NewMockEventsReadModel(ctrl)
			events := []*contracts.EventDTO{{EventID: "evt-1"}}
			readModel.EXPECT().
				ListEvents(gomock.Any(), &contracts.EventFilter{
					EventType: "simulation.completed",
					Limit:     tt.wantLimit,
				}).
				Return(events, nil)

			got, err := NewQuery(readModel).Execute(context.Background(), &Request{
				EventType: "simulation.completed",
				Limit:     tt.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, events, got)
		})
	}
}

func TestQuery_Execute_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewQuery(mocks.NewMockEventsReadModel(ctrl))

	_, err := q.Execute(context.Background(), &Request{Status: "processed"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	field, _ := domain.InvalidField(err)
	assert.Equal(t, FieldStatus, field)
}
