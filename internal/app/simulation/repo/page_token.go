package repo

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/light-bringer/discount-impact-service/internal/app/simulation/domain"
)

// FieldPageToken is the wire name reported for malformed cursors.
const FieldPageToken = "pageToken"

// pageCursor is the position of the last row of a page under
// ORDER BY created_at DESC, simulation_id DESC.
type pageCursor struct {
	CreatedAt    time.Time `json:"t"`
	SimulationID string    `json:"id"`
}

func encodePageToken(c pageCursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodePageToken(token string) (pageCursor, error) {
	var c pageCursor
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return c, domain.NewValidationError(FieldPageToken, "is malformed")
	}
	if err := json.Unmarshal(raw, &c); err != nil || c.SimulationID == "" || c.CreatedAt.IsZero() {
		return c, domain.NewValidationError(FieldPageToken, "is malformed")
	}
	return c, nil
}
