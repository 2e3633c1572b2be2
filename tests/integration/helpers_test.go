//go:build integration

package integration

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/discount-impact-service/tests/testutil"
)

// testClient opens a second client for assertions outside the service under test.
func testClient(t *testing.T) *spanner.Client {
	t.Helper()

	client, err := spanner.NewClient(context.Background(), testutil.GetTestSpannerDB())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}
