// SPDX-License-Identifier: Apache-2.0

package grpc

import (
	"context"
	"testing"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// check queries the health server for the overall serving status.
func check(t *testing.T, h *Handler) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

// TestUpdateServingStatus_UnreachableStorage verifies that a failing storage
// probe publishes NOT_SERVING: an empty Storages aggregate has no database
// connection, so its Ping always errors.
func TestUpdateServingStatus_UnreachableStorage(t *testing.T) {
	h := NewHandler(&store.Storages{}, logger.Nop())

	h.UpdateServingStatus(context.Background())

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h))
}

func TestShutdown_MarksNotServing(t *testing.T) {
	h := NewHandler(&store.Storages{}, logger.Nop())

	h.Shutdown()

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(t, h))
}
