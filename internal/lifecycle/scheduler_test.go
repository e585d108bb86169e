package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salareserva/room-reservation-backend/internal/lifecycle"
)

func TestScheduler_InvalidSpec(t *testing.T) {
	e := newEnv(t)

	s := lifecycle.NewScheduler(e.sweeper, "every now and then", time.Minute, time.UTC, nil)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every now and then")
}

func TestScheduler_StartStop(t *testing.T) {
	e := newEnv(t)

	s := lifecycle.NewScheduler(e.sweeper, "*/5 * * * *", time.Minute, time.UTC, nil)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.NoError(t, ctx.Err(), "stop should not wait for the timeout when no job is running")
}
