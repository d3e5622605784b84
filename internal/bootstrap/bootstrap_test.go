package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run_ReturnsRunError(t *testing.T) {
	app := New()
	wantErr := errors.New("listen failed")

	err := app.Run(context.Background(), func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestApp_Run_ShutdownHooksRunInReverseOrder(t *testing.T) {
	app := New()

	var order []string
	app.AddShutdownHook(func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx, func(ctx context.Context) error {
			<-block
			return nil
		})
	}()
	t.Cleanup(func() { close(block) })

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}

	assert.Equal(t, []string{"second", "first"}, order)
}

func TestApp_Run_CollectsHookErrors(t *testing.T) {
	app := New()

	hookErr := errors.New("close failed")
	app.AddShutdownHook(func(ctx context.Context) error {
		return hookErr
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	err := app.Run(ctx, func(ctx context.Context) error {
		<-block
		return nil
	})
	assert.ErrorIs(t, err, hookErr)
}
