package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/expedientes/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.Storage = config.StorageMemory
	c.HTTPAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	assert.NotNil(t, app.server)
	assert.NotNil(t, app.repos.Expedientes())
}

func TestNewApp_UnknownStorage(t *testing.T) {
	c := memoryConfig()
	c.Storage = "cassandra"

	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
