package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcadapter "github.com/notekeep/notekeep/pkg/adapters/lifecycle"
	"github.com/notekeep/notekeep/pkg/core"
)

func TestSourceBridgesEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	in := make(chan core.Event, 1)
	src := lcadapter.NewSource(in)
	require.NoError(t, src.Start(ctx))

	want := core.Event{Type: core.EventModify, File: "notes.json", Timestamp: 1}
	in <- want

	select {
	case got := <-src.Events():
		assert.Equal(t, want.String(), got.String())
	case <-ctx.Done():
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestSourceClosesWithUpstream(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	in := make(chan core.Event)
	src := lcadapter.NewSource(in)
	require.NoError(t, src.Start(ctx))

	close(in)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "bridge should close when upstream closes")
	case <-ctx.Done():
		t.Fatal("timed out waiting for close")
	}
}
