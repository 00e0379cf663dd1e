package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PublishAndReceive(t *testing.T) {
	f := New[int]()
	defer f.Close()

	f.Publish(42)

	select {
	case v := <-f.Updates():
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("expected a pending value")
	}
}

func TestFeed_LatestWins(t *testing.T) {
	f := New[int]()
	defer f.Close()

	// Nobody is consuming; the second publish replaces the first.
	f.Publish(1)
	f.Publish(2)

	select {
	case v := <-f.Updates():
		assert.Equal(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("expected a pending value")
	}

	select {
	case v := <-f.Updates():
		t.Fatalf("expected no further value, got %d", v)
	default:
	}
}

func TestFeed_CloseTerminatesConsumer(t *testing.T) {
	f := New[string]()
	f.Close()

	_, ok := <-f.Updates()
	require.False(t, ok)
}

func TestFeed_PublishAfterCloseIsNoop(t *testing.T) {
	f := New[string]()
	f.Close()

	assert.NotPanics(t, func() {
		f.Publish("late")
	})
}

func TestFeed_CloseIsIdempotent(t *testing.T) {
	f := New[int]()

	assert.NotPanics(t, func() {
		f.Close()
		f.Close()
	})
}
