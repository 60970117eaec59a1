package directline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_DeliversInOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	f := newFeed[int](done)

	// nobody reads yet, push must not block
	for i := 0; i < 100; i++ {
		f.push(i)
	}

	for i := 0; i < 100; i++ {
		select {
		case got := <-f.out:
			require.Equal(t, i, got)
		case <-time.After(time.Second):
			t.Fatalf("value %d not delivered", i)
		}
	}
}

func TestFeed_StopsOnDone(t *testing.T) {
	done := make(chan struct{})
	f := newFeed[string](done)
	f.push("a")
	close(done)

	assert.NotPanics(t, func() { f.push("b") })
}
