package sentence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestInternIdentity(t *testing.T) {
	r := NewRegistry()

	assert.Same(t, r.Label("color", "red"), r.Label("color", "red"))
	assert.NotSame(t, r.Label("color", "red"), r.Label("color", "blue"))
	assert.Same(t, r.Top(), r.Top())
	assert.Same(t, r.Bottom(), r.Bottom())
	assert.Equal(t, 4, r.Len())
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, Default.Label("size", "big"), LabelOf("size", "big"))
	assert.Same(t, Default.Top(), True())
	assert.Same(t, Default.Bottom(), False())
}

func TestRegistriesAreIsolated(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	assert.NotSame(t, first.Label("color", "red"), second.Label("color", "red"))
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestConcurrentInterningConverges(t *testing.T) {
	defer goleak.VerifyNone(t)

	const callers = 64
	r := NewRegistry()

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		labels  = make([]*Label, callers)
		tops    = make([]*Top, callers)
		bottoms = make([]*Bottom, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			labels[i] = r.Label("color", "red")
			tops[i] = r.Top()
			bottoms[i] = r.Bottom()
			// unrelated keys interleave with the contended ones
			r.Label("caller", Part(fmt.Sprint(i)))
		}()
	}
	close(start)
	wg.Wait()

	for i := range callers {
		require.Same(t, labels[0], labels[i])
		require.Same(t, tops[0], tops[i])
		require.Same(t, bottoms[0], bottoms[i])
	}
	assert.Equal(t, 3+callers, r.Len())
}
