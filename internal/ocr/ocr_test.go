package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquireRelease(t *testing.T) {
	var built int
	p := NewPool(2, func() Engine {
		built++
		return EngineFunc(func(ctx context.Context, path string, _ Progress) (string, error) {
			return "text", nil
		})
	})
	defer p.Close()

	assert.Equal(t, 2, built, "engines are created once, up front")

	ctx := context.Background()
	a, err := p.Acquire(ctx)
	require.NoError(t, err)
	b, err := p.Acquire(ctx)
	require.NoError(t, err)

	// Pool exhausted: a third acquire blocks until release or timeout.
	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = p.Acquire(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	p.Release(a)
	c, err := p.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, built, "release recycles, never rebuilds")

	p.Release(b)
	p.Release(c)
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(1, func() Engine {
		return EngineFunc(func(ctx context.Context, path string, _ Progress) (string, error) {
			return "", nil
		})
	})
	p.Close()
	p.Close() // idempotent

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestMultiPassJoinsWithMarker(t *testing.T) {
	factory := func(languages []string) Engine {
		return EngineFunc(func(ctx context.Context, path string, _ Progress) (string, error) {
			if len(languages) == 1 {
				return "56 abundant\n", nil
			}
			return "豊富な\n", nil
		})
	}

	var statuses []string
	progress := func(status string, percent int) { statuses = append(statuses, status) }

	got, err := MultiPass(context.Background(), factory, "page.png", nil, progress)
	require.NoError(t, err)

	assert.Equal(t, "56 abundant\n"+SectionMarker+"\n豊富な", got)
	assert.Equal(t, []string{"pass latin", "pass mixed", "done"}, statuses)
}

func TestMultiPassPropagatesFailure(t *testing.T) {
	boom := errors.New("no text layer")
	factory := func([]string) Engine {
		return EngineFunc(func(ctx context.Context, path string, _ Progress) (string, error) {
			return "", boom
		})
	}

	_, err := MultiPass(context.Background(), factory, "page.png", nil, nil)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.Contains(err.Error(), "pass latin"))
}
