package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_RemembersCreated(t *testing.T) {
	memo := NewMemo[item]()
	finds, creates := 0, 0
	step := memo.Wrap(Step[item]{
		Kind: "line item",
		Name: "sape: 300x250 1.00 RUB",
		Find: func(ctx context.Context) (*item, error) {
			finds++
			return nil, nil
		},
		Create: func(ctx context.Context) (*item, error) {
			creates++
			return &item{ID: 9, Name: "sape: 300x250 1.00 RUB"}, nil
		},
	})

	got, created, err := Ensure(context.Background(), step)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := Ensure(context.Background(), step)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, got, again)
	assert.Equal(t, 1, finds)
	assert.Equal(t, 1, creates)
	assert.Equal(t, 1, memo.Len())
}

func TestMemo_RemembersFound(t *testing.T) {
	memo := NewMemo[item]()
	finds := 0
	step := Step[item]{
		Kind: "creative",
		Name: "sape: 1",
		Find: func(ctx context.Context) (*item, error) {
			finds++
			return &item{ID: 1}, nil
		},
		Create: func(ctx context.Context) (*item, error) {
			return nil, errors.New("create must not run")
		},
	}

	for i := 0; i < 3; i++ {
		_, _, err := Ensure(context.Background(), memo.Wrap(step))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, finds)

	v, ok := memo.Get("sape: 1")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.ID)
}

func TestMemo_SkipsFailures(t *testing.T) {
	memo := NewMemo[item]()
	step := memo.Wrap(Step[item]{
		Kind:   "order",
		Name:   "o",
		Find:   func(ctx context.Context) (*item, error) { return nil, errors.New("timeout") },
		Create: func(ctx context.Context) (*item, error) { return nil, nil },
	})

	_, _, err := Ensure(context.Background(), step)
	assert.Error(t, err)
	assert.Equal(t, 0, memo.Len())
}
