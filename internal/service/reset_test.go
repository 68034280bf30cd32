package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeResetRepo struct {
	reset []int64
	err   error
}

func (r *fakeResetRepo) ResetUser(ctx context.Context, userID int64) error {
	if r.err != nil {
		return r.err
	}
	r.reset = append(r.reset, userID)
	return nil
}

func TestResetServiceResetUser(t *testing.T) {
	tr := &fakeTransactor{}
	repo := &fakeResetRepo{}
	svc := NewResetService(tr, repo, zap.NewNop())

	assert.NoError(t, svc.ResetUser(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.reset)
	assert.Equal(t, 1, tr.calls)

	repo.err = errors.New("connection reset")
	assert.ErrorIs(t, svc.ResetUser(context.Background(), 3), repo.err)
}
