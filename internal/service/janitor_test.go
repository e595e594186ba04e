package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-wallet/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJanitor_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	topups := mocks.NewMockTopupRepository(ctrl)
	payments := mocks.NewMockExternalPaymentRepository(ctrl)
	j := NewJanitor(topups, payments, nil, zerolog.Nop())
	j.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	topups.EXPECT().ExpireOverdue(ctx, fixedNow).Return(int64(3), nil)
	payments.EXPECT().ExpireOverdue(ctx, fixedNow).Return(int64(1), nil)

	require.NoError(t, j.Sweep(ctx))
}

func TestJanitor_Sweep_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	topups := mocks.NewMockTopupRepository(ctrl)
	payments := mocks.NewMockExternalPaymentRepository(ctrl)
	j := NewJanitor(topups, payments, nil, zerolog.Nop())
	ctx := context.Background()

	topups.EXPECT().ExpireOverdue(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

	err := j.Sweep(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expire topups")
}

func TestJanitor_Start_InvalidSchedule(t *testing.T) {
	j := NewJanitor(nil, nil, nil, zerolog.Nop())

	err := j.Start("every now and then")
	assert.Error(t, err)
}

func TestJanitor_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	topups := mocks.NewMockTopupRepository(ctrl)
	payments := mocks.NewMockExternalPaymentRepository(ctrl)
	j := NewJanitor(topups, payments, nil, zerolog.Nop())

	topups.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	payments.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	require.NoError(t, j.Start("@every 1h"))
	j.Stop()
}
