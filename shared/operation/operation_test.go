package operation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	metricsMocks "tourbook/infras/metrics/mocks"
	"tourbook/shared/failure"
	"tourbook/shared/notification"
	"tourbook/shared/notification/mocks"
	"tourbook/shared/operation"
	"tourbook/shared/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore() *store.Store[string] {
	return store.NewWithItems("palabras", func(s string) string { return s }, []string{"a"})
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	runner := operation.NewRunner(0, notifier, metricsMocks.NewRecorder())
	st := newStore()
	st.SetError("previous failure")

	done := notification.Success("Creado", "b agregado")
	notifier.EXPECT().Notify(gomock.Any(), done)

	err := runner.Run(context.Background(), st, store.OperationCreate, func(context.Context) (notification.Notification, error) {
		_, err := st.Insert(func([]string) (string, error) { return "b", nil })

		return done, err
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, st.Snapshot())
	assert.Empty(t, st.Error())
	assert.False(t, st.Loading())
	assert.Empty(t, st.Pending())
}

func TestRun_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	runner := operation.NewRunner(0, notifier, metricsMocks.NewRecorder())
	st := newStore()

	notifier.EXPECT().Notify(gomock.Any(), notification.Failure("Error", "palabra not found"))

	err := runner.Run(context.Background(), st, store.OperationDelete, func(context.Context) (notification.Notification, error) {
		return notification.Notification{}, failure.NotFound("palabra not found")
	})

	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "palabra not found", st.Error())
	assert.False(t, st.Loading())
}

func TestRun_PlainErrorBecomesInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	runner := operation.NewRunner(0, notifier, metricsMocks.NewRecorder())
	st := newStore()

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	err := runner.Run(context.Background(), st, store.OperationUpdate, func(context.Context) (notification.Notification, error) {
		return notification.Notification{}, errors.New("backend unavailable")
	})

	assert.Equal(t, 500, failure.GetCode(err))
	assert.Equal(t, "backend unavailable", st.Error())
}

func TestRun_PendingWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	runner := operation.NewRunner(50*time.Millisecond, notifier, metricsMocks.NewRecorder())
	st := newStore()

	notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	result := make(chan error, 1)
	go func() {
		result <- runner.Run(context.Background(), st, store.OperationCreate, func(context.Context) (notification.Notification, error) {
			return notification.Success("ok", ""), nil
		})
	}()

	require.Eventually(t, func() bool { return len(st.Pending()) == 1 }, time.Second, time.Millisecond)
	assert.True(t, st.Loading())
	assert.Equal(t, store.OperationCreate, st.Pending()[0].Kind)

	require.NoError(t, <-result)
	assert.False(t, st.Loading())
}

func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	runner := operation.NewRunner(time.Second, notifier, metricsMocks.NewRecorder())
	st := newStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := runner.Run(ctx, st, store.OperationCreate, func(context.Context) (notification.Notification, error) {
		called = true

		return notification.Notification{}, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Empty(t, st.Error())
	assert.Equal(t, []string{"a"}, st.Snapshot())
}
