// Package operation runs a store mutation as a simulated remote call: it waits
// the configured latency, tracks the call as a pending operation, records the
// outcome on the store and announces it through the notifier.
package operation

import (
	"context"
	"errors"
	"time"

	"tourbook/infras/metrics"
	"tourbook/shared/failure"
	"tourbook/shared/notification"
	"tourbook/shared/store"

	"github.com/rs/zerolog/log"
)

const failureTitle = "Error"

// Tracker is the request state of a store. *store.Store satisfies it for any entity.
type Tracker interface {
	Name() string
	AwaitLoad(ctx context.Context) error
	Begin(kind string) *store.Operation
	Finish(op *store.Operation, err error)
	SetError(msg string)
	ClearError()
	Len() int
}

// Func performs the mutation and describes its success.
type Func func(ctx context.Context) (notification.Notification, error)

type Runner struct {
	latency  time.Duration
	notifier notification.Notifier
	metrics  metrics.Recorder
}

func NewRunner(latency time.Duration, notifier notification.Notifier, recorder metrics.Recorder) Runner {
	return Runner{
		latency:  latency,
		notifier: notifier,
		metrics:  recorder,
	}
}

// Run executes fn against tracker once its load finished, so ids are never
// derived from a collection that is about to be replaced. Failures are
// normalised, kept as the store error and notified; a cancelled caller only
// ends the operation.
func (r Runner) Run(ctx context.Context, tracker Tracker, kind string, fn Func) error {
	started := time.Now()
	op := tracker.Begin(kind)
	tracker.ClearError()

	err := tracker.AwaitLoad(ctx)
	if err == nil {
		err = store.Wait(ctx, r.latency)
	}

	var done notification.Notification
	if err == nil {
		done, err = fn(ctx)
	}

	tracker.Finish(op, err)
	r.metrics.Observe(ctx, tracker.Name(), kind, err == nil, time.Since(started))
	r.metrics.SetEntities(tracker.Name(), tracker.Len())

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Str("entity", tracker.Name()).Str("operation", kind).Msg("operation abandoned by caller")

		return err
	}

	if err != nil {
		fail := failure.Normalize(err)
		tracker.SetError(fail.Message)
		r.notifier.Notify(ctx, notification.Failure(failureTitle, fail.Message))

		log.Error().Err(err).Str("entity", tracker.Name()).Str("operation", kind).Str("operation_id", op.ID).Msg("operation failed")

		return fail
	}

	r.notifier.Notify(ctx, done)

	return nil
}
