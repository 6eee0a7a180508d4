package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"promptly-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecycleBin struct {
	service.IRecycleBinService
	sweeps atomic.Int32
}

func (s *stubRecycleBin) CleanupExpiredItems(ctx context.Context) (int, error) {
	s.sweeps.Add(1)
	return 0, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestSchedulerSweepsOnStartup(t *testing.T) {
	bin := &stubRecycleBin{}
	sched := NewCleanupScheduler(bin, nopLogger{})

	require.NoError(t, sched.Start(context.Background(), "0 */6 * * *"))
	defer sched.Stop()

	assert.Eventually(t, func() bool {
		return bin.sweeps.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	bin := &stubRecycleBin{}
	sched := NewCleanupScheduler(bin, nopLogger{})

	err := sched.Start(context.Background(), "not a schedule")
	assert.Error(t, err)
}

func TestSchedulerCoalescesPendingTicks(t *testing.T) {
	bin := &stubRecycleBin{}
	sched := NewCleanupScheduler(bin, nopLogger{})

	// Fill the tick channel before the worker runs; extra ticks are dropped,
	// not queued.
	sched.ticks <- struct{}{}
	select {
	case sched.ticks <- struct{}{}:
		t.Fatal("tick channel should hold at most one pending sweep")
	default:
	}
}
