package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnavailable = errors.New("smtp unavailable")

func fail(context.Context) error    { return errUnavailable }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_Closed(t *testing.T) {
	cb := New("test", Config{MaxRequests: 3, Interval: 10 * time.Second, Timeout: 30 * time.Second})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(context.Background(), succeed))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_Open(t *testing.T) {
	cb := New("test", Config{
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(context.Background(), fail), errUnavailable)
	}
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断器打开时不应该调用实际函数")
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	newTripped := func(t *testing.T) *CircuitBreaker {
		cb := New("test", Config{
			MaxRequests: 1,
			Timeout:     50 * time.Millisecond,
			ReadyToTrip: func(counts Counts) bool { return counts.ConsecutiveFailures >= 3 },
		})
		for i := 0; i < 3; i++ {
			_ = cb.Execute(context.Background(), fail)
		}
		require.Equal(t, StateOpen, cb.State())
		time.Sleep(80 * time.Millisecond)
		require.Equal(t, StateHalfOpen, cb.State())
		return cb
	}

	t.Run("探测成功恢复为CLOSED", func(t *testing.T) {
		cb := newTripped(t)
		require.NoError(t, cb.Execute(context.Background(), succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败重新OPEN", func(t *testing.T) {
		cb := newTripped(t)
		assert.ErrorIs(t, cb.Execute(context.Background(), fail), errUnavailable)
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_IsSuccessful(t *testing.T) {
	errBadAddress := errors.New("invalid address")
	cb := New("test", Config{
		ReadyToTrip: func(counts Counts) bool { return counts.ConsecutiveFailures >= 2 },
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errBadAddress)
		},
	})

	for i := 0; i < 5; i++ {
		err := cb.Execute(context.Background(), func(context.Context) error { return errBadAddress })
		assert.ErrorIs(t, err, errBadAddress)
	}

	assert.Equal(t, StateClosed, cb.State(), "业务错误不计入失败")
	assert.Equal(t, uint32(0), cb.Counts().TotalFailures)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	cb := New("mailer", Config{ReadyToTrip: func(counts Counts) bool { return counts.ConsecutiveFailures >= 1 }})

	var transitions []string
	cb.OnStateChange(func(name string, from, to State) {
		transitions = append(transitions, name+":"+from.String()+"->"+to.String())
	})

	_ = cb.Execute(context.Background(), fail)
	assert.Equal(t, []string{"mailer:CLOSED->OPEN"}, transitions)
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb := New("test", Config{ReadyToTrip: func(Counts) bool { return false }})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = cb.Execute(context.Background(), succeed)
			} else {
				_ = cb.Execute(context.Background(), fail)
			}
		}(i)
	}
	wg.Wait()

	counts := cb.Counts()
	assert.Equal(t, uint32(50), counts.Requests)
	assert.Equal(t, uint32(25), counts.TotalSuccesses)
	assert.Equal(t, uint32(25), counts.TotalFailures)
	assert.InDelta(t, 0.5, counts.FailureRate(), 0.001)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
