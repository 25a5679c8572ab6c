package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEvery_FiresOncePerPeriod(t *testing.T) {
	s := New(epoch)
	var fires []time.Time
	require.True(t, s.Every("tick", time.Second, func(now time.Time) {
		fires = append(fires, now)
	}))

	assert.Equal(t, 0, s.Advance(999*time.Millisecond))
	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.Equal(t, 4, s.Advance(4500*time.Millisecond))

	require.Len(t, fires, 5)
	for i, at := range fires {
		assert.Equal(t, epoch.Add(time.Duration(i+1)*time.Second), at)
	}
	assert.Equal(t, epoch.Add(5500*time.Millisecond), s.Now())
}

func TestEvery_RejectsNonPositivePeriod(t *testing.T) {
	s := New(epoch)
	assert.False(t, s.Every("off", 0, func(time.Time) {}))
	assert.False(t, s.Every("neg", -time.Second, func(time.Time) {}))
	assert.Equal(t, 0, s.Len())
}

func TestAfter_FiresExactlyOnce(t *testing.T) {
	s := New(epoch)
	count := 0
	s.After("once", 10*time.Second, func(time.Time) { count++ })

	s.Advance(9 * time.Second)
	assert.Equal(t, 0, count)
	_, ok := s.Deadline("once")
	assert.True(t, ok)

	s.Advance(time.Second)
	assert.Equal(t, 1, count)
	_, ok = s.Deadline("once")
	assert.False(t, ok)

	s.Advance(time.Minute)
	assert.Equal(t, 1, count)
}

func TestAfter_ReplacesSameName(t *testing.T) {
	s := New(epoch)
	var got []string
	s.After("shot", 5*time.Second, func(time.Time) { got = append(got, "first") })
	s.After("shot", 8*time.Second, func(time.Time) { got = append(got, "second") })

	assert.Equal(t, 1, s.Len())
	s.Advance(10 * time.Second)
	assert.Equal(t, []string{"second"}, got)
}

func TestCancel_PreventsFire(t *testing.T) {
	s := New(epoch)
	fired := false
	s.After("countdown", time.Second, func(time.Time) { fired = true })

	assert.True(t, s.Cancel("countdown"))
	assert.False(t, s.Cancel("countdown"))
	s.Advance(time.Hour)
	assert.False(t, fired)
}

func TestSelfRescheduling_CancelledFromAnotherTask(t *testing.T) {
	s := New(epoch)
	remaining := 5
	var step TaskFunc
	step = func(time.Time) {
		remaining--
		if remaining > 0 {
			s.After("countdown", time.Second, step)
		}
	}
	s.After("countdown", time.Second, step)
	s.After("abort", 2500*time.Millisecond, func(time.Time) { s.Cancel("countdown") })

	s.Advance(10 * time.Second)
	assert.Equal(t, 3, remaining)
	assert.Equal(t, 0, s.Len())
}

func TestAdvance_OrdersByDeadlineThenRegistration(t *testing.T) {
	s := New(epoch)
	var order []string
	s.Every("b", 2*time.Second, func(time.Time) { order = append(order, "b") })
	s.Every("a", time.Second, func(time.Time) { order = append(order, "a") })
	s.After("c", 2*time.Second, func(time.Time) { order = append(order, "c") })

	s.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b", "a", "c"}, order)
}

func TestAdvance_CallbackSeesOwnDeadline(t *testing.T) {
	s := New(epoch)
	var seen time.Time
	s.After("sample", 1500*time.Millisecond, func(now time.Time) {
		seen = s.Now()
		assert.Equal(t, now, seen)
	})
	s.Advance(3 * time.Second)
	assert.Equal(t, epoch.Add(1500*time.Millisecond), seen)
	assert.Equal(t, epoch.Add(3*time.Second), s.Now())
}

func TestAdvanceTo_IgnoresPast(t *testing.T) {
	s := New(epoch)
	s.Advance(time.Second)
	assert.Equal(t, 0, s.AdvanceTo(epoch))
	assert.Equal(t, epoch.Add(time.Second), s.Now())
	assert.Equal(t, 0, s.Advance(-time.Second))
}

func TestCancelAll(t *testing.T) {
	s := New(epoch)
	s.Every("a", time.Second, func(time.Time) { t.Fatal("a fired after CancelAll") })
	s.After("b", time.Second, func(time.Time) { t.Fatal("b fired after CancelAll") })
	s.CancelAll()
	assert.Equal(t, 0, s.Len())
	s.Advance(time.Minute)
}

func TestDeadlineAndNames(t *testing.T) {
	s := New(epoch)
	s.Every("slow", 5*time.Second, func(time.Time) {})
	s.After("fast", time.Second, func(time.Time) {})

	d, ok := s.Deadline("slow")
	require.True(t, ok)
	assert.Equal(t, epoch.Add(5*time.Second), d)

	_, ok = s.Deadline("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"fast", "slow"}, s.Names())
}
