package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobRejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	err := s.AddJob("broken", 0, func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	ran := make(chan struct{}, 1)

	require.NoError(t, s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))

	s.Start(context.Background())
	s.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunOnceSurvivesFailureAndPanic(t *testing.T) {
	s := NewScheduler()
	var last atomic.Bool

	require.NoError(t, s.AddJob("fails", time.Minute, func(ctx context.Context) error { return errors.New("boom") }))
	require.NoError(t, s.AddJob("panics", time.Minute, func(ctx context.Context) error { panic("oops") }))
	require.NoError(t, s.AddJob("last", time.Minute, func(ctx context.Context) error {
		last.Store(true)
		return nil
	}))

	s.RunOnce(context.Background())
	assert.True(t, last.Load())
}

type fakeAttendanceService struct {
	attendance.AttendanceService
	date time.Time
	err  error
}

func (f *fakeAttendanceService) MarkAbsent(ctx context.Context, date time.Time) (attendance.MarkAbsentResponse, error) {
	f.date = date
	return attendance.MarkAbsentResponse{Inserted: 3}, f.err
}

func TestAttendanceJobs_MarkAbsentEmployeesUsesYesterday(t *testing.T) {
	svc := &fakeAttendanceService{}
	jobs := NewAttendanceJobs(svc, time.Hour)
	jobs.now = func() time.Time { return time.Date(2024, 5, 15, 0, 10, 0, 0, time.UTC) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Equal(t, "2024-05-14", svc.date.Format(time.DateOnly))
}

func TestAttendanceJobs_RegisterAndPropagateError(t *testing.T) {
	svc := &fakeAttendanceService{err: errors.New("db down")}
	jobs := NewAttendanceJobs(svc, time.Hour)

	s := NewScheduler()
	require.NoError(t, jobs.RegisterJobs(s))
	require.Len(t, s.jobs, 1)
	assert.Equal(t, "mark_absent_employees", s.jobs[0].Name)

	err := jobs.MarkAbsentEmployees(context.Background())
	assert.ErrorContains(t, err, "db down")
}
