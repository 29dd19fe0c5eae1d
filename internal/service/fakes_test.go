package service

import (
	"context"
	"sync"
	"time"

	"controlling_dishwasher/internal/models"
)

// fakeStateRepo satisfies repository.StateRepo.
type fakeStateRepo struct {
	loadResp   models.ApplianceState
	loadErr    error
	saveErr    error
	savedCalls []models.ApplianceState
}

func (f *fakeStateRepo) Load(ctx context.Context) (models.ApplianceState, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeStateRepo) Save(ctx context.Context, s models.ApplianceState) error {
	f.savedCalls = append(f.savedCalls, s)
	return f.saveErr
}

// memStateRepo keeps the last saved snapshot, like the single sqlite row.
// Load and Save yield between read and write so unguarded updates interleave.
type memStateRepo struct {
	mu sync.Mutex
	st models.ApplianceState
}

func (m *memStateRepo) Load(ctx context.Context) (models.ApplianceState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st, nil
}

func (m *memStateRepo) Save(ctx context.Context, s models.ApplianceState) error {
	time.Sleep(time.Millisecond)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st = s
	return nil
}

// fakeEventRepo satisfies repository.EventRepo and captures List arguments.
type fakeEventRepo struct {
	mu        sync.Mutex
	appendErr error
	appended  []models.ApplianceEvent

	events  []models.ApplianceEvent
	listErr error
	calls   int
	gotFrom time.Time
	gotTo   time.Time
	gotType string
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.ApplianceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.ApplianceEvent, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.listErr
}

func assertWithinTimeWindow(t interface {
	Helper()
	Fatalf(string, ...any)
}, ts, start, end time.Time) {
	t.Helper()
	if ts.Before(start) || ts.After(end) {
		t.Fatalf("time %v not within window [%v, %v]", ts, start, end)
	}
}
