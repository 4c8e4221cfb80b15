// Package memory provides an in-memory Store implementation for tests
// and development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yash91989201/team-sync-sub001/engine"
	"github.com/yash91989201/team-sync-sub001/store"
)

// Store implements store.Store with mutex-guarded maps.
type Store struct {
	mu            sync.RWMutex
	holidays      map[string]engine.Holiday
	leaveTypes    map[string]engine.LeaveType
	leaveRequests map[string]engine.LeaveRequest
	punches       map[punchKey]engine.AttendancePunch
}

type punchKey struct {
	EmployeeID engine.EmployeeID
	Date       string
}

func New() *Store {
	return &Store{
		holidays:      make(map[string]engine.Holiday),
		leaveTypes:    make(map[string]engine.LeaveType),
		leaveRequests: make(map[string]engine.LeaveRequest),
		punches:       make(map[punchKey]engine.AttendancePunch),
	}
}

func (s *Store) Close() error { return nil }

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) CreateHoliday(_ context.Context, h engine.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holidays[h.ID] = h
	return nil
}

func (s *Store) DeleteHoliday(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holidays[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.holidays, id)
	return nil
}

func (s *Store) ListHolidays(ctx context.Context, year int) ([]engine.Holiday, error) {
	return s.HolidaysInRange(ctx, engine.NewDay(year, 1, 1), engine.NewDay(year, 12, 31))
}

func (s *Store) HolidaysInRange(_ context.Context, from, to engine.Day) ([]engine.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.Holiday
	for _, h := range s.holidays {
		if h.Date.AfterOrEqual(from) && h.Date.BeforeOrEqual(to) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// =============================================================================
// LEAVE TYPES
// =============================================================================

func (s *Store) CreateLeaveType(_ context.Context, lt engine.LeaveType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaveTypes[lt.ID] = lt
	return nil
}

func (s *Store) LeaveType(_ context.Context, id string) (engine.LeaveType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lt, ok := s.leaveTypes[id]
	if !ok {
		return engine.LeaveType{}, store.ErrNotFound
	}
	return lt, nil
}

func (s *Store) ListLeaveTypes(_ context.Context) ([]engine.LeaveType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]engine.LeaveType, 0, len(s.leaveTypes))
	for _, lt := range s.leaveTypes {
		out = append(out, lt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func (s *Store) CreateLeaveRequest(_ context.Context, req engine.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaveRequests[req.ID] = req
	return nil
}

func (s *Store) LeaveRequest(_ context.Context, id string) (engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.leaveRequests[id]
	if !ok {
		return engine.LeaveRequest{}, store.ErrNotFound
	}
	return req, nil
}

func (s *Store) LeaveRequestsForEmployee(_ context.Context, employeeID engine.EmployeeID) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.LeaveRequest
	for _, req := range s.leaveRequests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out, nil
}

func (s *Store) PendingLeaveRequests(_ context.Context) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.LeaveRequest
	for _, req := range s.leaveRequests {
		if req.Status == engine.LeavePending {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out, nil
}

func (s *Store) SetLeaveRequestStatus(_ context.Context, id string, status engine.LeaveStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.leaveRequests[id]
	if !ok {
		return store.ErrNotFound
	}
	req.Status = status
	s.leaveRequests[id] = req
	return nil
}

func (s *Store) ApprovedLeaveOverlapping(_ context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.LeaveRequest
	for _, req := range s.leaveRequests {
		if req.EmployeeID != employeeID || req.Status != engine.LeaveApproved {
			continue
		}
		if req.FromDate.BeforeOrEqual(to) && req.ToDate.AfterOrEqual(from) {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out, nil
}

func sortRequests(reqs []engine.LeaveRequest) {
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].FromDate.Before(reqs[j].FromDate) })
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (s *Store) RecordPunch(_ context.Context, p engine.AttendancePunch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Same upsert semantics as the sqlite store: one punch per day.
	s.punches[punchKey{p.EmployeeID, p.Date.String()}] = p
	return nil
}

func (s *Store) PunchesInRange(_ context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.AttendancePunch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.AttendancePunch
	for _, p := range s.punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.Date.AfterOrEqual(from) && p.Date.BeforeOrEqual(to) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
