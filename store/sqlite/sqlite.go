/*
Package sqlite provides the SQLite-backed implementation of the storage
interfaces.

KEY TABLES:
  holidays:       Admin-maintained holiday calendar
  leave_types:    Renewal cadence and allowance per leave type
  leave_requests: Requests with pending/approved/rejected status
  attendance:     One punch row per employee per day

DATES:
  All dates are stored as "2006-01-02" TEXT. Range predicates compare
  lexicographically, which is correct for this format.

INDEXES:
  idx_attendance_employee_date and idx_leave_requests_employee back the
  hot path: the per-request range queries feeding the gap resolver.

WAL MODE:
  Opened with WAL and foreign keys on, matching how the service runs it
  in production. Use ":memory:" for tests.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yash91989201/team-sync-sub001/engine"
	"github.com/yash91989201/team-sync-sub001/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (creating if necessary) the database at dbPath and migrates
// the schema. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_holidays_date ON holidays(date);

	CREATE TABLE IF NOT EXISTS leave_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		renew_unit TEXT NOT NULL,
		renew_count INTEGER NOT NULL,
		carry_over INTEGER NOT NULL DEFAULT 0,
		paid_leave INTEGER NOT NULL DEFAULT 0,
		days_allowed INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leave_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		leave_type_id TEXT NOT NULL REFERENCES leave_types(id),
		from_date TEXT NOT NULL,
		to_date TEXT NOT NULL,
		leave_days INTEGER NOT NULL,
		status TEXT NOT NULL,
		reason TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_leave_requests_employee
		ON leave_requests(employee_id, from_date);
	CREATE INDEX IF NOT EXISTS idx_leave_requests_status
		ON leave_requests(status);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		date TEXT NOT NULL,
		worked_hours TEXT
	);
	-- One punch per employee per day: presence is row existence.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_employee_date
		ON attendance(employee_id, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) CreateHoliday(ctx context.Context, h engine.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (id, date, name) VALUES (?, ?, ?)`,
		h.ID, h.Date.String(), h.Name)
	if err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}
	return nil
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context, year int) ([]engine.Holiday, error) {
	from := engine.NewDay(year, 1, 1)
	to := engine.NewDay(year, 12, 31)
	return s.HolidaysInRange(ctx, from, to)
}

func (s *Store) HolidaysInRange(ctx context.Context, from, to engine.Day) ([]engine.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, name FROM holidays WHERE date >= ? AND date <= ? ORDER BY date`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []engine.Holiday
	for rows.Next() {
		var h engine.Holiday
		var date string
		if err := rows.Scan(&h.ID, &date, &h.Name); err != nil {
			return nil, err
		}
		if h.Date, err = engine.ParseDay(date); err != nil {
			return nil, fmt.Errorf("holiday %s: %w", h.ID, err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// =============================================================================
// LEAVE TYPES
// =============================================================================

func (s *Store) CreateLeaveType(ctx context.Context, lt engine.LeaveType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leave_types (id, name, renew_unit, renew_count, carry_over, paid_leave, days_allowed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lt.ID, lt.Name, string(lt.Cadence.Unit), lt.Cadence.Count,
		boolToInt(lt.CarryOver), boolToInt(lt.PaidLeave), lt.DaysAllowed)
	if err != nil {
		return fmt.Errorf("create leave type: %w", err)
	}
	return nil
}

func (s *Store) LeaveType(ctx context.Context, id string) (engine.LeaveType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, renew_unit, renew_count, carry_over, paid_leave, days_allowed
		 FROM leave_types WHERE id = ?`, id)
	lt, err := scanLeaveType(row)
	if err == sql.ErrNoRows {
		return engine.LeaveType{}, store.ErrNotFound
	}
	return lt, err
}

func (s *Store) ListLeaveTypes(ctx context.Context) ([]engine.LeaveType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, renew_unit, renew_count, carry_over, paid_leave, days_allowed
		 FROM leave_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query leave types: %w", err)
	}
	defer rows.Close()

	var types []engine.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLeaveType(row scanner) (engine.LeaveType, error) {
	var lt engine.LeaveType
	var unit string
	var carryOver, paidLeave int
	err := row.Scan(&lt.ID, &lt.Name, &unit, &lt.Cadence.Count, &carryOver, &paidLeave, &lt.DaysAllowed)
	if err != nil {
		return engine.LeaveType{}, err
	}
	lt.Cadence.Unit = engine.CadenceUnit(unit)
	lt.CarryOver = carryOver != 0
	lt.PaidLeave = paidLeave != 0
	return lt, nil
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func (s *Store) CreateLeaveRequest(ctx context.Context, req engine.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leave_requests (id, employee_id, leave_type_id, from_date, to_date, leave_days, status, reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, string(req.EmployeeID), req.LeaveTypeID,
		req.FromDate.String(), req.ToDate.String(), req.LeaveDays,
		string(req.Status), req.Reason)
	if err != nil {
		return fmt.Errorf("create leave request: %w", err)
	}
	return nil
}

func (s *Store) LeaveRequest(ctx context.Context, id string) (engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reqs, err := s.queryLeaveRequests(ctx, `WHERE id = ?`, id)
	if err != nil {
		return engine.LeaveRequest{}, err
	}
	if len(reqs) == 0 {
		return engine.LeaveRequest{}, store.ErrNotFound
	}
	return reqs[0], nil
}

func (s *Store) LeaveRequestsForEmployee(ctx context.Context, employeeID engine.EmployeeID) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryLeaveRequests(ctx, `WHERE employee_id = ? ORDER BY from_date`, string(employeeID))
}

func (s *Store) PendingLeaveRequests(ctx context.Context) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryLeaveRequests(ctx, `WHERE status = ? ORDER BY from_date`, string(engine.LeavePending))
}

func (s *Store) SetLeaveRequestStatus(ctx context.Context, id string, status engine.LeaveStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE leave_requests SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("set leave request status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ApprovedLeaveOverlapping(ctx context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryLeaveRequests(ctx,
		`WHERE employee_id = ? AND status = ? AND from_date <= ? AND to_date >= ? ORDER BY from_date`,
		string(employeeID), string(engine.LeaveApproved), to.String(), from.String())
}

func (s *Store) queryLeaveRequests(ctx context.Context, where string, args ...any) ([]engine.LeaveRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, leave_type_id, from_date, to_date, leave_days, status, reason
		 FROM leave_requests `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query leave requests: %w", err)
	}
	defer rows.Close()

	var reqs []engine.LeaveRequest
	for rows.Next() {
		var req engine.LeaveRequest
		var employeeID, fromDate, toDate, status string
		var reason sql.NullString
		if err := rows.Scan(&req.ID, &employeeID, &req.LeaveTypeID,
			&fromDate, &toDate, &req.LeaveDays, &status, &reason); err != nil {
			return nil, err
		}
		req.EmployeeID = engine.EmployeeID(employeeID)
		req.Status = engine.LeaveStatus(status)
		req.Reason = reason.String
		if req.FromDate, err = engine.ParseDay(fromDate); err != nil {
			return nil, fmt.Errorf("leave request %s: %w", req.ID, err)
		}
		if req.ToDate, err = engine.ParseDay(toDate); err != nil {
			return nil, fmt.Errorf("leave request %s: %w", req.ID, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (s *Store) RecordPunch(ctx context.Context, p engine.AttendancePunch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var workedHours any
	if p.WorkedHours != nil {
		workedHours = *p.WorkedHours
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attendance (id, employee_id, date, worked_hours) VALUES (?, ?, ?, ?)
		 ON CONFLICT(employee_id, date) DO UPDATE SET worked_hours = excluded.worked_hours`,
		p.ID, string(p.EmployeeID), p.Date.String(), workedHours)
	if err != nil {
		return fmt.Errorf("record punch: %w", err)
	}
	return nil
}

func (s *Store) PunchesInRange(ctx context.Context, employeeID engine.EmployeeID, from, to engine.Day) ([]engine.AttendancePunch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, date, worked_hours FROM attendance
		 WHERE employee_id = ? AND date >= ? AND date <= ? ORDER BY date`,
		string(employeeID), from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	defer rows.Close()

	var punches []engine.AttendancePunch
	for rows.Next() {
		var p engine.AttendancePunch
		var empID, date string
		var workedHours sql.NullString
		if err := rows.Scan(&p.ID, &empID, &date, &workedHours); err != nil {
			return nil, err
		}
		p.EmployeeID = engine.EmployeeID(empID)
		if workedHours.Valid {
			wh := workedHours.String
			p.WorkedHours = &wh
		}
		if p.Date, err = engine.ParseDay(date); err != nil {
			return nil, fmt.Errorf("punch %s: %w", p.ID, err)
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
