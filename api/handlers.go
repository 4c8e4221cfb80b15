/*
handlers.go - HTTP API handlers for the reconciliation service

PURPOSE:
  Exposes the reconciliation engine via REST. Handlers do the I/O the
  engine refuses to: they fetch the range-scoped record sets from the
  store, call the pure functions, and serialize the result.

ENDPOINTS:
  Attendance:
    GET  /api/employees/{id}/attendance   Reconciliation report for a range
    POST /api/employees/{id}/punches      Record a presence punch

  Leave:
    GET  /api/employees/{id}/leave-balance          Balance for a leave type
    POST /api/leave-requests                        Submit a request
    GET  /api/leave-requests/pending                List pending requests
    POST /api/leave-requests/{id}/approve           Approve
    POST /api/leave-requests/{id}/reject            Reject

  Reference data:
    GET/POST /api/holidays, DELETE /api/holidays/{id}
    GET/POST /api/leave-types

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: invalid dates/ranges/durations/cadences
  - 404: unknown leave type, request, or holiday
  - 409: deciding an already-decided request
  - 500: store failures

WORKED-HOURS POLICY:
  A malformed duration on one punch must not blank a whole report: the
  report handler skips the offending punch, logs a warning, and counts
  it in the summary's skipped_hours.
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yash91989201/team-sync-sub001/engine"
	"github.com/yash91989201/team-sync-sub001/leave"
	"github.com/yash91989201/team-sync-sub001/store"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store store.Store

	// now is injectable for tests; defaults to engine.Today.
	now func() engine.Day
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(s store.Store) *Handler {
	return &Handler{Store: s, now: engine.Today}
}

// =============================================================================
// ATTENDANCE HANDLERS
// =============================================================================

// GetAttendanceReport classifies every day of ?from=..&to=.. for an employee.
// GET /api/employees/{id}/attendance?from=2024-01-01&to=2024-01-31
func (h *Handler) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	from, to, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	holidays, err := h.Store.HolidaysInRange(ctx, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}
	leaves, err := h.Store.ApprovedLeaveOverlapping(ctx, employeeID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave requests", err)
		return
	}
	punches, err := h.Store.PunchesInRange(ctx, employeeID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load attendance", err)
		return
	}

	rows, err := engine.ResolveGaps(employeeID, from, to, holidays, leaves, punches)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid range", err)
		return
	}

	report := AttendanceReportDTO{
		EmployeeID: string(employeeID),
		From:       from.String(),
		To:         to.String(),
		Rows:       make([]ReconciliationRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, toRowDTO(row))
		report.Summary.Days++
		if row.Present {
			report.Summary.Present++
		}
		if row.Holiday {
			report.Summary.Holidays++
		}
		if row.LeaveDay {
			report.Summary.LeaveDays++
		}
		if row.OffDay {
			report.Summary.OffDays++
		}
		if row.Gap {
			report.Summary.Gaps++
		}
	}

	worked, skipped := totalHoursSkippingBad(employeeID, punches)
	report.Summary.WorkedHours = worked.String()
	report.Summary.SkippedHours = skipped

	writeJSON(w, http.StatusOK, report)
}

// totalHoursSkippingBad totals worked hours, dropping punches whose
// duration string fails to parse. One bad row should not block the
// whole aggregate; the skip is logged and surfaced in the summary.
func totalHoursSkippingBad(employeeID engine.EmployeeID, punches []engine.AttendancePunch) (decimal.Decimal, int) {
	total := decimal.Zero
	skipped := 0
	for _, p := range punches {
		if p.WorkedHours == nil {
			continue
		}
		hours, err := engine.ParseWorkHours(*p.WorkedHours)
		if err != nil {
			log.Printf("warning: skipping punch %s for %s on %s: %v", p.ID, employeeID, p.Date, err)
			skipped++
			continue
		}
		total = total.Add(hours)
	}
	return total.Round(2), skipped
}

// RecordPunch records presence (and optionally worked hours) for a day.
// POST /api/employees/{id}/punches
func (h *Handler) RecordPunch(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	var req RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := engine.ParseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	if req.WorkedHours != nil {
		if _, err := engine.ParseWorkHours(*req.WorkedHours); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid worked_hours (use H:MM:SS)", err)
			return
		}
	}

	punch := engine.AttendancePunch{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Date:        date,
		WorkedHours: req.WorkedHours,
	}
	if err := h.Store.RecordPunch(r.Context(), punch); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record punch", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": punch.ID})
}

// =============================================================================
// LEAVE BALANCE HANDLERS
// =============================================================================

// GetLeaveBalance computes the current-window balance for one leave type.
// GET /api/employees/{id}/leave-balance?type=lt-1&anchor=2023-01-01&as_of=2024-03-15
// anchor defaults to the start of the current year; as_of defaults to today.
func (h *Handler) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	typeID := r.URL.Query().Get("type")
	if typeID == "" {
		writeError(w, http.StatusBadRequest, "Missing type parameter", nil)
		return
	}

	lt, err := h.Store.LeaveType(ctx, typeID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Leave type not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave type", err)
		return
	}

	asOf := h.now()
	if s := r.URL.Query().Get("as_of"); s != "" {
		if asOf, err = engine.ParseDay(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of format (use YYYY-MM-DD)", err)
			return
		}
	}
	anchor := engine.NewDay(asOf.Year(), 1, 1)
	if s := r.URL.Query().Get("anchor"); s != "" {
		if anchor, err = engine.ParseDay(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid anchor format (use YYYY-MM-DD)", err)
			return
		}
	}

	requests, err := h.Store.LeaveRequestsForEmployee(ctx, employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave requests", err)
		return
	}

	balance, err := leave.ComputeBalance(lt, anchor, asOf, requests)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to compute balance", err)
		return
	}

	writeJSON(w, http.StatusOK, LeaveBalanceDTO{
		LeaveTypeID:  balance.LeaveTypeID,
		PeriodStart:  balance.Period.Start.String(),
		PeriodEnd:    balance.Period.End.String(),
		CadenceLabel: lt.Cadence.Label(),
		Allowed:      balance.Allowed.String(),
		Used:         balance.Used.String(),
		Remaining:    balance.Remaining.String(),
		CarriedOver:  balance.CarriedOver.String(),
	})
}

// =============================================================================
// LEAVE REQUEST HANDLERS
// =============================================================================

// SubmitLeaveRequest creates a pending leave request.
// POST /api/leave-requests
func (h *Handler) SubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if body.EmployeeID == "" || body.LeaveTypeID == "" {
		writeError(w, http.StatusBadRequest, "employee_id and leave_type_id are required", nil)
		return
	}

	from, err := engine.ParseDay(body.FromDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from_date format (use YYYY-MM-DD)", err)
		return
	}
	to, err := engine.ParseDay(body.ToDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to_date format (use YYYY-MM-DD)", err)
		return
	}

	if _, err := h.Store.LeaveType(ctx, body.LeaveTypeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Leave type not found", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load leave type", err)
		}
		return
	}

	days, err := leave.RequestDays(from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave range", err)
		return
	}

	req := engine.LeaveRequest{
		ID:          uuid.NewString(),
		EmployeeID:  engine.EmployeeID(body.EmployeeID),
		LeaveTypeID: body.LeaveTypeID,
		FromDate:    from,
		ToDate:      to,
		LeaveDays:   days,
		Status:      engine.LeavePending,
		Reason:      body.Reason,
	}
	if err := leave.ValidateRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave request", err)
		return
	}

	if err := h.Store.CreateLeaveRequest(ctx, req); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create leave request", err)
		return
	}

	writeJSON(w, http.StatusCreated, toLeaveRequestDTO(req))
}

// ListPendingLeaveRequests returns requests awaiting a decision.
// GET /api/leave-requests/pending
func (h *Handler) ListPendingLeaveRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Store.PendingLeaveRequests(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leave requests", err)
		return
	}

	dtos := make([]LeaveRequestDTO, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, toLeaveRequestDTO(req))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ApproveLeaveRequest approves a pending request.
// POST /api/leave-requests/{id}/approve
func (h *Handler) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decideLeaveRequest(w, r, true)
}

// RejectLeaveRequest rejects a pending request.
// POST /api/leave-requests/{id}/reject
func (h *Handler) RejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decideLeaveRequest(w, r, false)
}

func (h *Handler) decideLeaveRequest(w http.ResponseWriter, r *http.Request, approve bool) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	req, err := h.Store.LeaveRequest(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Leave request not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave request", err)
		return
	}

	if err := leave.Decide(&req, approve); err != nil {
		writeError(w, http.StatusConflict, "Leave request already decided", err)
		return
	}
	if err := h.Store.SetLeaveRequestStatus(ctx, id, req.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update leave request", err)
		return
	}

	writeJSON(w, http.StatusOK, toLeaveRequestDTO(req))
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the holidays of ?year= (default: current year).
// GET /api/holidays?year=2024
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	if s := r.URL.Query().Get("year"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	holidays, err := h.Store.ListHolidays(r.Context(), year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, holiday := range holidays {
		dtos = append(dtos, HolidayDTO{ID: holiday.ID, Date: holiday.Date.String(), Name: holiday.Name})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday adds a holiday to the calendar.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	date, err := engine.ParseDay(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	holiday := engine.Holiday{ID: uuid.NewString(), Date: date, Name: req.Name}
	if err := h.Store.CreateHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, HolidayDTO{ID: holiday.ID, Date: holiday.Date.String(), Name: holiday.Name})
}

// DeleteHoliday removes a holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteHoliday(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Holiday not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// LEAVE TYPE HANDLERS
// =============================================================================

// ListLeaveTypes returns all configured leave types.
// GET /api/leave-types
func (h *Handler) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Store.ListLeaveTypes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leave types", err)
		return
	}

	dtos := make([]LeaveTypeDTO, 0, len(types))
	for _, lt := range types {
		dtos = append(dtos, toLeaveTypeDTO(lt))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateLeaveType configures a new leave type.
// POST /api/leave-types
func (h *Handler) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}
	if req.DaysAllowed < 0 {
		writeError(w, http.StatusBadRequest, "days_allowed must not be negative", nil)
		return
	}

	lt := engine.LeaveType{
		ID:   uuid.NewString(),
		Name: req.Name,
		Cadence: engine.Cadence{
			Unit:  engine.CadenceUnit(req.RenewUnit),
			Count: req.RenewCount,
		},
		CarryOver:   req.CarryOver,
		PaidLeave:   req.PaidLeave,
		DaysAllowed: req.DaysAllowed,
	}
	if err := lt.Cadence.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid renewal cadence", err)
		return
	}

	if err := h.Store.CreateLeaveType(r.Context(), lt); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create leave type", err)
		return
	}

	writeJSON(w, http.StatusCreated, toLeaveTypeDTO(lt))
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) parseRange(w http.ResponseWriter, r *http.Request) (from, to engine.Day, ok bool) {
	var err error
	if from, err = engine.ParseDay(r.URL.Query().Get("from")); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from format (use YYYY-MM-DD)", err)
		return engine.Day{}, engine.Day{}, false
	}
	if to, err = engine.ParseDay(r.URL.Query().Get("to")); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to format (use YYYY-MM-DD)", err)
		return engine.Day{}, engine.Day{}, false
	}
	if from.After(to) {
		writeError(w, http.StatusBadRequest, "Invalid range", &engine.RangeError{Start: from, End: to})
		return engine.Day{}, engine.Day{}, false
	}
	return from, to, true
}

func toRowDTO(row engine.ReconciliationRow) ReconciliationRowDTO {
	return ReconciliationRowDTO{
		Date:           row.Date.String(),
		Present:        row.Present,
		Holiday:        row.Holiday,
		LeaveDay:       row.LeaveDay,
		OffDay:         row.OffDay,
		Gap:            row.Gap,
		HolidayName:    row.HolidayName,
		LeaveRequestID: row.LeaveRequestID,
	}
}

func toLeaveRequestDTO(req engine.LeaveRequest) LeaveRequestDTO {
	return LeaveRequestDTO{
		ID:          req.ID,
		EmployeeID:  string(req.EmployeeID),
		LeaveTypeID: req.LeaveTypeID,
		FromDate:    req.FromDate.String(),
		ToDate:      req.ToDate.String(),
		LeaveDays:   req.LeaveDays,
		Status:      string(req.Status),
		Reason:      req.Reason,
	}
}

func toLeaveTypeDTO(lt engine.LeaveType) LeaveTypeDTO {
	return LeaveTypeDTO{
		ID:           lt.ID,
		Name:         lt.Name,
		RenewUnit:    string(lt.Cadence.Unit),
		RenewCount:   lt.Cadence.Count,
		CadenceLabel: lt.Cadence.Label(),
		CarryOver:    lt.CarryOver,
		PaidLeave:    lt.PaidLeave,
		DaysAllowed:  lt.DaysAllowed,
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
