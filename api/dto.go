/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the engine's domain
  types from the external contract. Dates travel as "2006-01-02"
  strings; worked-hours totals as decimal strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers (and the leave package), not in DTOs.
  DTOs are pure data carriers.
*/
package api

// =============================================================================
// ATTENDANCE
// =============================================================================

// ReconciliationRowDTO is one classified day of an attendance report.
type ReconciliationRowDTO struct {
	Date           string `json:"date"`
	Present        bool   `json:"present"`
	Holiday        bool   `json:"holiday"`
	LeaveDay       bool   `json:"leave_day"`
	OffDay         bool   `json:"off_day"`
	Gap            bool   `json:"gap"`
	HolidayName    string `json:"holiday_name,omitempty"`
	LeaveRequestID string `json:"leave_request_id,omitempty"`
}

// AttendanceReportDTO is the full reconciliation result for a range.
type AttendanceReportDTO struct {
	EmployeeID string                 `json:"employee_id"`
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Rows       []ReconciliationRowDTO `json:"rows"`
	Summary    AttendanceSummaryDTO   `json:"summary"`
}

// AttendanceSummaryDTO aggregates the report's per-day flags.
type AttendanceSummaryDTO struct {
	Days          int    `json:"days"`
	Present       int    `json:"present"`
	Holidays      int    `json:"holidays"`
	LeaveDays     int    `json:"leave_days"`
	OffDays       int    `json:"off_days"`
	Gaps          int    `json:"gaps"`
	WorkedHours   string `json:"worked_hours"`
	SkippedHours  int    `json:"skipped_hours,omitempty"`
}

// RecordPunchRequest records presence for a day.
type RecordPunchRequest struct {
	Date        string  `json:"date"`
	WorkedHours *string `json:"worked_hours,omitempty"`
}

// =============================================================================
// LEAVE
// =============================================================================

// LeaveBalanceDTO is the computed standing for one leave type.
type LeaveBalanceDTO struct {
	LeaveTypeID  string `json:"leave_type_id"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	CadenceLabel string `json:"cadence_label"`
	Allowed      string `json:"allowed"`
	Used         string `json:"used"`
	Remaining    string `json:"remaining"`
	CarriedOver  string `json:"carried_over"`
}

// SubmitLeaveRequest is the request body for a new leave request.
type SubmitLeaveRequest struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	Reason      string `json:"reason,omitempty"`
}

// LeaveRequestDTO represents a leave request in API responses.
type LeaveRequestDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	LeaveDays   int    `json:"leave_days"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// CreateLeaveTypeRequest configures a new leave type.
type CreateLeaveTypeRequest struct {
	Name        string `json:"name"`
	RenewUnit   string `json:"renew_unit"`
	RenewCount  int    `json:"renew_count"`
	CarryOver   bool   `json:"carry_over"`
	PaidLeave   bool   `json:"paid_leave"`
	DaysAllowed int    `json:"days_allowed"`
}

// LeaveTypeDTO represents a leave type in API responses.
type LeaveTypeDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RenewUnit    string `json:"renew_unit"`
	RenewCount   int    `json:"renew_count"`
	CadenceLabel string `json:"cadence_label"`
	CarryOver    bool   `json:"carry_over"`
	PaidLeave    bool   `json:"paid_leave"`
	DaysAllowed  int    `json:"days_allowed"`
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// CreateHolidayRequest adds a holiday to the calendar.
type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
