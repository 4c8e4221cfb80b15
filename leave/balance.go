/*
Package leave specializes the reconciliation engine for leave
entitlements: request validation and per-window balance computation.

BALANCE MODEL:
  A leave type renews on its cadence (engine.CurrentBalancePeriod).
  Within the current window:

    Used      = sum of LeaveDays of approved requests starting in the window
    Allowed   = DaysAllowed (+ carried-over unused days from the previous
                window when the type allows carry-over)
    Remaining = Allowed - Used

  A request is attributed to the window its FromDate falls in; a request
  straddling a boundary consumes from the window it starts in.
*/
package leave

import (
	"github.com/shopspring/decimal"

	"github.com/yash91989201/team-sync-sub001/engine"
)

// Balance is the computed leave standing for one type in the current
// renewal window. Day counts are decimals so half-day policies can be
// layered in without changing the type.
type Balance struct {
	LeaveTypeID string
	Period      engine.Period
	Allowed     decimal.Decimal
	Used        decimal.Decimal
	Remaining   decimal.Decimal
	CarriedOver decimal.Decimal
}

// ComputeBalance locates the renewal window containing now (anchored at
// anchor, typically the balance record's creation date) and tallies the
// approved requests against the type's allowance. Requests with other
// leave types or non-approved status are ignored.
func ComputeBalance(
	lt engine.LeaveType,
	anchor, now engine.Day,
	requests []engine.LeaveRequest,
) (Balance, error) {
	period, err := engine.CurrentBalancePeriod(lt.Cadence, anchor, now)
	if err != nil {
		return Balance{}, err
	}

	allowed := decimal.NewFromInt(int64(lt.DaysAllowed))
	carried := decimal.Zero

	if lt.CarryOver {
		prev, ok, err := engine.PreviousBalancePeriod(lt.Cadence, anchor, now)
		if err != nil {
			return Balance{}, err
		}
		if ok {
			unused := allowed.Sub(usedInPeriod(lt.ID, prev, requests))
			if unused.IsPositive() {
				carried = unused
			}
		}
	}

	used := usedInPeriod(lt.ID, period, requests)
	totalAllowed := allowed.Add(carried)

	return Balance{
		LeaveTypeID: lt.ID,
		Period:      period,
		Allowed:     totalAllowed,
		Used:        used,
		Remaining:   totalAllowed.Sub(used),
		CarriedOver: carried,
	}, nil
}

func usedInPeriod(leaveTypeID string, period engine.Period, requests []engine.LeaveRequest) decimal.Decimal {
	used := decimal.Zero
	for _, r := range requests {
		if r.Status != engine.LeaveApproved || r.LeaveTypeID != leaveTypeID {
			continue
		}
		if period.Contains(r.FromDate) {
			used = used.Add(decimal.NewFromInt(int64(r.LeaveDays)))
		}
	}
	return used
}
