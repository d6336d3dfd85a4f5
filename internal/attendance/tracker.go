// Package attendance tracks per-player date→status history and derives
// calendar reports from it. The per-day report is a projection recomputed on
// read; only the sparse history map is stored.
package attendance

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/roster"
)

// DayRecord is one calendar day in a monthly report.
type DayRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Tracker updates and reads attendance through the roster repository.
type Tracker struct {
	roster roster.Repository
	now    func() time.Time
}

// New creates a Tracker.
func New(r roster.Repository) *Tracker {
	return &Tracker{
		roster: r,
		now:    time.Now,
	}
}

// NewWithClock creates a Tracker with a fixed clock. Used in tests.
func NewWithClock(r roster.Repository, now func() time.Time) *Tracker {
	return &Tracker{
		roster: r,
		now:    now,
	}
}

// SetAttendance merges {date: status} into the player's history (later write
// wins per date) and moves the player's current status and last-seen marker to
// the given date. Date defaults to today.
func (t *Tracker) SetAttendance(playerID any, status, date string) (*club.Player, error) {
	if date == "" {
		date = t.now().Format(club.DateFormat)
	}

	player := t.roster.GetByID(playerID)
	if player == nil {
		return nil, roster.ErrNotFound
	}

	history := make(map[string]string, len(player.History)+1)
	for d, s := range player.History {
		history[d] = s
	}
	history[date] = status

	updated, err := t.roster.UpdatePlayer(playerID, map[string]any{
		"attendance_status":  status,
		"last_seen":          date,
		"attendance_history": history,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Attendance recorded", "playerID", updated.ID, "date", date, "status", status)
	return updated, nil
}

// MonthlyReport produces one entry per calendar day of the requested month.
// Days after today are Future; recorded history wins otherwise; today falls
// back to the player's current status when no entry exists; all remaining
// days are No Data.
func (t *Tracker) MonthlyReport(playerID any, year int, month time.Month) ([]DayRecord, error) {
	player := t.roster.GetByID(playerID)
	if player == nil {
		return nil, roster.ErrNotFound
	}

	now := t.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayStr := today.Format(club.DateFormat)

	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	days := first.AddDate(0, 1, -1).Day()

	report := make([]DayRecord, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		dateStr := date.Format(club.DateFormat)

		status := club.AttendanceNoData
		switch {
		case date.After(today):
			status = club.AttendanceFuture
		case player.History[dateStr] != "":
			status = player.History[dateStr]
		case dateStr == todayStr && player.AttendanceStatus != "":
			status = player.AttendanceStatus
		}

		report = append(report, DayRecord{Date: dateStr, Status: status})
	}
	return report, nil
}
