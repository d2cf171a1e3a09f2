package entity

import (
	"time"
)

// DateLayout is the wire format for calendar dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for times of day (HH:MM)
const ClockLayout = "15:04"

// WorkStatus is a driver's self-reported progress for an area
type WorkStatus string

const (
	WorkInProgress WorkStatus = "In Progress"
	WorkCompleted  WorkStatus = "Completed"
	WorkIncomplete WorkStatus = "Incomplete"
)

// IsValid reports whether s is a known work status
func (s WorkStatus) IsValid() bool {
	switch s {
	case WorkInProgress, WorkCompleted, WorkIncomplete:
		return true
	}
	return false
}

// Work is a driver's daily report for an assigned area. Entries are never
// updated; at most one exists per area until the daily purge removes it.
type Work struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"_id"`
	Email     string     `gorm:"size:100;not null;index" json:"email"`
	Area      string     `gorm:"uniqueIndex;size:200;not null" json:"area"`
	Status    WorkStatus `gorm:"size:20;not null" json:"status"`
	Date      string     `gorm:"size:10;not null;index" json:"date"`
	Time      string     `gorm:"size:5;not null" json:"time"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Work
func (Work) TableName() string {
	return "works"
}

// WorkRetention is the lifecycle policy for work entries: an area accepts
// one entry at a time, and every day the entries dated the previous
// calendar day are purged, which reopens those areas.
type WorkRetention struct {
	Location *time.Location
}

// In returns now on the policy's clock, UTC when no location is set.
// Entries are dated and purged on this clock.
func (r WorkRetention) In(now time.Time) time.Time {
	if r.Location == nil {
		return now.UTC()
	}
	return now.In(r.Location)
}

// PurgeDate returns the date whose entries are purged by a run at now.
func (r WorkRetention) PurgeDate(now time.Time) string {
	return r.In(now).AddDate(0, 0, -1).Format(DateLayout)
}
