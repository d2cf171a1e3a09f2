package entity

import (
	"time"
)

// ComplaintStatus is the review state of a complaint. Any status may move
// to any other.
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintResolved ComplaintStatus = "Resolved"
	ComplaintRejected ComplaintStatus = "Rejected"
)

// IsValid reports whether s is a known complaint status
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintPending, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

// Complaint is a citizen report about a bin. BinArea and UserEmail are
// informal references and are not enforced as foreign keys.
type Complaint struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"_id"`
	BinArea   string          `gorm:"column:bin_area;size:200;not null" json:"binArea"`
	UserEmail string          `gorm:"column:user_email;size:100;not null;index" json:"userEmail"`
	Text      string          `gorm:"column:complaint;size:2000;not null" json:"complaint"`
	Date      string          `gorm:"size:10;not null" json:"date"`
	Time      string          `gorm:"size:5;not null" json:"time"`
	Status    ComplaintStatus `gorm:"size:10;not null;default:Pending" json:"status"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Complaint
func (Complaint) TableName() string {
	return "complaints"
}
