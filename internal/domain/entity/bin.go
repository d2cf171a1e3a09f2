package entity

import (
	"time"
)

// LoadType is the expected fill level of a bin
type LoadType string

const (
	LoadLow    LoadType = "low"
	LoadMedium LoadType = "medium"
	LoadHigh   LoadType = "high"
)

// IsValid reports whether t is a known load type
func (t LoadType) IsValid() bool {
	switch t {
	case LoadLow, LoadMedium, LoadHigh:
		return true
	}
	return false
}

// CyclePeriod is how often a bin is collected
type CyclePeriod string

const (
	CycleDaily       CyclePeriod = "daily"
	CycleTwiceWeekly CyclePeriod = "twice-weekly"
	CycleWeekly      CyclePeriod = "weekly"
)

// IsValid reports whether p is a known cycle period
func (p CyclePeriod) IsValid() bool {
	switch p {
	case CycleDaily, CycleTwiceWeekly, CycleWeekly:
		return true
	}
	return false
}

// Bin is a public waste bin. Latitude, Longitude and LocationName are set
// only by a successful geocode; nil coordinates mean the bin is not located yet.
type Bin struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"_id"`
	Label        string      `gorm:"column:bin;size:100;not null" json:"bin"`
	Locality     string      `gorm:"size:200;not null;index" json:"locality"`
	Landmark     string      `gorm:"size:200;index" json:"landmark"`
	City         string      `gorm:"size:100;not null" json:"city"`
	LoadType     LoadType    `gorm:"column:load_type;size:10" json:"loadType"`
	DriverEmail  string      `gorm:"column:driver_email;size:100" json:"driverEmail"`
	CyclePeriod  CyclePeriod `gorm:"column:cycle_period;size:20" json:"cyclePeriod"`
	BestRoute    string      `gorm:"column:best_route;size:1000" json:"bestRoute"`
	Latitude     *float64    `json:"latitude,omitempty"`
	Longitude    *float64    `json:"longitude,omitempty"`
	LocationName *string     `gorm:"column:location_name;size:500" json:"locationName,omitempty"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Bin
func (Bin) TableName() string {
	return "bins"
}

// IsLocated reports whether the bin has resolved coordinates
func (b *Bin) IsLocated() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// Locate stores a geocoding result on the bin
func (b *Bin) Locate(lat, lon float64, displayName string) {
	b.Latitude = &lat
	b.Longitude = &lon
	b.LocationName = &displayName
}
