package entity

import "time"

// DailySequence backs the per-calendar-day order counter. One row per day;
// NextValue is bumped with an atomic upsert so concurrent register terminals
// never receive the same sequence number.
type DailySequence struct {
	SeqDate   time.Time `gorm:"type:date;primary_key" json:"seq_date"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
}

// TableName returns the table name for the DailySequence model
func (DailySequence) TableName() string {
	return "daily_sequences"
}
