package models

import "time"

// Record types distinguish which measurements a health record carries.
const (
	RecordBloodPressure = "BLOOD_PRESSURE"
	RecordWeight        = "WEIGHT"
	RecordBloodSugar    = "BLOOD_SUGAR"
	RecordHeartRate     = "HEART_RATE"
)

// HealthRecord is one dated measurement taken by a family member. The value
// columns are nullable because each record type fills only its own subset:
// blood pressure uses systolic/diastolic (optionally pulse), weight uses
// kilograms, blood sugar uses mg/dL and heart rate uses beats per minute.
type HealthRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	FamilyID    uint      `gorm:"not null;index" json:"family_id"`
	RecordType  string    `gorm:"not null" json:"record_type"`
	RecordDate  time.Time `gorm:"type:date;not null" json:"record_date"`
	Systolic    *int      `json:"systolic"`
	Diastolic   *int      `json:"diastolic"`
	HeartRate   *int      `json:"heart_rate"`
	Weight      *float64  `json:"weight"`
	BloodSugar  *int      `json:"blood_sugar"`
	Note        string    `json:"note"`
	MeasureTime string    `json:"measure_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidRecordType(recordType string) bool {
	switch recordType {
	case RecordBloodPressure, RecordWeight, RecordBloodSugar, RecordHeartRate:
		return true
	default:
		return false
	}
}
