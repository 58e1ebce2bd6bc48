package services

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

// recentRecordsLimit bounds the quick "latest measurements" view.
const recentRecordsLimit = 30

type HealthRecordRepository interface {
	FindByID(recordID uint) (models.HealthRecord, error)
	ListByUserAndRange(userID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error)
	ListByFamilyAndRange(familyID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error)
	ListRecentByUser(userID uint, recordType string, limit int) ([]models.HealthRecord, error)
	ListForChart(userID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error)
	Create(record *models.HealthRecord) error
	Save(record *models.HealthRecord) error
	Delete(recordID uint) error
}

type HealthRecordService struct {
	records HealthRecordRepository
	now     func() time.Time
}

func NewHealthRecordService(records HealthRecordRepository, now func() time.Time) *HealthRecordService {
	return &HealthRecordService{records: records, now: now}
}

type HealthRecordInput struct {
	RecordType  string
	RecordDate  *time.Time
	Systolic    *int
	Diastolic   *int
	HeartRate   *int
	Weight      *float64
	BloodSugar  *int
	Note        string
	MeasureTime string
}

func (service *HealthRecordService) CreateRecord(actor models.User, input HealthRecordInput) (models.HealthRecord, error) {
	if actor.FamilyID == nil {
		return models.HealthRecord{}, ErrNoFamily
	}
	if err := validateRecordInput(&input); err != nil {
		return models.HealthRecord{}, err
	}

	recordDate := DateOnly(service.now())
	if input.RecordDate != nil {
		recordDate = DateOnly(*input.RecordDate)
	}

	record := models.HealthRecord{
		UserID:      actor.ID,
		FamilyID:    *actor.FamilyID,
		RecordType:  input.RecordType,
		RecordDate:  recordDate,
		Systolic:    input.Systolic,
		Diastolic:   input.Diastolic,
		HeartRate:   input.HeartRate,
		Weight:      input.Weight,
		BloodSugar:  input.BloodSugar,
		Note:        input.Note,
		MeasureTime: input.MeasureTime,
	}
	if err := service.records.Create(&record); err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

// UpdateRecord rewrites a record's measurements; the type is fixed at
// creation and a missing date keeps the stored one.
func (service *HealthRecordService) UpdateRecord(actor models.User, recordID uint, input HealthRecordInput) (models.HealthRecord, error) {
	record, err := service.ownedRecord(actor, recordID)
	if err != nil {
		return models.HealthRecord{}, err
	}

	input.RecordType = record.RecordType
	if err := validateRecordInput(&input); err != nil {
		return models.HealthRecord{}, err
	}

	if input.RecordDate != nil {
		record.RecordDate = DateOnly(*input.RecordDate)
	}
	record.Systolic = input.Systolic
	record.Diastolic = input.Diastolic
	record.HeartRate = input.HeartRate
	record.Weight = input.Weight
	record.BloodSugar = input.BloodSugar
	record.Note = input.Note
	record.MeasureTime = input.MeasureTime
	if err := service.records.Save(&record); err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

func (service *HealthRecordService) DeleteRecord(actor models.User, recordID uint) error {
	if _, err := service.ownedRecord(actor, recordID); err != nil {
		return err
	}
	return service.records.Delete(recordID)
}

// MyRecords returns the actor's records in [from, to], optionally narrowed to
// one type.
func (service *HealthRecordService) MyRecords(actor models.User, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	if recordType != "" && !models.ValidRecordType(recordType) {
		return nil, ErrInvalidInput
	}
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	return service.records.ListByUserAndRange(actor.ID, recordType, DateOnly(from), DateOnly(to))
}

// FamilyRecords returns every member's records in [from, to], optionally
// narrowed to one type.
func (service *HealthRecordService) FamilyRecords(actor models.User, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}
	if recordType != "" && !models.ValidRecordType(recordType) {
		return nil, ErrInvalidInput
	}
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	return service.records.ListByFamilyAndRange(*actor.FamilyID, recordType, DateOnly(from), DateOnly(to))
}

// RecentRecords returns the actor's latest measurements of one type.
func (service *HealthRecordService) RecentRecords(actor models.User, recordType string) ([]models.HealthRecord, error) {
	if !models.ValidRecordType(recordType) {
		return nil, ErrInvalidInput
	}
	return service.records.ListRecentByUser(actor.ID, recordType, recentRecordsLimit)
}

// ChartData returns the actor's records of one type in [from, to], oldest
// first for plotting.
func (service *HealthRecordService) ChartData(actor models.User, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	if !models.ValidRecordType(recordType) {
		return nil, ErrInvalidInput
	}
	if to.Before(from) {
		return nil, ErrInvalidInput
	}
	return service.records.ListForChart(actor.ID, recordType, DateOnly(from), DateOnly(to))
}

func (service *HealthRecordService) ownedRecord(actor models.User, recordID uint) (models.HealthRecord, error) {
	record, err := service.records.FindByID(recordID)
	if err != nil {
		return models.HealthRecord{}, asNotFound(err)
	}
	if record.UserID != actor.ID {
		return models.HealthRecord{}, ErrUnauthorized
	}
	return record, nil
}

// validateRecordInput checks that the measurements required by the record
// type are present and positive, and clears the fields the type never uses.
// Blood pressure may carry an optional pulse alongside the two readings.
func validateRecordInput(input *HealthRecordInput) error {
	switch input.RecordType {
	case models.RecordBloodPressure:
		if input.Systolic == nil || input.Diastolic == nil {
			return ErrInvalidInput
		}
		if *input.Systolic < 1 || *input.Diastolic < 1 {
			return ErrInvalidInput
		}
		if input.HeartRate != nil && *input.HeartRate < 1 {
			return ErrInvalidInput
		}
		input.Weight = nil
		input.BloodSugar = nil
	case models.RecordWeight:
		if input.Weight == nil || *input.Weight <= 0 {
			return ErrInvalidInput
		}
		input.Systolic = nil
		input.Diastolic = nil
		input.HeartRate = nil
		input.BloodSugar = nil
	case models.RecordBloodSugar:
		if input.BloodSugar == nil || *input.BloodSugar < 1 {
			return ErrInvalidInput
		}
		input.Systolic = nil
		input.Diastolic = nil
		input.HeartRate = nil
		input.Weight = nil
	case models.RecordHeartRate:
		if input.HeartRate == nil || *input.HeartRate < 1 {
			return ErrInvalidInput
		}
		input.Systolic = nil
		input.Diastolic = nil
		input.Weight = nil
		input.BloodSugar = nil
	default:
		return ErrInvalidInput
	}
	return nil
}
