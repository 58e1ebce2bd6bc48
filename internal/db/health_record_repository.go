package db

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	database *gorm.DB
}

func NewHealthRecordRepository(database *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{database: database}
}

func (repo *HealthRecordRepository) FindByID(recordID uint) (models.HealthRecord, error) {
	var record models.HealthRecord
	if err := repo.database.First(&record, recordID).Error; err != nil {
		return models.HealthRecord{}, err
	}
	return record, nil
}

// ListByUserAndRange returns one user's records in [from, to], newest first.
// An empty recordType matches every type.
func (repo *HealthRecordRepository) ListByUserAndRange(userID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	query := repo.database.
		Where("user_id = ? AND record_date >= ? AND record_date <= ?", userID, from, to)
	if recordType != "" {
		query = query.Where("record_type = ?", recordType)
	}
	if err := query.Order("record_date DESC, created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByFamilyAndRange returns every member's records in [from, to], newest
// first. An empty recordType matches every type.
func (repo *HealthRecordRepository) ListByFamilyAndRange(familyID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	query := repo.database.
		Where("family_id = ? AND record_date >= ? AND record_date <= ?", familyID, from, to)
	if recordType != "" {
		query = query.Where("record_type = ?", recordType)
	}
	if err := query.Order("record_date DESC, created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecentByUser returns the newest records of one type, capped at limit.
func (repo *HealthRecordRepository) ListRecentByUser(userID uint, recordType string, limit int) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND record_type = ?", userID, recordType).
		Order("record_date DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListForChart returns one user's records of one type in [from, to], oldest
// first so they plot left to right.
func (repo *HealthRecordRepository) ListForChart(userID uint, recordType string, from time.Time, to time.Time) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND record_type = ? AND record_date >= ? AND record_date <= ?", userID, recordType, from, to).
		Order("record_date ASC, created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRecordRepository) Create(record *models.HealthRecord) error {
	return repo.database.Create(record).Error
}

func (repo *HealthRecordRepository) Save(record *models.HealthRecord) error {
	return repo.database.Save(record).Error
}

func (repo *HealthRecordRepository) Delete(recordID uint) error {
	return repo.database.Delete(&models.HealthRecord{}, recordID).Error
}
