package db

import (
	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type FamilyRepository struct {
	database *gorm.DB
}

func NewFamilyRepository(database *gorm.DB) *FamilyRepository {
	return &FamilyRepository{database: database}
}

func (repo *FamilyRepository) FindByID(familyID uint) (models.Family, error) {
	var family models.Family
	if err := repo.database.First(&family, familyID).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (repo *FamilyRepository) FindByInviteCode(inviteCode string) (models.Family, error) {
	var family models.Family
	if err := repo.database.Where("invite_code = ?", inviteCode).First(&family).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (repo *FamilyRepository) ExistsByInviteCode(inviteCode string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Family{}).
		Where("invite_code = ?", inviteCode).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *FamilyRepository) Create(family *models.Family) error {
	return repo.database.Create(family).Error
}

func (repo *FamilyRepository) UpdateName(familyID uint, name string) error {
	return repo.database.Model(&models.Family{}).Where("id = ?", familyID).Update("name", name).Error
}
