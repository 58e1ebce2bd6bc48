package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type FamilyRepository interface {
	FindByID(familyID uint) (models.Family, error)
	FindByInviteCode(inviteCode string) (models.Family, error)
	ExistsByInviteCode(inviteCode string) (bool, error)
	Create(family *models.Family) error
	UpdateName(familyID uint, name string) error
}

type FamilyMemberRepository interface {
	ListByFamily(familyID uint) ([]models.User, error)
	UpdateFamilyID(userID uint, familyID *uint) error
}

type FamilyService struct {
	families FamilyRepository
	members  FamilyMemberRepository
}

func NewFamilyService(families FamilyRepository, members FamilyMemberRepository) *FamilyService {
	return &FamilyService{families: families, members: members}
}

func (service *FamilyService) CreateFamily(actor models.User, name string) (models.Family, error) {
	if actor.FamilyID != nil {
		return models.Family{}, ErrAlreadyInFamily
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Family{}, ErrInvalidInput
	}

	inviteCode, err := service.uniqueInviteCode()
	if err != nil {
		return models.Family{}, err
	}

	family := models.Family{Name: name, InviteCode: inviteCode}
	if err := service.families.Create(&family); err != nil {
		return models.Family{}, err
	}
	if err := service.members.UpdateFamilyID(actor.ID, &family.ID); err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (service *FamilyService) JoinFamily(actor models.User, inviteCode string) (models.Family, error) {
	if actor.FamilyID != nil {
		return models.Family{}, ErrAlreadyInFamily
	}

	family, err := service.families.FindByInviteCode(strings.ToUpper(strings.TrimSpace(inviteCode)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Family{}, ErrInvalidInviteCode
		}
		return models.Family{}, err
	}

	if err := service.members.UpdateFamilyID(actor.ID, &family.ID); err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (service *FamilyService) GetFamily(actor models.User) (models.Family, []models.User, error) {
	if actor.FamilyID == nil {
		return models.Family{}, nil, ErrNoFamily
	}

	family, err := service.families.FindByID(*actor.FamilyID)
	if err != nil {
		return models.Family{}, nil, asNotFound(err)
	}
	members, err := service.members.ListByFamily(family.ID)
	if err != nil {
		return models.Family{}, nil, err
	}
	return family, members, nil
}

func (service *FamilyService) RenameFamily(actor models.User, name string) error {
	if actor.FamilyID == nil {
		return ErrNoFamily
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidInput
	}
	return service.families.UpdateName(*actor.FamilyID, name)
}

func (service *FamilyService) LeaveFamily(actor models.User) error {
	if actor.FamilyID == nil {
		return ErrNoFamily
	}
	return service.members.UpdateFamilyID(actor.ID, nil)
}

func (service *FamilyService) uniqueInviteCode() (string, error) {
	for {
		code := strings.ToUpper(uuid.NewString()[:8])
		exists, err := service.families.ExistsByInviteCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}
