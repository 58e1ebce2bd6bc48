package services

import (
	"errors"
	"testing"

	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type fakeFamilyRepo struct {
	families []models.Family
	nextID   uint
}

func (repo *fakeFamilyRepo) FindByID(familyID uint) (models.Family, error) {
	for _, family := range repo.families {
		if family.ID == familyID {
			return family, nil
		}
	}
	return models.Family{}, gorm.ErrRecordNotFound
}

func (repo *fakeFamilyRepo) FindByInviteCode(inviteCode string) (models.Family, error) {
	for _, family := range repo.families {
		if family.InviteCode == inviteCode {
			return family, nil
		}
	}
	return models.Family{}, gorm.ErrRecordNotFound
}

func (repo *fakeFamilyRepo) ExistsByInviteCode(inviteCode string) (bool, error) {
	_, err := repo.FindByInviteCode(inviteCode)
	return err == nil, nil
}

func (repo *fakeFamilyRepo) Create(family *models.Family) error {
	repo.nextID++
	family.ID = repo.nextID
	repo.families = append(repo.families, *family)
	return nil
}

func (repo *fakeFamilyRepo) UpdateName(familyID uint, name string) error {
	for i := range repo.families {
		if repo.families[i].ID == familyID {
			repo.families[i].Name = name
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMemberRepo struct {
	memberships map[uint]*uint
}

func (repo *fakeMemberRepo) ListByFamily(familyID uint) ([]models.User, error) {
	members := []models.User{}
	for userID, membership := range repo.memberships {
		if membership != nil && *membership == familyID {
			members = append(members, models.User{ID: userID})
		}
	}
	return members, nil
}

func (repo *fakeMemberRepo) UpdateFamilyID(userID uint, familyID *uint) error {
	repo.memberships[userID] = familyID
	return nil
}

func newFamilyService() (*FamilyService, *fakeFamilyRepo, *fakeMemberRepo) {
	families := &fakeFamilyRepo{}
	members := &fakeMemberRepo{memberships: map[uint]*uint{}}
	return NewFamilyService(families, members), families, members
}

func TestCreateFamily(t *testing.T) {
	service, _, members := newFamilyService()

	family, err := service.CreateFamily(models.User{ID: 1}, "The Halls")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(family.InviteCode) != 8 {
		t.Fatalf("expected 8 character invite code, got %q", family.InviteCode)
	}
	membership := members.memberships[1]
	if membership == nil || *membership != family.ID {
		t.Fatalf("creator was not added to the family")
	}
}

func TestCreateFamilyWhileAlreadyMember(t *testing.T) {
	service, _, _ := newFamilyService()
	familyID := uint(7)

	_, err := service.CreateFamily(models.User{ID: 1, FamilyID: &familyID}, "Again")
	if !errors.Is(err, ErrAlreadyInFamily) {
		t.Fatalf("expected ErrAlreadyInFamily, got %v", err)
	}
}

func TestJoinFamily(t *testing.T) {
	service, families, members := newFamilyService()
	families.Create(&models.Family{Name: "The Halls", InviteCode: "ABCD1234"})

	family, err := service.JoinFamily(models.User{ID: 2}, "  abcd1234 ")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	membership := members.memberships[2]
	if membership == nil || *membership != family.ID {
		t.Fatalf("joiner was not added to the family")
	}

	_, err = service.JoinFamily(models.User{ID: 3}, "WRONG000")
	if !errors.Is(err, ErrInvalidInviteCode) {
		t.Fatalf("expected ErrInvalidInviteCode, got %v", err)
	}
}

func TestLeaveFamily(t *testing.T) {
	service, _, members := newFamilyService()
	familyID := uint(1)
	members.memberships[1] = &familyID

	if err := service.LeaveFamily(models.User{ID: 1, FamilyID: &familyID}); err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if members.memberships[1] != nil {
		t.Fatalf("membership was not cleared")
	}

	if err := service.LeaveFamily(models.User{ID: 2}); !errors.Is(err, ErrNoFamily) {
		t.Fatalf("expected ErrNoFamily, got %v", err)
	}
}

func TestRenameFamilyValidation(t *testing.T) {
	service, families, _ := newFamilyService()
	families.Create(&models.Family{Name: "The Halls", InviteCode: "ABCD1234"})
	familyID := uint(1)
	actor := models.User{ID: 1, FamilyID: &familyID}

	if err := service.RenameFamily(actor, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := service.RenameFamily(actor, "The New Halls"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if families.families[0].Name != "The New Halls" {
		t.Fatalf("rename did not persist, got %q", families.families[0].Name)
	}
}
