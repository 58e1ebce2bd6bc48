package db

import (
	"time"

	"github.com/tannerhall/hearth/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	database *gorm.DB
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{database: database}
}

func (repo *CommentRepository) FindByID(commentID uint) (models.Comment, error) {
	var comment models.Comment
	if err := repo.database.First(&comment, commentID).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (repo *CommentRepository) ListByFamilyAndDate(familyID uint, date time.Time) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := repo.database.
		Where("family_id = ? AND date = ?", familyID, date).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepository) Create(comment *models.Comment) error {
	return repo.database.Create(comment).Error
}

func (repo *CommentRepository) Delete(commentID uint) error {
	return repo.database.Delete(&models.Comment{}, commentID).Error
}
