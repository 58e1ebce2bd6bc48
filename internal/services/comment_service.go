package services

import (
	"strings"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

type CommentRepository interface {
	FindByID(commentID uint) (models.Comment, error)
	ListByFamilyAndDate(familyID uint, date time.Time) ([]models.Comment, error)
	Create(comment *models.Comment) error
	Delete(commentID uint) error
}

type CommentService struct {
	comments CommentRepository
}

func NewCommentService(comments CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (service *CommentService) CreateComment(actor models.User, date time.Time, content string) (models.Comment, error) {
	if actor.FamilyID == nil {
		return models.Comment{}, ErrNoFamily
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, ErrInvalidInput
	}

	comment := models.Comment{
		FamilyID: *actor.FamilyID,
		UserID:   actor.ID,
		Date:     DateOnly(date),
		Content:  content,
	}
	if err := service.comments.Create(&comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (service *CommentService) ListComments(actor models.User, date time.Time) ([]models.Comment, error) {
	if actor.FamilyID == nil {
		return nil, ErrNoFamily
	}
	return service.comments.ListByFamilyAndDate(*actor.FamilyID, DateOnly(date))
}

// DeleteComment removes a comment; only its author may delete it.
func (service *CommentService) DeleteComment(actor models.User, commentID uint) error {
	comment, err := service.comments.FindByID(commentID)
	if err != nil {
		return asNotFound(err)
	}
	if comment.UserID != actor.ID {
		return ErrUnauthorized
	}
	return service.comments.Delete(commentID)
}
