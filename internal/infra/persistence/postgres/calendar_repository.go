package postgres

import (
	"context"

	"calshare/internal/domain/entity"
	domainerrors "calshare/internal/domain/errors"
	"calshare/internal/domain/repository"
	"calshare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// calendarRepository implements the domain.CalendarRepository interface.
type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository is the constructor for calendarRepository.
func NewCalendarRepository(db *gorm.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

// Create persists a new calendar for its owning user.
func (repo *calendarRepository) Create(ctx context.Context, calendar *entity.Calendar) error {
	calendarM := fromCalendarDomain(calendar)

	if err := repo.db.WithContext(ctx).Create(calendarM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return errors.WithStack(err)
	}

	calendar.ID = calendarM.ID
	calendar.CreatedAt = calendarM.CreatedAt
	calendar.UpdatedAt = calendarM.UpdatedAt

	return nil
}

// FindForUser retrieves a calendar only if it belongs to the given user.
// Scoping the query to the owner keeps a foreign calendar id
// indistinguishable from a nonexistent one.
func (repo *calendarRepository) FindForUser(ctx context.Context, userID, calendarID uuid.UUID) (*entity.Calendar, error) {
	var calendarM model.CalendarModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", calendarID, userID).
		First(&calendarM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalendarNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCalendarDomain(&calendarM), nil
}

// ListByUser returns all calendars of a user in creation order.
func (repo *calendarRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Calendar, error) {
	var calendarModels []*model.CalendarModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&calendarModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	calendars := make([]*entity.Calendar, 0, len(calendarModels))
	for _, calendarM := range calendarModels {
		calendars = append(calendars, toCalendarDomain(calendarM))
	}

	return calendars, nil
}

// --- Mapper Functions ---

func toCalendarDomain(data *model.CalendarModel) *entity.Calendar {
	if data == nil {
		return nil
	}

	return &entity.Calendar{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Color:     data.Color,
		Timezone:  data.Timezone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCalendarDomain(data *entity.Calendar) *model.CalendarModel {
	if data == nil {
		return nil
	}

	return &model.CalendarModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Color:     data.Color,
		Timezone:  data.Timezone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
