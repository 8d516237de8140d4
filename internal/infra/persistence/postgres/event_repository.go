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

// eventRepository implements the domain.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create persists a new event in a calendar.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("event uid already exists in calendar")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCalendarNotFound.WrapMessage("invalid calendar reference")
		}

		return errors.WithStack(err)
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// ListByCalendar returns all events of one calendar in creation order, so
// feeds render deterministically for identical calendar state.
func (repo *eventRepository) ListByCalendar(ctx context.Context, calendarID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []*model.CalendarEventModel

	err := repo.db.WithContext(ctx).
		Where("calendar_id = ?", calendarID).
		Order("created_at ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.CalendarEventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:         data.ID,
		CalendarID: data.CalendarID,
		UID:        data.UID,
		Summary:    data.Summary,
		RawICal:    data.RawICal,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.CalendarEventModel {
	if data == nil {
		return nil
	}

	return &model.CalendarEventModel{
		ID:         data.ID,
		CalendarID: data.CalendarID,
		UID:        data.UID,
		Summary:    data.Summary,
		RawICal:    data.RawICal,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
