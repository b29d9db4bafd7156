package postgres

import (
	"context"

	"vehiclee/internal/domain/entity"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// ListTicketsByUser retrieves all tickets filed by a user.
func (repo *ticketRepository) ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets by user")
	}

	return toTicketDomainList(ticketModels), nil
}

// ListAllTickets retrieves every ticket in the system.
func (repo *ticketRepository) ListAllTickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all tickets")
	}

	return toTicketDomainList(ticketModels), nil
}

// --- Mapper Functions ---

func toTicketDomainList(ticketModels []*model.SupportTicketModel) []*entity.SupportTicket {
	tickets := make([]*entity.SupportTicket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets
}

// toTicketDomain converts a GORM SupportTicketModel to a domain entity.
func toTicketDomain(data *model.SupportTicketModel) *entity.SupportTicket {
	if data == nil {
		return nil
	}

	return &entity.SupportTicket{
		ID:          data.ID,
		UserID:      data.UserID,
		TicketType:  entity.TicketType(data.TicketType),
		Subject:     data.Subject,
		Description: data.Description,
		Status:      entity.TicketStatus(data.Status),
		Priority:    entity.TicketPriority(data.Priority),
		AssignedTo:  data.AssignedTo,
		Resolution:  data.Resolution,
		ResolvedAt:  data.ResolvedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
