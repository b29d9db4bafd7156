package repository

import (
	"context"

	"vehiclee/internal/domain/entity"

	"github.com/google/uuid"
)

// TicketRepository defines read operations for support tickets.
type TicketRepository interface {
	// ListTicketsByUser retrieves all tickets filed by a user, newest first.
	ListTicketsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)

	// ListAllTickets retrieves every ticket in the system, newest first.
	ListAllTickets(ctx context.Context) ([]*entity.SupportTicket, error)
}
