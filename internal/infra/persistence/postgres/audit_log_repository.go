package postgres

import (
	"context"
	"encoding/json"

	"vehiclee/internal/domain/entity"
	domainerrors "vehiclee/internal/domain/errors"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Append persists one audit log entry.
func (repo *auditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM, err := fromAuditLogDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit log entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromAuditLogDomain converts a domain AuditLogEntry to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLogEntry) (*model.AuditLogModel, error) {
	if data == nil {
		return nil, nil
	}

	var changes []byte
	if len(data.Changes) > 0 {
		encoded, err := json.Marshal(data.Changes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode audit changes")
		}
		changes = encoded
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		ActorID:    data.ActorID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Changes:    changes,
		Reason:     data.Reason,
		CreatedAt:  data.CreatedAt,
	}, nil
}
