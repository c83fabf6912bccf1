package history

import (
	"context"
	"fmt"

	"github.com/xfwduke/blueking-dbm/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) save(ctx context.Context, record *model.CloneRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save clone record: %v", err)
	}
	return nil
}

func (r repository) findByTicket(ctx context.Context, ticketID uint, limit int) ([]model.CloneRecord, error) {
	var records []model.CloneRecord
	err := r.db.
		WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find clone records of ticket %d: %v", ticketID, err)
	}
	return records, nil
}

func (r repository) findAll(ctx context.Context, ticketType model.TicketType, limit int) ([]model.CloneRecord, error) {
	query := r.db.WithContext(ctx)
	if ticketType != "" {
		query = query.Where("ticket_type = ?", ticketType)
	}

	var records []model.CloneRecord
	err := query.
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find clone records: %v", err)
	}
	return records, nil
}
