package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eduplay/console/internal/model"
)

// CreateEffectRecord persists a live-effect delivery record. Records are
// written for every dispatch attempt, delivered or not.
func (s *Store) CreateEffectRecord(ctx context.Context, rec *model.EffectRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.SentAt == "" {
		rec.SentAt = NowISO()
	}

	const q = `INSERT INTO live_effects
		(id, user_id, effect_type, content, sent_at)
		VALUES
		(:id, :user_id, :effect_type, :content, :sent_at)`

	if _, err := s.db.NamedExecContext(ctx, q, rec); err != nil {
		return fmt.Errorf("insert effect record: %w", err)
	}
	return nil
}

// ListEffectRecords returns all delivery records, newest first.
func (s *Store) ListEffectRecords(ctx context.Context) ([]model.EffectRecord, error) {
	records := []model.EffectRecord{}
	if err := s.db.SelectContext(ctx, &records, `SELECT * FROM live_effects ORDER BY sent_at DESC`); err != nil {
		return nil, fmt.Errorf("list effect records: %w", err)
	}
	return records, nil
}
