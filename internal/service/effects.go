package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eduplay/console/internal/live"
	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/store"
)

// ErrUnknownEffectType is returned when a dispatch request names an effect
// type outside text, image, or notification.
var ErrUnknownEffectType = errors.New("unknown effect type")

// defaultDurationMS is applied when a dispatch request omits the duration.
// An explicit value, including zero or negative, passes through unchanged;
// the receiving client decides what to do with it.
const defaultDurationMS = 5000

// Receipt summarizes a dispatch. Delivery carries the transport outcome for
// logging only; the HTTP contract reports acceptance, not delivery.
type Receipt struct {
	UserID   string
	Delivery live.SendResult
}

// EffectService dispatches live effects: it validates the request, pushes the
// effect through the connection registry best-effort, and durably records the
// delivery attempt whether or not the push reached the user.
type EffectService struct {
	store    *store.Store
	registry *live.Registry
	logger   *slog.Logger
}

// NewEffectService creates an EffectService.
func NewEffectService(st *store.Store, registry *live.Registry, logger *slog.Logger) *EffectService {
	return &EffectService{
		store:    st,
		registry: registry,
		logger:   logger,
	}
}

// Dispatch pushes the requested effect to the target user's live channel and
// persists a delivery record. The record is written even when the user is
// offline or the transport fails; only a storage failure is returned as an
// error.
func (s *EffectService) Dispatch(ctx context.Context, req model.EffectRequest) (*Receipt, error) {
	switch req.EffectType {
	case model.EffectText, model.EffectImage, model.EffectNotification:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffectType, req.EffectType)
	}

	duration := defaultDurationMS
	if req.Duration != nil {
		duration = *req.Duration
	}

	now := store.NowISO()
	envelope := model.EffectEnvelope{
		Type:      req.EffectType,
		Content:   req.Content,
		Duration:  duration,
		Timestamp: now,
	}

	result := s.registry.Send(req.UserID, envelope)
	s.logger.Debug("live effect sent",
		"user_id", req.UserID,
		"effect_type", req.EffectType,
		"result", result.String(),
	)

	record := model.EffectRecord{
		UserID:     req.UserID,
		EffectType: req.EffectType,
		Content:    req.Content,
		SentAt:     now,
	}
	if err := s.store.CreateEffectRecord(ctx, &record); err != nil {
		return nil, fmt.Errorf("record live effect: %w", err)
	}

	return &Receipt{UserID: req.UserID, Delivery: result}, nil
}
