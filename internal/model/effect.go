package model

// Effect kinds that can be pushed to a connected user.
const (
	EffectText         = "text"
	EffectImage        = "image"
	EffectNotification = "notification"
)

// EffectRequest is the payload for pushing a live effect to a user. Duration
// is in milliseconds; when omitted it defaults to 5000. An explicit value,
// including zero or negative, passes through to the client unchanged.
type EffectRequest struct {
	UserID     string `json:"user_id"`
	EffectType string `json:"effect_type"`
	Content    string `json:"content"`
	Duration   *int   `json:"duration"`
}

// EffectEnvelope is the message pushed over the live channel.
type EffectEnvelope struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	Duration  int    `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// EffectRecord is the durable delivery record written for every dispatch,
// whether or not the live push reached the user.
type EffectRecord struct {
	ID         string `json:"id" db:"id"`
	UserID     string `json:"user_id" db:"user_id"`
	EffectType string `json:"effect_type" db:"effect_type"`
	Content    string `json:"content" db:"content"`
	SentAt     string `json:"sent_at" db:"sent_at"`
}
