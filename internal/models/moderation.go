package models

import "time"

// Admin action types recorded in the audit log.
const (
	ActionTypeBlock        = "block"
	ActionTypeUnblock      = "unblock"
	ActionTypeFlagReviewed = "flag_reviewed"
)

// FlaggedMessage is appended whenever the validator rejects an outgoing chat
// message from an identified user. Rows are never deleted; review only sets
// the reviewed fields once.
type FlaggedMessage struct {
	UserID         string     `gorm:"index;not null" json:"user_id"`
	MessageContent string     `gorm:"type:text;not null" json:"message_content"`
	FlagReason     string     `gorm:"not null" json:"flag_reason"`
	IsReviewed     bool       `gorm:"default:false" json:"is_reviewed"`
	ReviewedBy     *string    `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	Base           `gorm:"embedded"`
}

func NewFlaggedMessage(userID, content, reason string) *FlaggedMessage {
	return &FlaggedMessage{
		UserID:         userID,
		MessageContent: content,
		FlagReason:     reason,
		Base:           NewBase(),
	}
}

// UserViolation holds per-user moderation state, one row per user. The
// violation counter never decreases; an unblock clears is_blocked but keeps
// the historical count.
type UserViolation struct {
	UserID         string     `gorm:"uniqueIndex;not null" json:"user_id"`
	IsBlocked      bool       `gorm:"default:false" json:"is_blocked"`
	BlockedReason  *string    `json:"blocked_reason,omitempty"`
	BlockedAt      *time.Time `json:"blocked_at,omitempty"`
	UnblockedAt    *time.Time `json:"unblocked_at,omitempty"`
	ViolationCount int        `gorm:"default:0" json:"violation_count"`
	Base           `gorm:"embedded"`
}

// AdminAction is an append-only audit record of administrative moderation
// mutations.
type AdminAction struct {
	AdminUserID  string  `gorm:"index;not null" json:"admin_user_id"`
	TargetUserID string  `gorm:"index;not null" json:"target_user_id"`
	ActionType   string  `gorm:"not null" json:"action_type"`
	Reason       *string `json:"reason,omitempty"`
	Base         `gorm:"embedded"`
}

func NewAdminAction(adminID, targetID, actionType string, reason *string) *AdminAction {
	return &AdminAction{
		AdminUserID:  adminID,
		TargetUserID: targetID,
		ActionType:   actionType,
		Reason:       reason,
		Base:         NewBase(),
	}
}
