package repositories

import (
	"errors"
	"time"

	"djurdata-ai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModerationRepository interface {
	GetViolation(userID string) (*models.UserViolation, error)
	InsertFlag(flag *models.FlaggedMessage) error
	// IncrementViolation upserts the user's violation row and bumps the
	// counter in a single statement. Returns the new count and whether an
	// increment actually happened (blocked users are not incremented by
	// automatic flags).
	IncrementViolation(userID string) (int, bool, error)
	// MarkBlocked flips is_blocked only when it was false. Returns whether
	// the block was just applied.
	MarkBlocked(userID, reason string) (bool, error)
	// AdminBlock blocks unconditionally and counts as one more violation.
	AdminBlock(userID, reason string) error
	Unblock(userID string) error
	GetFlag(flagID string) (*models.FlaggedMessage, error)
	// MarkFlagReviewed sets the reviewed fields once; a second call is a
	// no-op on the row.
	MarkFlagReviewed(flagID, adminID string) error
	ListFlagged(unreviewedOnly bool) ([]models.FlaggedMessage, error)
	ListViolations() ([]models.UserViolation, error)
	InsertAdminAction(action *models.AdminAction) error
	ListAdminActions(limit int) ([]models.AdminAction, error)
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) GetViolation(userID string) (*models.UserViolation, error) {
	var violation models.UserViolation
	err := r.db.Where("user_id = ?", userID).First(&violation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &violation, nil
}

func (r *moderationRepository) InsertFlag(flag *models.FlaggedMessage) error {
	if flag.ID == "" {
		flag.Base = models.NewBase()
	}
	return r.db.Create(flag).Error
}

func (r *moderationRepository) IncrementViolation(userID string) (int, bool, error) {
	// Single upsert statement instead of read-then-write, so two concurrent
	// requests for the same user cannot observe the same stale count.
	var count int
	err := r.db.Raw(`
		INSERT INTO user_violations (id, user_id, violation_count, is_blocked, created_at, updated_at)
		VALUES (?, ?, 1, false, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
			SET violation_count = user_violations.violation_count + 1,
			    updated_at = NOW()
			WHERE user_violations.is_blocked = false
		RETURNING violation_count`,
		uuid.NewString(), userID,
	).Scan(&count).Error
	if err != nil {
		return 0, false, err
	}
	if count == 0 {
		// Conflict row was blocked, nothing was written.
		return 0, false, nil
	}
	return count, true, nil
}

func (r *moderationRepository) MarkBlocked(userID, reason string) (bool, error) {
	result := r.db.Model(&models.UserViolation{}).
		Where("user_id = ? AND is_blocked = false", userID).
		Updates(map[string]interface{}{
			"is_blocked":     true,
			"blocked_reason": reason,
			"blocked_at":     time.Now(),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *moderationRepository) AdminBlock(userID, reason string) error {
	return r.db.Exec(`
		INSERT INTO user_violations (id, user_id, violation_count, is_blocked, blocked_reason, blocked_at, created_at, updated_at)
		VALUES (?, ?, 1, true, ?, NOW(), NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
			SET violation_count = user_violations.violation_count + 1,
			    is_blocked = true,
			    blocked_reason = EXCLUDED.blocked_reason,
			    blocked_at = NOW(),
			    updated_at = NOW()`,
		uuid.NewString(), userID, reason,
	).Error
}

func (r *moderationRepository) Unblock(userID string) error {
	return r.db.Model(&models.UserViolation{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_blocked":   false,
			"unblocked_at": time.Now(),
			"updated_at":   time.Now(),
		}).Error
}

func (r *moderationRepository) GetFlag(flagID string) (*models.FlaggedMessage, error) {
	var flag models.FlaggedMessage
	err := r.db.Where("id = ?", flagID).First(&flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *moderationRepository) MarkFlagReviewed(flagID, adminID string) error {
	// is_reviewed never reverts; the first reviewer wins.
	return r.db.Model(&models.FlaggedMessage{}).
		Where("id = ? AND is_reviewed = false", flagID).
		Updates(map[string]interface{}{
			"is_reviewed": true,
			"reviewed_by": adminID,
			"reviewed_at": time.Now(),
			"updated_at":  time.Now(),
		}).Error
}

func (r *moderationRepository) ListFlagged(unreviewedOnly bool) ([]models.FlaggedMessage, error) {
	var flags []models.FlaggedMessage
	query := r.db.Order("created_at desc")
	if unreviewedOnly {
		query = query.Where("is_reviewed = false")
	}
	if err := query.Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

func (r *moderationRepository) ListViolations() ([]models.UserViolation, error) {
	var violations []models.UserViolation
	if err := r.db.Order("updated_at desc").Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}

func (r *moderationRepository) InsertAdminAction(action *models.AdminAction) error {
	if action.ID == "" {
		action.Base = models.NewBase()
	}
	return r.db.Create(action).Error
}

func (r *moderationRepository) ListAdminActions(limit int) ([]models.AdminAction, error) {
	var actions []models.AdminAction
	if limit <= 0 {
		limit = 100
	}
	if err := r.db.Order("created_at desc").Limit(limit).Find(&actions).Error; err != nil {
		return nil, err
	}
	return actions, nil
}
