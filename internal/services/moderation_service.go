package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"djurdata-ai/internal/constants"
	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
	"djurdata-ai/pkg/redis"
)

const (
	blockedCacheKeyFmt = "blocked:%s"
	blockedCacheTTL    = 5 * time.Minute
)

// IModerationService is the violation ledger: it records flags, escalates to
// automatic blocks at the threshold, and answers block checks. Store failures
// during chat-path checks fail open so a degraded database never takes chat
// down for well-behaved users.
type IModerationService interface {
	IsBlocked(ctx context.Context, userID string) (bool, error)
	// RecordFlag stores the flagged message, increments the user's violation
	// count and applies an automatic block when the threshold is reached.
	// Returns whether this call escalated the user to blocked.
	RecordFlag(ctx context.Context, userID, message, reason string) (bool, error)
	BlockUser(ctx context.Context, adminID, targetID, reason string) (uint, error)
	UnblockUser(ctx context.Context, adminID, targetID string) (uint, error)
	ReviewFlag(ctx context.Context, adminID, flagID string) (uint, error)
	ListFlagged(unreviewedOnly bool) ([]models.FlaggedMessage, uint, error)
	ListViolations() ([]models.UserViolation, uint, error)
	ListAuditLog(limit int) ([]models.AdminAction, uint, error)
}

type ModerationService struct {
	moderationRepo repositories.ModerationRepository
	redisRepo      redis.IRedisRepositories
	blockThreshold int
}

func NewModerationService(moderationRepo repositories.ModerationRepository, redisRepo redis.IRedisRepositories, blockThreshold int) *ModerationService {
	if blockThreshold <= 0 {
		blockThreshold = constants.ModerationBlockThreshold
	}
	return &ModerationService{
		moderationRepo: moderationRepo,
		redisRepo:      redisRepo,
		blockThreshold: blockThreshold,
	}
}

func (s *ModerationService) IsBlocked(ctx context.Context, userID string) (bool, error) {
	cacheKey := fmt.Sprintf(blockedCacheKeyFmt, userID)
	if cached, err := s.redisRepo.Get(cacheKey, ctx); err == nil {
		return cached == "1", nil
	}

	violation, err := s.moderationRepo.GetViolation(userID)
	if err != nil {
		// Fail open: a store outage must not lock everyone out of chat.
		log.Printf("block check failed for user %s, allowing: %v", userID, err)
		return false, nil
	}
	blocked := violation != nil && violation.IsBlocked
	s.cacheBlocked(ctx, userID, blocked)
	return blocked, nil
}

func (s *ModerationService) RecordFlag(ctx context.Context, userID, message, reason string) (bool, error) {
	if err := s.moderationRepo.InsertFlag(models.NewFlaggedMessage(userID, message, reason)); err != nil {
		log.Printf("failed to store flagged message for user %s: %v", userID, err)
	}

	count, incremented, err := s.moderationRepo.IncrementViolation(userID)
	if err != nil {
		log.Printf("failed to increment violations for user %s: %v", userID, err)
		return false, nil
	}
	if !incremented {
		// Already blocked; the flag itself was still recorded above.
		return false, nil
	}

	// The increment is the event; reconstruct the state before it and run
	// the transition to decide on escalation.
	prev := ViolationState{Status: StatusFlagged, Count: count - 1}
	if prev.Count <= 0 {
		prev = ViolationState{Status: StatusClean}
	}
	next := NextState(prev, EventFlag, s.blockThreshold)
	if next.Status != StatusBlocked {
		return false, nil
	}

	applied, err := s.moderationRepo.MarkBlocked(userID, constants.AutoBlockReason)
	if err != nil {
		log.Printf("failed to auto-block user %s: %v", userID, err)
		return false, nil
	}
	if applied {
		s.cacheBlocked(ctx, userID, true)
		log.Printf("user %s auto-blocked after %d violations", userID, count)
	}
	return applied, nil
}

func (s *ModerationService) BlockUser(ctx context.Context, adminID, targetID, reason string) (uint, error) {
	if reason == "" {
		reason = "Blockerad av admin"
	}
	if err := s.moderationRepo.AdminBlock(targetID, reason); err != nil {
		return 500, err
	}
	s.cacheBlocked(ctx, targetID, true)
	s.audit(adminID, targetID, models.ActionTypeBlock, &reason)
	return 200, nil
}

func (s *ModerationService) UnblockUser(ctx context.Context, adminID, targetID string) (uint, error) {
	if err := s.moderationRepo.Unblock(targetID); err != nil {
		return 500, err
	}
	s.cacheBlocked(ctx, targetID, false)
	s.audit(adminID, targetID, models.ActionTypeUnblock, nil)
	return 200, nil
}

func (s *ModerationService) ReviewFlag(ctx context.Context, adminID, flagID string) (uint, error) {
	flag, err := s.moderationRepo.GetFlag(flagID)
	if err != nil {
		return 500, err
	}
	if flag == nil {
		return 404, fmt.Errorf("flag not found: %s", flagID)
	}
	if err := s.moderationRepo.MarkFlagReviewed(flagID, adminID); err != nil {
		return 500, err
	}
	s.audit(adminID, flag.UserID, models.ActionTypeFlagReviewed, &flag.FlagReason)
	return 200, nil
}

func (s *ModerationService) ListFlagged(unreviewedOnly bool) ([]models.FlaggedMessage, uint, error) {
	flags, err := s.moderationRepo.ListFlagged(unreviewedOnly)
	if err != nil {
		return nil, 500, err
	}
	return flags, 200, nil
}

func (s *ModerationService) ListViolations() ([]models.UserViolation, uint, error) {
	violations, err := s.moderationRepo.ListViolations()
	if err != nil {
		return nil, 500, err
	}
	return violations, 200, nil
}

func (s *ModerationService) ListAuditLog(limit int) ([]models.AdminAction, uint, error) {
	actions, err := s.moderationRepo.ListAdminActions(limit)
	if err != nil {
		return nil, 500, err
	}
	return actions, 200, nil
}

func (s *ModerationService) cacheBlocked(ctx context.Context, userID string, blocked bool) {
	value := []byte("0")
	if blocked {
		value = []byte("1")
	}
	cacheKey := fmt.Sprintf(blockedCacheKeyFmt, userID)
	if err := s.redisRepo.Set(cacheKey, value, blockedCacheTTL, ctx); err != nil {
		log.Printf("failed to cache block state for user %s: %v", userID, err)
	}
}

// audit writes the admin action asynchronously; the mutation it describes has
// already been committed and must not fail on a slow audit insert.
func (s *ModerationService) audit(adminID, targetID, actionType string, reason *string) {
	action := models.NewAdminAction(adminID, targetID, actionType, reason)
	go func() {
		if err := s.moderationRepo.InsertAdminAction(action); err != nil {
			log.Printf("failed to record admin action %s on user %s: %v", actionType, targetID, err)
		}
	}()
}
