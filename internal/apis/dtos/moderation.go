package dtos

type BlockUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Reason string `json:"reason"`
}

type UnblockUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type ReviewFlagRequest struct {
	FlagID string `json:"flag_id" binding:"required"`
}

type ListFlagsRequest struct {
	UnreviewedOnly bool `form:"unreviewed_only"`
}

type AuditLogRequest struct {
	Limit int `form:"limit"`
}
