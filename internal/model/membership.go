package model

import "time"

// 会籍角色，visitor < member < staff
const (
	RoleVisitor = "visitor"
	RoleMember  = "member"
	RoleStaff   = "staff"
)

const (
	MembershipActive    = "active"
	MembershipExpired   = "expired"
	MembershipSuspended = "suspended"
)

type Membership struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	UserID       uint64     `gorm:"not null;index;uniqueIndex:uk_membership_user_community" json:"user_id"`
	CommunityID  uint64     `gorm:"not null;index;uniqueIndex:uk_membership_user_community" json:"community_id"`
	MembershipNo string     `gorm:"uniqueIndex;size:32" json:"membership_no"`
	Level        string     `gorm:"size:32" json:"level"`
	Status       string     `gorm:"size:16;not null;default:active" json:"status"`
	Role         string     `gorm:"size:16;not null;default:visitor" json:"role"`
	ExpiresAt    *time.Time `json:"expires_at"`
	JoinedAt     time.Time  `gorm:"autoCreateTime" json:"joined_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RoleRank 角色排序，未知角色按 visitor 处理
func RoleRank(role string) int {
	switch role {
	case RoleStaff:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

func ValidRole(role string) bool {
	return role == RoleVisitor || role == RoleMember || role == RoleStaff
}

func ValidMembershipStatus(status string) bool {
	return status == MembershipActive || status == MembershipExpired || status == MembershipSuspended
}
