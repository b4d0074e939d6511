package service

import (
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type MembershipService struct {
	repo          *mysql.MembershipRepository
	communityRepo *mysql.CommunityRepository
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{
		repo:          &mysql.MembershipRepository{DB: db},
		communityRepo: &mysql.CommunityRepository{DB: db},
	}
}

type MembershipCreateInput struct {
	UserID      uint64
	CommunityID uint64
	Level       string
	Status      string
	Role        string
	ExpiresAt   *time.Time
}

// Create 会员编号由服务生成，不保证构造唯一，撞号按冲突返回
func (s *MembershipService) Create(in MembershipCreateInput) (*model.Membership, error) {
	if in.UserID == 0 || in.CommunityID == 0 {
		return nil, errs.Validation("user_id and community_id required")
	}
	if in.Status == "" {
		in.Status = model.MembershipActive
	}
	if in.Role == "" {
		in.Role = model.RoleVisitor
	}
	if !model.ValidMembershipStatus(in.Status) {
		return nil, errs.Validation("invalid status")
	}
	if !model.ValidRole(in.Role) {
		return nil, errs.Validation("invalid role")
	}

	if _, err := s.communityRepo.FindByID(in.CommunityID); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("community not found")
		}
		return nil, errs.Internal("lookup failed")
	}

	no, err := pkg.MembershipNo(time.Now())
	if err != nil {
		return nil, errs.Internal("generate membership no failed")
	}

	m := &model.Membership{
		UserID:       in.UserID,
		CommunityID:  in.CommunityID,
		MembershipNo: no,
		Level:        in.Level,
		Status:       in.Status,
		Role:         in.Role,
		ExpiresAt:    in.ExpiresAt,
	}
	if err := s.repo.Create(m); err != nil {
		if mysql.IsDuplicate(err) {
			return nil, errs.Conflict("membership already exists")
		}
		return nil, errs.Internal("create membership failed")
	}
	return m, nil
}

func (s *MembershipService) List(userID, communityID uint64) ([]model.Membership, error) {
	list, err := s.repo.List(userID, communityID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

type MembershipUpdateInput struct {
	Level     *string
	Status    *string
	Role      *string
	ExpiresAt *time.Time
	JoinedAt  *time.Time
}

// Update 部分更新，零字段直接拒绝
func (s *MembershipService) Update(id uint64, in MembershipUpdateInput) (*model.Membership, error) {
	fields := map[string]any{}
	if in.Level != nil {
		fields["level"] = *in.Level
	}
	if in.Status != nil {
		if !model.ValidMembershipStatus(*in.Status) {
			return nil, errs.Validation("invalid status")
		}
		fields["status"] = *in.Status
	}
	if in.Role != nil {
		if !model.ValidRole(*in.Role) {
			return nil, errs.Validation("invalid role")
		}
		fields["role"] = *in.Role
	}
	if in.ExpiresAt != nil {
		fields["expires_at"] = *in.ExpiresAt
	}
	if in.JoinedAt != nil {
		fields["joined_at"] = *in.JoinedAt
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("membership not found")
		}
		return nil, errs.Internal("update failed")
	}

	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.Internal("lookup failed")
	}
	return m, nil
}
