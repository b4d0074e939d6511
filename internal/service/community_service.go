package service

import (
	"time"

	"Club_Community/internal/model"
	"Club_Community/internal/pkg"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MembershipRepository
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.MembershipRepository{DB: db},
	}
}

// Create 建社区，创建者同事务获得 staff 会籍
func (s *CommunityService) Create(creatorID uint64, name, description, rules string) (*model.Community, error) {
	if name == "" {
		return nil, errs.Validation("community name required")
	}

	no, err := pkg.MembershipNo(time.Now())
	if err != nil {
		return nil, errs.Internal("generate membership no failed")
	}

	community := &model.Community{
		Name:        name,
		Description: description,
		Rules:       rules,
		CreatorID:   creatorID,
	}
	if err := s.repo.Create(community, no); err != nil {
		if mysql.IsDuplicate(err) {
			return nil, errs.Conflict("community name already exists")
		}
		return nil, errs.Internal("create community failed")
	}
	return community, nil
}

func (s *CommunityService) Get(id uint64) (*model.Community, error) {
	community, err := s.repo.FindByID(id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("community not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return community, nil
}

func (s *CommunityService) GetByName(name string) (*model.Community, error) {
	community, err := s.repo.FindByName(name)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("community not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return community, nil
}

func (s *CommunityService) List() ([]model.Community, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

// requireStaff 校验操作者在社区内是否为 staff
func requireStaff(memberRepo *mysql.MembershipRepository, userID, communityID uint64) error {
	role, err := memberRepo.FindRole(userID, communityID)
	if err != nil {
		return errs.Internal("role lookup failed")
	}
	if model.RoleRank(role) < model.RoleRank(model.RoleStaff) {
		return errs.Unauthorized("staff role required")
	}
	return nil
}
