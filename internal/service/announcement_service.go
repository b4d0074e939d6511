package service

import (
	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type AnnouncementService struct {
	repo       *mysql.AnnouncementRepository
	memberRepo *mysql.MembershipRepository
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{
		repo:       &mysql.AnnouncementRepository{DB: db},
		memberRepo: &mysql.MembershipRepository{DB: db},
	}
}

func (s *AnnouncementService) Create(authorID, communityID uint64, title, content string, isPinned bool) (*model.Announcement, error) {
	if title == "" || content == "" {
		return nil, errs.Validation("title and content required")
	}
	if err := requireStaff(s.memberRepo, authorID, communityID); err != nil {
		return nil, err
	}

	a := &model.Announcement{
		CommunityID: communityID,
		Title:       title,
		Content:     content,
		IsPinned:    isPinned,
		AuthorID:    authorID,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, errs.Internal("create announcement failed")
	}
	return a, nil
}

func (s *AnnouncementService) Get(id uint64) (*model.Announcement, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("announcement not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return a, nil
}

func (s *AnnouncementService) List(communityID uint64) ([]model.Announcement, error) {
	list, err := s.repo.List(communityID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

func (s *AnnouncementService) Update(operatorID, id uint64, title, content *string, isPinned *bool) (*model.Announcement, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(s.memberRepo, operatorID, a.CommunityID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if title != nil {
		if *title == "" {
			return nil, errs.Validation("title cannot be empty")
		}
		fields["title"] = *title
	}
	if content != nil {
		fields["content"] = *content
	}
	if isPinned != nil {
		fields["is_pinned"] = *isPinned
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("announcement not found")
		}
		return nil, errs.Internal("update failed")
	}
	return s.Get(id)
}

func (s *AnnouncementService) Delete(operatorID, id uint64) error {
	a, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireStaff(s.memberRepo, operatorID, a.CommunityID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return errs.Internal("delete failed")
	}
	return nil
}
