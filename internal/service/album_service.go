package service

import (
	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type AlbumService struct {
	repo      *mysql.AlbumRepository
	photoRepo *mysql.PhotoRepository
}

func NewAlbumService(db *gorm.DB) *AlbumService {
	return &AlbumService{
		repo:      &mysql.AlbumRepository{DB: db},
		photoRepo: &mysql.PhotoRepository{DB: db},
	}
}

func (s *AlbumService) Create(creatorID, communityID uint64, title, description, coverURL string) (*model.Album, error) {
	if title == "" {
		return nil, errs.Validation("title required")
	}

	a := &model.Album{
		CommunityID: communityID,
		Title:       title,
		Description: description,
		CoverURL:    coverURL,
		CreatorID:   creatorID,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, errs.Internal("create album failed")
	}
	return a, nil
}

func (s *AlbumService) Get(id uint64) (*model.Album, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("album not found")
		}
		return nil, errs.Internal("lookup failed")
	}
	return a, nil
}

func (s *AlbumService) List(communityID uint64) ([]model.Album, error) {
	list, err := s.repo.List(communityID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

func (s *AlbumService) Update(id uint64, title, description, coverURL *string) (*model.Album, error) {
	fields := map[string]any{}
	if title != nil {
		if *title == "" {
			return nil, errs.Validation("title cannot be empty")
		}
		fields["title"] = *title
	}
	if description != nil {
		fields["description"] = *description
	}
	if coverURL != nil {
		fields["cover_url"] = *coverURL
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no fields to update")
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("album not found")
		}
		return nil, errs.Internal("update failed")
	}
	return s.Get(id)
}

func (s *AlbumService) Delete(id uint64) error {
	if err := s.repo.Delete(id); err != nil {
		return errs.Internal("delete failed")
	}
	return nil
}

// AddPhoto 照片必须挂在已存在的相册下
func (s *AlbumService) AddPhoto(albumID uint64, photoURL, caption string) (*model.Photo, error) {
	if photoURL == "" {
		return nil, errs.Validation("photo_url required")
	}
	if _, err := s.Get(albumID); err != nil {
		return nil, err
	}

	p := &model.Photo{
		AlbumID:  albumID,
		PhotoURL: photoURL,
		Caption:  caption,
	}
	if err := s.photoRepo.Create(p); err != nil {
		return nil, errs.Internal("create photo failed")
	}
	return p, nil
}

func (s *AlbumService) ListPhotos(albumID uint64) ([]model.Photo, error) {
	if _, err := s.Get(albumID); err != nil {
		return nil, err
	}
	list, err := s.photoRepo.ListByAlbum(albumID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

func (s *AlbumService) DeletePhoto(id uint64) error {
	if err := s.photoRepo.Delete(id); err != nil {
		return errs.Internal("delete failed")
	}
	return nil
}
