package service

import (
	"Club_Community/internal/model"
	"Club_Community/internal/pkg/errs"
	"Club_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	repo        *mysql.PostRepository
	commentRepo *mysql.CommentRepository
	likeRepo    *mysql.PostLikeRepository
	memberRepo  *mysql.MembershipRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo:        &mysql.PostRepository{DB: db},
		commentRepo: &mysql.CommentRepository{DB: db},
		likeRepo:    &mysql.PostLikeRepository{DB: db},
		memberRepo:  &mysql.MembershipRepository{DB: db},
	}
}

// Create 发帖要求作者持有该社区会籍
func (s *PostService) Create(authorID, communityID uint64, content, mediaURL string) (*model.Post, error) {
	if content == "" {
		return nil, errs.Validation("content required")
	}

	ok, err := s.memberRepo.IsMember(authorID, communityID)
	if err != nil {
		return nil, errs.Internal("member lookup failed")
	}
	if !ok {
		return nil, errs.Unauthorized("not a member of this community")
	}

	post := &model.Post{
		CommunityID: communityID,
		AuthorID:    authorID,
		Content:     content,
		MediaURL:    mediaURL,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, errs.Internal("create post failed")
	}
	return post, nil
}

func (s *PostService) ListByCommunity(communityID uint64, page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.ListByCommunity(communityID, (page-1)*size, size)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

// SetPinned 置顶/取消置顶，仅限该社区 staff
func (s *PostService) SetPinned(operatorID, postID uint64, pinned bool) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		if mysql.IsNotFound(err) {
			return errs.NotFound("post not found")
		}
		return errs.Internal("lookup failed")
	}
	if err := requireStaff(s.memberRepo, operatorID, post.CommunityID); err != nil {
		return err
	}
	if err := s.repo.SetPinned(postID, pinned); err != nil {
		return errs.Internal("update failed")
	}
	return nil
}

// Delete 删帖仅限该社区 staff
func (s *PostService) Delete(operatorID, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		if mysql.IsNotFound(err) {
			return errs.NotFound("post not found")
		}
		return errs.Internal("lookup failed")
	}
	if err := requireStaff(s.memberRepo, operatorID, post.CommunityID); err != nil {
		return err
	}
	if err := s.repo.Delete(postID); err != nil {
		return errs.Internal("delete failed")
	}
	return nil
}

// Comment 评论不做角色限制
func (s *PostService) Comment(authorID, postID uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errs.Validation("content required")
	}
	if _, err := s.repo.FindByID(postID); err != nil {
		if mysql.IsNotFound(err) {
			return nil, errs.NotFound("post not found")
		}
		return nil, errs.Internal("lookup failed")
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, errs.Internal("create comment failed")
	}
	return comment, nil
}

func (s *PostService) ListComments(postID uint64) ([]model.Comment, error) {
	list, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, errs.Internal("list failed")
	}
	return list, nil
}

// Like 点赞单向不可撤销，重复点赞报冲突
func (s *PostService) Like(userID, postID uint64) error {
	if _, err := s.repo.FindByID(postID); err != nil {
		if mysql.IsNotFound(err) {
			return errs.NotFound("post not found")
		}
		return errs.Internal("lookup failed")
	}
	if err := s.likeRepo.Like(&model.PostLike{PostID: postID, UserID: userID}); err != nil {
		if mysql.IsDuplicate(err) {
			return errs.Conflict("already liked")
		}
		return errs.Internal("like failed")
	}
	return nil
}

func (s *PostService) LikeCount(postID uint64) (int64, error) {
	count, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return 0, errs.Internal("count failed")
	}
	return count, nil
}
