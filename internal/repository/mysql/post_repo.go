package mysql

import (
	"Club_Community/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

// ListByCommunity 置顶优先，其余按时间倒序
func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("community_id = ?", communityID).
		Order("is_pinned DESC, created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// SetPinned 先查后改：重复置顶同样成功，不依赖 RowsAffected
func (r *PostRepository) SetPinned(id uint64, pinned bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		return tx.Model(&post).Update("is_pinned", pinned).Error
	})
}

func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

type PostLikeRepository struct {
	DB *gorm.DB
}

// Like 直插，(post_id, user_id) 唯一键兜底重复点赞
func (r *PostLikeRepository) Like(like *model.PostLike) error {
	return r.DB.Create(like).Error
}

func (r *PostLikeRepository) CountByPost(postID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
