package handler

import (
	"net/http"
	"strconv"

	"Club_Community/internal/middleware"
	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{svc: service.NewPostService(db)}
}

type PostCreateReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
	MediaURL    string `json:"media_url"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.Create(middleware.CurrentUserID(c), req.CommunityID, req.Content, req.MediaURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) List(c *gin.Context) {
	communityID := queryID(c, "community_id")
	if communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "community_id required"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	list, err := h.svc.ListByCommunity(communityID, page, size)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type PostPinReq struct {
	Pinned *bool `json:"pinned" binding:"required"`
}

func (h *PostHandler) SetPinned(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req PostPinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SetPinned(middleware.CurrentUserID(c), id, *req.Pinned); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(middleware.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

type CommentCreateReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) Comment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.Comment(middleware.CurrentUserID(c), id, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListComments(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Like(middleware.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	count, err := h.svc.LikeCount(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "likes": count})
}

func (h *PostHandler) LikeCount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	count, err := h.svc.LikeCount(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": count})
}
