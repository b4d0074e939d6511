package handler

import (
	"net/http"

	"Club_Community/internal/middleware"
	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AlbumHandler struct {
	svc *service.AlbumService
}

func NewAlbumHandler(db *gorm.DB) *AlbumHandler {
	return &AlbumHandler{svc: service.NewAlbumService(db)}
}

type AlbumCreateReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
}

func (h *AlbumHandler) Create(c *gin.Context) {
	var req AlbumCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.svc.Create(middleware.CurrentUserID(c), req.CommunityID, req.Title, req.Description, req.CoverURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AlbumHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AlbumHandler) List(c *gin.Context) {
	list, err := h.svc.List(queryID(c, "community_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type AlbumUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

func (h *AlbumHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AlbumUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.svc.Update(id, req.Title, req.Description, req.CoverURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AlbumHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

type PhotoCreateReq struct {
	PhotoURL string `json:"photo_url" binding:"required"`
	Caption  string `json:"caption"`
}

func (h *AlbumHandler) AddPhoto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req PhotoCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.AddPhoto(id, req.PhotoURL, req.Caption)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AlbumHandler) ListPhotos(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListPhotos(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *AlbumHandler) DeletePhoto(c *gin.Context) {
	id, ok := pathID(c, "photo_id")
	if !ok {
		return
	}
	if err := h.svc.DeletePhoto(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
