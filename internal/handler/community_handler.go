package handler

import (
	"net/http"

	"Club_Community/internal/middleware"
	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(db *gorm.DB) *CommunityHandler {
	return &CommunityHandler{svc: service.NewCommunityService(db)}
}

type CommunityCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community, err := h.svc.Create(middleware.CurrentUserID(c), req.Name, req.Description, req.Rules)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	community, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "name required"})
		return
	}
	community, err := h.svc.GetByName(name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
