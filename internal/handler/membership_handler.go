package handler

import (
	"net/http"
	"time"

	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MembershipHandler struct {
	svc *service.MembershipService
}

func NewMembershipHandler(db *gorm.DB) *MembershipHandler {
	return &MembershipHandler{svc: service.NewMembershipService(db)}
}

type MembershipCreateReq struct {
	UserID      uint64     `json:"user_id" binding:"required"`
	CommunityID uint64     `json:"community_id" binding:"required"`
	Level       string     `json:"level"`
	Status      string     `json:"status"`
	Role        string     `json:"role"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (h *MembershipHandler) Create(c *gin.Context) {
	var req MembershipCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.Create(service.MembershipCreateInput{
		UserID:      req.UserID,
		CommunityID: req.CommunityID,
		Level:       req.Level,
		Status:      req.Status,
		Role:        req.Role,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MembershipHandler) List(c *gin.Context) {
	list, err := h.svc.List(queryID(c, "user_id"), queryID(c, "community_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type MembershipUpdateReq struct {
	Level     *string    `json:"level"`
	Status    *string    `json:"status"`
	Role      *string    `json:"role"`
	ExpiresAt *time.Time `json:"expires_at"`
	JoinedAt  *time.Time `json:"joined_at"`
}

func (h *MembershipHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req MembershipUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.Update(id, service.MembershipUpdateInput{
		Level:     req.Level,
		Status:    req.Status,
		Role:      req.Role,
		ExpiresAt: req.ExpiresAt,
		JoinedAt:  req.JoinedAt,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
