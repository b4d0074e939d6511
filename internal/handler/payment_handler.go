package handler

import (
	"net/http"

	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{svc: service.NewPaymentService(db)}
}

type PaymentCreateReq struct {
	UserID      uint64 `json:"user_id" binding:"required"`
	CommunityID uint64 `json:"community_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	RelatedType string `json:"related_type"`
	RelatedID   uint64 `json:"related_id"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req PaymentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.Create(service.PaymentCreateInput{
		UserID:      req.UserID,
		CommunityID: req.CommunityID,
		Description: req.Description,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      req.Status,
		RelatedType: req.RelatedType,
		RelatedID:   req.RelatedID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	list, err := h.svc.List(queryID(c, "user_id"), queryID(c, "community_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type PaymentUpdateReq struct {
	Status *string `json:"status"`
	Method *string `json:"method"`
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req PaymentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.Update(id, req.Status, req.Method)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) DashboardStats(c *gin.Context) {
	stats, err := h.svc.DashboardStats(queryID(c, "community_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
