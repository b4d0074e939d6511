package handler

import (
	"net/http"
	"time"

	"Club_Community/internal/middleware"
	"Club_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(db *gorm.DB, notifier *service.Notifier) *EventHandler {
	return &EventHandler{svc: service.NewEventService(db, notifier)}
}

type EventCreateReq struct {
	CommunityID       uint64     `json:"community_id" binding:"required"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	StartAt           time.Time  `json:"start_at" binding:"required"`
	EndAt             *time.Time `json:"end_at"`
	Location          string     `json:"location"`
	Capacity          *int       `json:"capacity"`
	IsPublic          bool       `json:"is_public"`
	Price             int64      `json:"price"`
	EarlyBirdPrice    *int64     `json:"early_bird_price"`
	EarlyBirdDeadline *time.Time `json:"early_bird_deadline"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Create(middleware.CurrentUserID(c), service.EventCreateInput{
		CommunityID:       req.CommunityID,
		Title:             req.Title,
		Description:       req.Description,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		Location:          req.Location,
		Capacity:          req.Capacity,
		IsPublic:          req.IsPublic,
		Price:             req.Price,
		EarlyBirdPrice:    req.EarlyBirdPrice,
		EarlyBirdDeadline: req.EarlyBirdDeadline,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	list, err := h.svc.List(queryID(c, "community_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type EventUpdateReq struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	StartAt           *time.Time `json:"start_at"`
	EndAt             *time.Time `json:"end_at"`
	Location          *string    `json:"location"`
	Capacity          *int       `json:"capacity"`
	IsPublic          *bool      `json:"is_public"`
	Price             *int64     `json:"price"`
	EarlyBirdPrice    *int64     `json:"early_bird_price"`
	EarlyBirdDeadline *time.Time `json:"early_bird_deadline"`
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EventUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Update(middleware.CurrentUserID(c), id, service.EventUpdateInput{
		Title:             req.Title,
		Description:       req.Description,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		Location:          req.Location,
		Capacity:          req.Capacity,
		IsPublic:          req.IsPublic,
		Price:             req.Price,
		EarlyBirdPrice:    req.EarlyBirdPrice,
		EarlyBirdDeadline: req.EarlyBirdDeadline,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
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

func (h *EventHandler) Register(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// 请求体可省略，默认 registered
	var req struct {
		Status string `json:"status"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
			return
		}
	}

	reg, payment, err := h.svc.Register(id, middleware.CurrentUserID(c), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{"registration": reg}
	if payment != nil {
		resp["payment"] = payment
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) CancelRegistration(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.CancelRegistration(id, middleware.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *EventHandler) ListRegistrations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListRegistrations(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
