package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HashtagController struct{ hc HashtagUseCase }

func NewHashtagController(hc HashtagUseCase) *HashtagController {
	return &HashtagController{hc: hc}
}

func (ctl *HashtagController) CreateHashtag(c *gin.Context) {
	var req struct {
		Tag string `json:"tag" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	h, err := ctl.hc.Create(c.Request.Context(), req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h)
}

func (ctl *HashtagController) GetHashtag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h, err := ctl.hc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (ctl *HashtagController) ListHashtags(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	tags, total, err := ctl.hc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       tags,
		"pagination": paginationBody(total, limit, offset),
	})
}

func (ctl *HashtagController) UpdateHashtag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Tag string `json:"tag" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	h, err := ctl.hc.Update(c.Request.Context(), id, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (ctl *HashtagController) DeleteHashtag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.hc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
