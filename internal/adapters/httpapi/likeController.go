package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController {
	return &LikeController{lc: lc}
}

func (ctl *LikeController) CreateLike(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		PostID uint   `json:"postId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	l, err := ctl.lc.Like(c.Request.Context(), req.UserID, req.PostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (ctl *LikeController) DeleteLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.lc.Unlike(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *LikeController) GetLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	l, err := ctl.lc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (ctl *LikeController) ListLikes(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	likes, total, err := ctl.lc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       likes,
		"pagination": paginationBody(total, limit, offset),
	})
}
