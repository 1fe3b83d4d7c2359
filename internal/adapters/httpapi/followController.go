package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController {
	return &FollowController{fc: fc}
}

func (ctl *FollowController) CreateFollow(c *gin.Context) {
	var req struct {
		FollowerID  string `json:"followerId" binding:"required"`
		FollowingID string `json:"followingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	f, err := ctl.fc.Follow(c.Request.Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (ctl *FollowController) DeleteFollow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.fc.Unfollow(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *FollowController) GetFollow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := ctl.fc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (ctl *FollowController) ListFollows(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	follows, total, err := ctl.fc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       follows,
		"pagination": paginationBody(total, limit, offset),
	})
}
