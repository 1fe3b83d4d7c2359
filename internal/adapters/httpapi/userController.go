package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	uc UserUseCase
	fc FollowUseCase
	ac ActivityUseCase
}

func NewUserController(uc UserUseCase, fc FollowUseCase, ac ActivityUseCase) *UserController {
	return &UserController{uc: uc, fc: fc, ac: ac}
}

func (ctl *UserController) Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	u, err := ctl.uc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) GetUser(c *gin.Context) {
	u, err := ctl.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) ListUsers(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	users, total, err := ctl.uc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       users,
		"pagination": paginationBody(total, limit, offset),
	})
}

func (ctl *UserController) UpdateUser(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	u, err := ctl.uc.Update(c.Request.Context(), c.Param("id"), req.FirstName, req.LastName, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	if err := ctl.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *UserController) GetFollowers(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	userID := c.Param("id")
	followers, total, err := ctl.fc.FollowersOf(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":         userID,
		"totalFollowers": total,
		"followers":      followers,
		"pagination":     gin.H{"limit": limit, "offset": offset},
	})
}

func (ctl *UserController) GetFollowing(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	userID := c.Param("id")
	following, total, err := ctl.fc.FollowingOf(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":         userID,
		"totalFollowing": total,
		"following":      following,
		"pagination":     gin.H{"limit": limit, "offset": offset},
	})
}

func (ctl *UserController) GetActivity(c *gin.Context) {
	limit, offset, ok := pagination(c, 20)
	if !ok {
		return
	}
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.Param("id")
	events, total, err := ctl.ac.Activity(c.Request.Context(), userID, c.Query("activityType"), start, end, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":          userID,
		"activities":      events,
		"totalActivities": total,
		"pagination":      gin.H{"limit": limit, "offset": offset},
	})
}
