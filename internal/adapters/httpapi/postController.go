package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc PostUseCase
	fc FeedUseCase
	hc HashtagUseCase
}

func NewPostController(pc PostUseCase, fc FeedUseCase, hc HashtagUseCase) *PostController {
	return &PostController{pc: pc, fc: fc, hc: hc}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Content  string   `json:"content" binding:"required,max=5000"`
		AuthorID string   `json:"authorId" binding:"required"`
		Hashtags []string `json:"hashtags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	p, err := ctl.pc.Create(c.Request.Context(), req.Content, req.AuthorID, req.Hashtags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Content  string   `json:"content" binding:"required,max=5000"`
		Hashtags []string `json:"hashtags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	p, err := ctl.pc.Update(c.Request.Context(), id, req.Content, req.Hashtags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := ctl.pc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	posts, total, err := ctl.pc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": paginationBody(total, limit, offset),
	})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.pc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFeed serves the fan-out-on-read timeline for ?userId=...
func (ctl *PostController) GetFeed(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	posts, total, err := ctl.fc.Feed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": paginationBody(total, limit, offset),
	})
}

func (ctl *PostController) GetPostsByHashtag(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag parameter is required"})
		return
	}
	limit, offset, ok := pagination(c, 10)
	if !ok {
		return
	}
	posts, total, err := ctl.hc.PostsByTag(c.Request.Context(), tag, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": paginationBody(total, limit, offset),
	})
}
