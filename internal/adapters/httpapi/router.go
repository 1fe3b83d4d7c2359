package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialite/internal/adapters/httpapi/middleware"
	"socialite/internal/core/activity"
	followPort "socialite/internal/ports/follow"
	hashtagPort "socialite/internal/ports/hashtag"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
	userPort "socialite/internal/ports/user"
)

// Inbound ports: what the controllers need from the application services.

type UserUseCase interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	Get(ctx context.Context, id string) (*userPort.UserDTO, error)
	List(ctx context.Context, limit, offset int) ([]*userPort.UserDTO, int64, error)
	Update(ctx context.Context, id, firstName, lastName, email string) (*userPort.UserDTO, error)
	Delete(ctx context.Context, id string) error
}

type PostUseCase interface {
	Create(ctx context.Context, content, authorID string, tags []string) (*postPort.PostDTO, error)
	Update(ctx context.Context, id uint, content string, tags []string) (*postPort.PostDTO, error)
	Get(ctx context.Context, id uint) (*postPort.PostDTO, error)
	List(ctx context.Context, limit, offset int) ([]*postPort.PostDTO, int64, error)
	Delete(ctx context.Context, id uint) error
}

type FeedUseCase interface {
	Feed(ctx context.Context, userID string, limit, offset int) ([]*postPort.PostDTO, int64, error)
}

type ActivityUseCase interface {
	Activity(ctx context.Context, userID, kind string, start, end *time.Time, limit, offset int) ([]activity.Event, int64, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, followerID, followingID string) (*followPort.FollowDTO, error)
	Unfollow(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*followPort.FollowDetailDTO, error)
	List(ctx context.Context, limit, offset int) ([]*followPort.FollowDetailDTO, int64, error)
	FollowersOf(ctx context.Context, userID string, limit, offset int) ([]*followPort.FollowerProfileDTO, int64, error)
	FollowingOf(ctx context.Context, userID string, limit, offset int) ([]*followPort.FollowerProfileDTO, int64, error)
}

type LikeUseCase interface {
	Like(ctx context.Context, userID string, postID uint) (*likePort.LikeDTO, error)
	Unlike(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*likePort.LikeDTO, error)
	List(ctx context.Context, limit, offset int) ([]*likePort.LikeDTO, int64, error)
}

type HashtagUseCase interface {
	PostsByTag(ctx context.Context, tag string, limit, offset int) ([]*postPort.PostDTO, int64, error)
	Create(ctx context.Context, tag string) (*hashtagPort.HashtagDTO, error)
	Get(ctx context.Context, id uint) (*hashtagPort.HashtagDTO, error)
	List(ctx context.Context, limit, offset int) ([]*hashtagPort.HashtagDTO, int64, error)
	Update(ctx context.Context, id uint, tag string) (*hashtagPort.HashtagDTO, error)
	Delete(ctx context.Context, id uint) error
}

// Deps bundles everything the router composes.
type Deps struct {
	Users    UserUseCase
	Posts    PostUseCase
	Feed     FeedUseCase
	Activity ActivityUseCase
	Follows  FollowUseCase
	Likes    LikeUseCase
	Hashtags HashtagUseCase

	JWTSecret  []byte
	Limiter    middleware.RateLimiter
	RateLimit  int64
	RateWindow time.Duration
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(deps Deps) *gin.Engine {
	r := gin.Default()

	if deps.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(deps.Limiter, deps.RateLimit, deps.RateWindow))
	}
	auth := middleware.JWTAuthMiddleware(deps.JWTSecret)

	uc := NewUserController(deps.Users, deps.Follows, deps.Activity)
	pc := NewPostController(deps.Posts, deps.Feed, deps.Hashtags)
	fc := NewFollowController(deps.Follows)
	lc := NewLikeController(deps.Likes)
	hc := NewHashtagController(deps.Hashtags)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Socialite API")
	})

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/register", uc.Register)
	users.POST("/login", uc.Login)
	users.GET("", uc.ListUsers)
	users.GET("/:id", uc.GetUser)
	users.PUT("/:id", auth, uc.UpdateUser)
	users.DELETE("/:id", auth, uc.DeleteUser)
	users.GET("/:id/followers", uc.GetFollowers)
	users.GET("/:id/following", uc.GetFollowing)
	users.GET("/:id/activity", uc.GetActivity)

	posts := api.Group("/posts")
	posts.GET("/feed", pc.GetFeed)
	posts.GET("/hashtag/:tag", pc.GetPostsByHashtag)
	posts.GET("", pc.ListPosts)
	posts.POST("", auth, pc.CreatePost)
	posts.PUT("/:id", auth, pc.UpdatePost)
	posts.GET("/:id", pc.GetPost)
	posts.DELETE("/:id", auth, pc.DeletePost)

	likes := api.Group("/likes")
	likes.GET("", lc.ListLikes)
	likes.POST("", auth, lc.CreateLike)
	likes.GET("/:id", lc.GetLike)
	likes.DELETE("/:id", auth, lc.DeleteLike)

	follows := api.Group("/follows")
	follows.GET("", fc.ListFollows)
	follows.POST("", auth, fc.CreateFollow)
	follows.GET("/:id", fc.GetFollow)
	follows.DELETE("/:id", auth, fc.DeleteFollow)

	hashtags := api.Group("/hashtags")
	hashtags.GET("", hc.ListHashtags)
	hashtags.POST("", auth, hc.CreateHashtag)
	hashtags.GET("/:id", hc.GetHashtag)
	hashtags.PUT("/:id", auth, hc.UpdateHashtag)
	hashtags.DELETE("/:id", auth, hc.DeleteHashtag)

	return r
}
