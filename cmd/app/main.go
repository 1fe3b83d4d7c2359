package main

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	dbadapter "socialite/internal/adapters/database"
	"socialite/internal/adapters/httpapi"
	redisadapter "socialite/internal/adapters/redis"
	"socialite/internal/config"
	activityapp "socialite/internal/core/activity/service"
	feedapp "socialite/internal/core/feed/service"
	followEntity "socialite/internal/core/follow"
	followapp "socialite/internal/core/follow/service"
	hashtagEntity "socialite/internal/core/hashtag"
	hashtagapp "socialite/internal/core/hashtag/service"
	likeEntity "socialite/internal/core/like"
	likeapp "socialite/internal/core/like/service"
	postEntity "socialite/internal/core/post"
	postapp "socialite/internal/core/post/service"
	userEntity "socialite/internal/core/user"
	userapp "socialite/internal/core/user/service"
)

func main() {
	config.InitLogger()
	defer config.Logger.Sync()
	config.Init()

	db, err := config.InitDB()
	if err != nil {
		config.Logger.Fatal("Error connecting to the database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&userEntity.User{},
		&postEntity.Post{},
		&followEntity.Follow{},
		&likeEntity.Like{},
		&hashtagEntity.Hashtag{},
	); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	redisClient, err := config.InitRedis()
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			config.Logger.Error("Error closing Redis connection", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			config.Logger.Error("Error getting raw DB", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			config.Logger.Error("Error closing database connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	followRepo := dbadapter.NewFollowRepositoryDatabase(db)
	likeRepo := dbadapter.NewLikeRepositoryDatabase(db)
	hashtagRepo := dbadapter.NewHashtagRepositoryDatabase(db)
	limiter := redisadapter.NewRateLimitRepositoryRedis(redisClient)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	userSvc := userapp.NewUserService(userRepo, jwtSecret)
	hashtagSvc := hashtagapp.NewHashtagService(hashtagRepo, postRepo, likeRepo)
	postSvc := postapp.NewPostService(postRepo, userRepo, likeRepo, hashtagSvc)
	followSvc := followapp.NewFollowService(followRepo, userRepo)
	likeSvc := likeapp.NewLikeService(likeRepo, postRepo, userRepo)
	feedSvc := feedapp.NewFeedService(userRepo, followRepo, postRepo, likeRepo)
	activitySvc := activityapp.NewActivityService(userRepo, postRepo, likeRepo, followRepo)

	rateLimit, err := strconv.ParseInt(os.Getenv("RATE_LIMIT"), 10, 64)
	if err != nil || rateLimit <= 0 {
		rateLimit = 300
	}

	r := httpapi.SetupRoutes(httpapi.Deps{
		Users:      userSvc,
		Posts:      postSvc,
		Feed:       feedSvc,
		Activity:   activitySvc,
		Follows:    followSvc,
		Likes:      likeSvc,
		Hashtags:   hashtagSvc,
		JWTSecret:  jwtSecret,
		Limiter:    limiter,
		RateLimit:  rateLimit,
		RateWindow: time.Minute,
	})

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start", zap.Error(err))
	}
}
