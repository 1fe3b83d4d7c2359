package activityapp

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	"socialite/internal/core/activity"
	followEntity "socialite/internal/core/follow"
	postEntity "socialite/internal/core/post"
	followPort "socialite/internal/ports/follow"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
	userPort "socialite/internal/ports/user"
)

// ActivityService merges a user's posts, likes and follows into one
// time-ordered stream. Each kind is fetched in full (inside the optional
// date bounds), the three streams are concatenated and stably sorted by
// timestamp descending, and only then is the page cut. Paginating any one
// kind before the merge would break the global ordering.
type ActivityService struct {
	UserRepository   userPort.UserRepository
	PostRepository   postPort.PostRepository
	LikeRepository   likePort.LikeRepository
	FollowRepository followPort.FollowRepository
}

func NewActivityService(
	userRepo userPort.UserRepository,
	postRepo postPort.PostRepository,
	likeRepo likePort.LikeRepository,
	followRepo followPort.FollowRepository,
) *ActivityService {
	return &ActivityService{
		UserRepository:   userRepo,
		PostRepository:   postRepo,
		LikeRepository:   likeRepo,
		FollowRepository: followRepo,
	}
}

// Activity returns one page of the merged stream plus the true total before
// windowing. kind narrows to a single activity type; empty means all three.
// Bounds are inclusive and either may be nil.
func (s *ActivityService) Activity(ctx context.Context, userID, kind string, start, end *time.Time, limit, offset int) ([]activity.Event, int64, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, uid); err != nil {
		return nil, 0, err
	}

	switch kind {
	case "", activity.KindPost, activity.KindLike, activity.KindFollow:
	default:
		return nil, 0, fmt.Errorf("%w: unknown activity type %q", apperrors.ErrValidation, kind)
	}

	var (
		posts   []*postEntity.Post
		likes   []*likePort.LikeWithPost
		follows []*followEntity.Follow

		postsErr, likesErr, followsErr error
	)

	// The three reads are independent; run them concurrently and join
	// before the merge. Completion order is irrelevant since the merge
	// re-sorts globally.
	var wg sync.WaitGroup
	if kind == "" || kind == activity.KindPost {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posts, postsErr = s.PostRepository.FindByAuthor(ctx, uid, start, end)
		}()
	}
	if kind == "" || kind == activity.KindLike {
		wg.Add(1)
		go func() {
			defer wg.Done()
			likes, likesErr = s.LikeRepository.FindByUser(ctx, uid, start, end)
		}()
	}
	if kind == "" || kind == activity.KindFollow {
		wg.Add(1)
		go func() {
			defer wg.Done()
			follows, followsErr = s.FollowRepository.FindByFollower(ctx, uid, start, end)
		}()
	}
	wg.Wait()

	for _, err := range []error{postsErr, likesErr, followsErr} {
		if err != nil {
			return nil, 0, err
		}
	}

	events := make([]activity.Event, 0, len(posts)+len(likes)+len(follows))
	for _, p := range posts {
		events = append(events, activity.Event{
			Type: activity.KindPost,
			Data: activity.PostPayload{
				PostID:    p.ID,
				Content:   p.Content,
				CreatedAt: p.CreatedAt,
			},
			Timestamp: p.CreatedAt,
		})
	}
	for _, l := range likes {
		events = append(events, activity.Event{
			Type: activity.KindLike,
			Data: activity.LikePayload{
				PostID:      l.PostID,
				PostContent: l.PostContent,
			},
			Timestamp: l.CreatedAt,
		})
	}
	for _, f := range follows {
		events = append(events, activity.Event{
			Type: activity.KindFollow,
			Data: activity.FollowPayload{
				FollowedUserID: f.FollowingID.String(),
				FirstName:      f.Following.FirstName,
				LastName:       f.Following.LastName,
			},
			Timestamp: f.CreatedAt,
		})
	}

	// Stable sort keeps concatenation order (posts, likes, follows) as the
	// tie-break for identical timestamps, so repeated queries paginate over
	// the same sequence.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	total := int64(len(events))
	if offset >= len(events) {
		return []activity.Event{}, total, nil
	}
	last := offset + limit
	if last > len(events) {
		last = len(events)
	}
	return events[offset:last], total, nil
}
