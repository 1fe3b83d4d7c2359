package feedapp

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	followEntity "socialite/internal/core/follow"
	hashtagEntity "socialite/internal/core/hashtag"
	likeEntity "socialite/internal/core/like"
	postEntity "socialite/internal/core/post"
	userEntity "socialite/internal/core/user"
	likePort "socialite/internal/ports/like"
)

type fakeUserStore struct {
	users map[uuid.UUID]*userEntity.User
}

func (f *fakeUserStore) Create(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserStore) FindAll(ctx context.Context, limit, offset int) ([]*userEntity.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserStore) Update(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	return u, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeFollowStore struct {
	following map[uuid.UUID][]uuid.UUID
}

func (f *fakeFollowStore) FollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	return f.following[followerID], nil
}

func (f *fakeFollowStore) Create(ctx context.Context, fl *followEntity.Follow) (*followEntity.Follow, error) {
	return fl, nil
}
func (f *fakeFollowStore) FindByID(ctx context.Context, id uint) (*followEntity.Follow, error) {
	return nil, apperrors.ErrNotFound
}
func (f *fakeFollowStore) FindAll(ctx context.Context, limit, offset int) ([]*followEntity.Follow, int64, error) {
	return nil, 0, nil
}
func (f *fakeFollowStore) FollowersOf(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*followEntity.Follow, int64, error) {
	return nil, 0, nil
}
func (f *fakeFollowStore) FollowingOf(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*followEntity.Follow, int64, error) {
	return nil, 0, nil
}
func (f *fakeFollowStore) FindByFollower(ctx context.Context, followerID uuid.UUID, start, end *time.Time) ([]*followEntity.Follow, error) {
	return nil, nil
}
func (f *fakeFollowStore) Delete(ctx context.Context, id uint) error { return nil }

type fakePostStore struct {
	posts []*postEntity.Post
}

// FindByAuthors mirrors the database contract: one global newest-first
// ordering over the union, id ascending on equal timestamps, window last.
func (f *fakePostStore) FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*postEntity.Post, int64, error) {
	byAuthor := make(map[uuid.UUID]bool, len(authorIDs))
	for _, id := range authorIDs {
		byAuthor[id] = true
	}
	var matched []*postEntity.Post
	for _, p := range f.posts {
		if byAuthor[p.AuthorID] {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*postEntity.Post{}, total, nil
	}
	last := offset + limit
	if last > len(matched) {
		last = len(matched)
	}
	return matched[offset:last], total, nil
}

func (f *fakePostStore) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}
func (f *fakePostStore) FindByID(ctx context.Context, id uint) (*postEntity.Post, error) {
	return nil, apperrors.ErrNotFound
}
func (f *fakePostStore) FindAll(ctx context.Context, limit, offset int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePostStore) FindByAuthor(ctx context.Context, authorID uuid.UUID, start, end *time.Time) ([]*postEntity.Post, error) {
	return nil, nil
}
func (f *fakePostStore) FindByHashtag(ctx context.Context, hashtagID uint, limit, offset int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePostStore) CountByHashtag(ctx context.Context, hashtagID uint) (int64, error) {
	return 0, nil
}
func (f *fakePostStore) Update(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}
func (f *fakePostStore) ReplaceHashtags(ctx context.Context, p *postEntity.Post, tags []hashtagEntity.Hashtag) error {
	return nil
}
func (f *fakePostStore) Delete(ctx context.Context, id uint) error { return nil }

type fakeLikeStore struct {
	counts map[uint]int64
}

func (f *fakeLikeStore) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(postIDs))
	for _, id := range postIDs {
		if n, ok := f.counts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (f *fakeLikeStore) Create(ctx context.Context, l *likeEntity.Like) (*likeEntity.Like, error) {
	return l, nil
}
func (f *fakeLikeStore) FindByID(ctx context.Context, id uint) (*likeEntity.Like, error) {
	return nil, apperrors.ErrNotFound
}
func (f *fakeLikeStore) FindAll(ctx context.Context, limit, offset int) ([]*likeEntity.Like, int64, error) {
	return nil, 0, nil
}
func (f *fakeLikeStore) FindByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*likePort.LikeWithPost, error) {
	return nil, nil
}
func (f *fakeLikeStore) Delete(ctx context.Context, id uint) error { return nil }

func newFixture() (*fakeUserStore, *fakeFollowStore, *fakePostStore, *fakeLikeStore) {
	return &fakeUserStore{users: map[uuid.UUID]*userEntity.User{}},
		&fakeFollowStore{following: map[uuid.UUID][]uuid.UUID{}},
		&fakePostStore{},
		&fakeLikeStore{counts: map[uint]int64{}}
}

func addUser(users *fakeUserStore) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	users.users[id] = &userEntity.User{ID: id}
	return id
}

func TestFeedOrdersFollowedPostsNewestFirst(t *testing.T) {
	users, follows, posts, likes := newFixture()
	reader := addUser(users)
	alice := addUser(users)
	bob := addUser(users)
	follows.following[reader] = []uuid.UUID{alice, bob}

	t1 := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	posts.posts = []*postEntity.Post{
		{ID: 1, AuthorID: alice, Content: "hello", CreatedAt: t1},
		{ID: 2, AuthorID: bob, Content: "world", CreatedAt: t1.Add(time.Hour)},
	}
	likes.counts[2] = 3

	svc := NewFeedService(users, follows, posts, likes)
	page, total, err := svc.Feed(context.Background(), reader.String(), 20, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 2 || len(page) != 2 {
		t.Fatalf("expected 2 posts, got total=%d len=%d", total, len(page))
	}
	if page[0].Content != "world" || page[1].Content != "hello" {
		t.Fatalf("wrong order: [%s, %s]", page[0].Content, page[1].Content)
	}
	if page[0].LikeCount != 3 || page[1].LikeCount != 0 {
		t.Fatalf("wrong like counts: [%d, %d]", page[0].LikeCount, page[1].LikeCount)
	}
}

func TestFeedExcludesUnfollowedAuthors(t *testing.T) {
	users, follows, posts, likes := newFixture()
	reader := addUser(users)
	alice := addUser(users)
	stranger := addUser(users)
	follows.following[reader] = []uuid.UUID{alice}

	now := time.Now()
	posts.posts = []*postEntity.Post{
		{ID: 1, AuthorID: alice, Content: "followed", CreatedAt: now},
		{ID: 2, AuthorID: stranger, Content: "not followed", CreatedAt: now.Add(time.Hour)},
		{ID: 3, AuthorID: reader, Content: "own post", CreatedAt: now.Add(2 * time.Hour)},
	}

	svc := NewFeedService(users, follows, posts, likes)
	page, total, err := svc.Feed(context.Background(), reader.String(), 20, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 1 || len(page) != 1 || page[0].Content != "followed" {
		t.Fatalf("expected only the followed author's post, got total=%d page=%+v", total, page)
	}
}

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	users, follows, posts, likes := newFixture()
	reader := addUser(users)
	other := addUser(users)
	posts.posts = []*postEntity.Post{{ID: 1, AuthorID: other, CreatedAt: time.Now()}}

	svc := NewFeedService(users, follows, posts, likes)
	page, total, err := svc.Feed(context.Background(), reader.String(), 20, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 0 || len(page) != 0 {
		t.Fatalf("expected empty feed, got total=%d len=%d", total, len(page))
	}
}

func TestFeedPagination(t *testing.T) {
	users, follows, posts, likes := newFixture()
	reader := addUser(users)
	alice := addUser(users)
	follows.following[reader] = []uuid.UUID{alice}

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		posts.posts = append(posts.posts, &postEntity.Post{
			ID:        uint(i + 1),
			AuthorID:  alice,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	svc := NewFeedService(users, follows, posts, likes)
	page, total, err := svc.Feed(context.Background(), reader.String(), 2, 2)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 || page[0].ID != 3 || page[1].ID != 2 {
		t.Fatalf("wrong window: %+v", page)
	}
}

func TestFeedUnknownUser(t *testing.T) {
	users, follows, posts, likes := newFixture()
	svc := NewFeedService(users, follows, posts, likes)

	_, _, err := svc.Feed(context.Background(), uuid.Must(uuid.NewV4()).String(), 20, 0)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFeedRejectsMalformedUserID(t *testing.T) {
	users, follows, posts, likes := newFixture()
	svc := NewFeedService(users, follows, posts, likes)

	_, _, err := svc.Feed(context.Background(), "not-a-uuid", 20, 0)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
