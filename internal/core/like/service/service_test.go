package likeapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
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

type fakePostStore struct {
	posts map[uint]*postEntity.Post
}

func (f *fakePostStore) FindByID(ctx context.Context, id uint) (*postEntity.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (f *fakePostStore) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}
func (f *fakePostStore) FindAll(ctx context.Context, limit, offset int) ([]*postEntity.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePostStore) FindByAuthors(ctx context.Context, ids []uuid.UUID, limit, offset int) ([]*postEntity.Post, int64, error) {
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

// fakeLikeStore rejects a second like of the same post by the same user,
// matching the unique index in the schema.
type fakeLikeStore struct {
	nextID uint
	likes  map[uint]*likeEntity.Like
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{nextID: 1, likes: map[uint]*likeEntity.Like{}}
}

func (f *fakeLikeStore) Create(ctx context.Context, l *likeEntity.Like) (*likeEntity.Like, error) {
	for _, existing := range f.likes {
		if existing.UserID == l.UserID && existing.PostID == l.PostID {
			return nil, apperrors.ErrDuplicate
		}
	}
	l.ID = f.nextID
	l.CreatedAt = time.Now()
	f.nextID++
	f.likes[l.ID] = l
	return l, nil
}

func (f *fakeLikeStore) FindByID(ctx context.Context, id uint) (*likeEntity.Like, error) {
	l, ok := f.likes[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return l, nil
}

func (f *fakeLikeStore) FindAll(ctx context.Context, limit, offset int) ([]*likeEntity.Like, int64, error) {
	return nil, 0, nil
}

func (f *fakeLikeStore) FindByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*likePort.LikeWithPost, error) {
	return nil, nil
}

func (f *fakeLikeStore) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	out := map[uint]int64{}
	for _, l := range f.likes {
		out[l.PostID]++
	}
	return out, nil
}

func (f *fakeLikeStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.likes[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.likes, id)
	return nil
}

func setup() (*LikeService, uuid.UUID, uint) {
	users := &fakeUserStore{users: map[uuid.UUID]*userEntity.User{}}
	posts := &fakePostStore{posts: map[uint]*postEntity.Post{}}
	likes := newFakeLikeStore()

	uid := uuid.Must(uuid.NewV4())
	users.users[uid] = &userEntity.User{ID: uid}
	posts.posts[1] = &postEntity.Post{ID: 1, AuthorID: uid, Content: "first"}

	return NewLikeService(likes, posts, users), uid, 1
}

func TestLikeCreatesRow(t *testing.T) {
	svc, uid, postID := setup()

	dto, err := svc.Like(context.Background(), uid.String(), postID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if dto.UserID != uid.String() || dto.PostID != postID {
		t.Fatalf("wrong like: %+v", dto)
	}
}

func TestLikeSamePostTwice(t *testing.T) {
	svc, uid, postID := setup()

	if _, err := svc.Like(context.Background(), uid.String(), postID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	_, err := svc.Like(context.Background(), uid.String(), postID)
	if !errors.Is(err, apperrors.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestLikeMissingPost(t *testing.T) {
	svc, uid, _ := setup()

	_, err := svc.Like(context.Background(), uid.String(), 999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLikeUnknownUser(t *testing.T) {
	svc, _, postID := setup()

	_, err := svc.Like(context.Background(), uuid.Must(uuid.NewV4()).String(), postID)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnlikeThenLikeAgain(t *testing.T) {
	svc, uid, postID := setup()

	dto, err := svc.Like(context.Background(), uid.String(), postID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := svc.Unlike(context.Background(), dto.ID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if _, err := svc.Like(context.Background(), uid.String(), postID); err != nil {
		t.Fatalf("re-like after unlike: %v", err)
	}
}

func TestUnlikeMissing(t *testing.T) {
	svc, _, _ := setup()

	err := svc.Unlike(context.Background(), 123)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
