package userapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"socialite/internal/apperrors"
	userEntity "socialite/internal/core/user"
	userPort "socialite/internal/ports/user"
)

const tokenTTL = 24 * time.Hour

// UserService handles registration, login and profile management.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// Register creates a user with a bcrypt-hashed password. An already-used
// email comes back ErrDuplicate.
func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string) (*userPort.UserDTO, error) {
	if _, err := s.UserRepository.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
	})
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// Login verifies credentials and issues a signed JWT.
func (s *UserService) Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	expiresAt := time.Now().Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "socialite",
		ExpiresAt: expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}
	return &userPort.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*userPort.UserDTO, error) {
	uid, err := uuid.FromString(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	u, err := s.UserRepository.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]*userPort.UserDTO, int64, error) {
	users, total, err := s.UserRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userPort.ToDTO(u))
	}
	return dtos, total, nil
}

// Update merges the supplied non-empty profile fields into the user.
func (s *UserService) Update(ctx context.Context, id, firstName, lastName, email string) (*userPort.UserDTO, error) {
	uid, err := uuid.FromString(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	u, err := s.UserRepository.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
	if email != "" {
		u.Email = email
	}
	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(updated), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.FromString(id)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	return s.UserRepository.Delete(ctx, uid)
}
