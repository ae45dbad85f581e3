package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imalriyad/bistro-boss-server/entity"
)

var (
	// ErrUserExists signals the idempotent create: a user with the email is
	// already stored and nothing was inserted.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidID is returned when a path id cannot be parsed as an ObjectId.
	ErrInvalidID = errors.New("invalid id")
)

// UserStore is the slice of the users collection this service needs.
// Lookups return (nil, nil) when no document matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Insert(ctx context.Context, u *entity.User) (string, error)
	List(ctx context.Context) ([]entity.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserService struct{ Users UserStore }

func NewUserService(users UserStore) *UserService { return &UserService{Users: users} }

// Create stores the user unless one with the same email exists. The guard is
// a read before the insert; two concurrent creates with the same email can
// both pass it.
func (s *UserService) Create(ctx context.Context, u *entity.User) (string, error) {
	exist, err := s.Users.FindByEmail(ctx, u.Email)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", ErrUserExists
	}
	return s.Users.Insert(ctx, u)
}

// IsAdmin reports whether a stored user with the email has the admin role.
// A missing user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == "admin", nil
}

func (s *UserService) AssignRole(ctx context.Context, id, role string) (matched, modified int64, err error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, ErrInvalidID
	}
	return s.Users.SetRole(ctx, oid, role)
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.Users.Delete(ctx, oid)
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}
