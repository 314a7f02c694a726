package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/utsab8/Ecommerce-Cart-System/internal/domain"
	"github.com/utsab8/Ecommerce-Cart-System/internal/repos"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("an account with this email already exists")
)

type AuthService struct {
	Users *repos.UserRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	DOB       string
}

// Register creates a USER account. Field formats are validated at the
// handler; this checks the duplicate-email rule and hashes the password.
func (s *AuthService) Register(in Registration) (int, error) {
	taken, err := s.Users.EmailExists(in.Email)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrEmailTaken
	}
	h, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return 0, err
	}
	return s.Users.Create(domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Hash:      string(h),
		Role:      "USER",
		DOB:       in.DOB,
	})
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
