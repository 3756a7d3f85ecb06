package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dom/league-improvement-tracker/internal/config"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameExists     = errors.New("username already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInactiveUser       = errors.New("inactive user")
)

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	IsAdmin  bool
}

type UpdateMeInput struct {
	Email           string
	Username        string
	CurrentPassword string
	NewPassword     string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if existing, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, ErrUsernameExists
	}
	if existing, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          input.Email,
		Username:       input.Username,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		IsAdmin:        input.IsAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a bearer access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, ErrInactiveUser
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateAccessToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(user.ID), 10),
		"name": user.Username,
		"exp":  time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing sub claim")
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid sub claim")
	}

	return uint(userID), nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateMe(ctx context.Context, userID uint, input UpdateMeInput) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if existing, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
			return nil, ErrUsernameExists
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
			return nil, ErrEmailExists
		}
		user.Email = input.Email
	}

	if input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.CurrentPassword)); err != nil {
			return nil, ErrWrongPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.userRepo.List(ctx, limit, offset)
}

// EnsureAdmin creates or repairs the bootstrap admin account at startup.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		return nil
	}

	admin, err := s.userRepo.GetByUsername(ctx, s.cfg.AdminUsername)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		_, err = s.Register(ctx, RegisterInput{
			Email:    s.cfg.AdminEmail,
			Username: s.cfg.AdminUsername,
			Password: s.cfg.AdminPassword,
			IsAdmin:  true,
		})
		return err
	}

	if !admin.IsAdmin {
		admin.IsAdmin = true
		return s.userRepo.Update(ctx, admin)
	}

	return nil
}
