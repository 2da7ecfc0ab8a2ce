package user

import (
	"context"
	"errors"
	"strings"

	"Recipe-Catalog-API/domain"
	"Recipe-Catalog-API/entities"
	"Recipe-Catalog-API/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// NormalizeEmail is the canonical form used for uniqueness checks, storage
// and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return domain.RegisterResponse{}, domain.ErrEmailRequired
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	newUser := &entities.User{
		Email:    email,
		Name:     req.Name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    newUser.ID.String(),
		Email: newUser.Email,
		Name:  newUser.Name,
	}, nil
}

// CreateSuperuser provisions a staff/superuser account out of band. It is not
// reachable from the HTTP surface.
func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*entities.User, error) {
	normalized := NormalizeEmail(email)

	existing, err := s.userRepository.GetUserByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		res, err := s.Register(ctx, domain.RegisterRequest{Email: email, Password: password})
		if err != nil {
			return nil, err
		}
		existing, err = s.userRepository.GetUserByID(ctx, res.ID)
		if err != nil {
			return nil, err
		}
	}

	existing.IsStaff = true
	existing.IsSuperuser = true
	if err := s.userRepository.UpdateUser(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	found, err := s.userRepository.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn a comparison so a missing account costs the same as a
			// wrong password
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	if !found.IsActive {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(found.ID.String(), domain.RoleUser)
	return domain.LoginResponse{Token: token}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}
	return domain.MeResponse{Email: found.Email, Name: found.Name}, nil
}

// UpdateUser patches the provided fields and returns the resulting profile,
// mirroring what a subsequent Me call would report.
func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.MeResponse, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.MeResponse{}, err
		}
		found.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(ctx, found); err != nil {
		return domain.MeResponse{}, err
	}
	return domain.MeResponse{Email: found.Email, Name: found.Name}, nil
}

// bcrypt hash of an unguessable throwaway value, only ever compared against.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("recipe-catalog-dummy"), bcrypt.DefaultCost)
	return h
}()
