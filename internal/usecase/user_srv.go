package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	GetUsers(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
	log        *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, security utils.SecurityConfig, log *zap.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		bcryptCost: security.BcryptCost,
		log:        log.With(zap.String("service", "user")),
	}
}

// CreateUser registers a new user. The unique index on username decides
// conflicts, so concurrent registrations of one name yield one success.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if err := validate(req); err != nil {
		us.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password, us.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ValidationError{Fields: map[string]string{
				"password": "Maximum length is 72 bytes",
			}}
		}
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			us.log.Info("Username already taken", zap.String("username", req.Username))
			return nil, ErrUsernameTaken
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUsers(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	page, limit := req.CurrentPage(), req.Limit()

	users, err := us.userRepo.FindAll(ctx, limit, req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", limit),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	us.log.Debug("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.Int("per_page", limit),
	)

	return response.NewPage(users, response.UserToResponse, page, limit, total), nil
}
