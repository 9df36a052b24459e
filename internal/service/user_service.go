package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/shopscout/catalog-service/config"
	"github.com/shopscout/catalog-service/internal/domain"
	"github.com/shopscout/catalog-service/internal/dto"
	"github.com/shopscout/catalog-service/internal/repository"
	"github.com/shopscout/catalog-service/pkg/auth"
	"github.com/shopscout/catalog-service/pkg/errs"
)

type UserServiceImpl struct {
	repo   repository.MongoDBUserRepository
	config config.Config
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
}

func CreateUserService(repo repository.MongoDBUserRepository, config config.Config, hasher auth.PasswordHasher, tokens auth.TokenIssuer) UserService {
	return &UserServiceImpl{repo: repo, config: config, hasher: hasher, tokens: tokens}
}

func (s *UserServiceImpl) Register(ctx context.Context, data dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	if data.Email == "" || data.Password == "" || data.Username == "" {
		return resp, errs.ErrClient
	}

	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return resp, errs.ErrEmailAlreadyUsed
	}

	hash, err := s.hasher.Hash(data.Password)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Register").Msg("")
		return resp, errs.ErrInternalServer
	}

	id, err := s.repo.AddUser(ctx, domain.User{
		Email:          data.Email,
		Username:       data.Username,
		HashedPassword: hash,
	})
	if err != nil {
		return
	}

	token, err := s.tokens.Sign(id.Hex())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Register").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	resp.UserID = id.Hex()

	return resp, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, data dto.LoginRequest) (resp dto.AuthResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, data.Email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return resp, errs.ErrInvalidCredentials
	}

	if err = s.hasher.Verify(user.HashedPassword, data.Password); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID.Hex())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	resp.UserID = user.ID.Hex()
	resp.Username = user.Username
	resp.Email = user.Email

	return resp, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (resp dto.ProfileResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	resp.Email = user.Email
	resp.Username = user.Username

	return resp, nil
}
