package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	users      UserStore
	couples    CoupleStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAuthService(users UserStore, couples CoupleStore, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		couples:    couples,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register creates the user together with a fresh couple. The partner joins
// later with the couple's invite code.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, _ := s.users.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	couple := &models.Couple{
		ID:         uuid.New(),
		InviteCode: newInviteCode(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.couples.Create(ctx, couple); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		CoupleID:  couple.ID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resp, err := s.tokens(user)
	if err != nil {
		return nil, err
	}
	resp.InviteCode = couple.InviteCode
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.tokens(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokens(user)
}

// JoinCouple moves the user onto the couple behind the invite code and issues
// tokens scoped to it.
func (s *AuthService) JoinCouple(ctx context.Context, userID uuid.UUID, inviteCode string) (*dto.AuthResponse, error) {
	couple, err := s.couples.GetByInviteCode(ctx, strings.ToUpper(strings.TrimSpace(inviteCode)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, err
	}

	if err := s.users.UpdateCouple(ctx, userID, couple.ID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User joined couple",
		zap.String("user_id", userID.String()),
		zap.String("couple_id", couple.ID.String()),
	)
	return s.tokens(user)
}

func (s *AuthService) tokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.CoupleID.String(), user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Name:     user.Name,
			Email:    user.Email,
			CoupleID: user.CoupleID.String(),
		},
	}, nil
}

func newInviteCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
