package services

import (
	"context"
	"errors"
	"time"

	"hotel-management/dto"
	apperrors "hotel-management/errors"
	"hotel-management/metrics"
	"hotel-management/models"
	"hotel-management/repository"
	"hotel-management/services/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 12 * time.Hour

// UserStore là phần lưu trữ tài khoản mà AuthService cần
type UserStore interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	InsertUser(ctx context.Context, u *models.User) error
}

// SessionStore lưu các session đang đăng nhập để có thể thu hồi khi logout
type SessionStore interface {
	Save(ctx context.Context, session Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Identity là danh tính operator đã xác thực, được truyền tường minh vào mọi lời gọi service
type Identity struct {
	OperatorID string
	SessionID  string
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	tokenTTL time.Duration
	logger   logger.Logger
	now      func() time.Time
}

type AuthServiceOptions struct {
	Users    UserStore
	Sessions SessionStore
	Secret   []byte
	TokenTTL time.Duration
	Logger   logger.Logger
	Now      func() time.Time
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	s := &AuthService{
		users:    opts.Users,
		sessions: opts.Sessions,
		secret:   opts.Secret,
		tokenTTL: opts.TokenTTL,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = DefaultTokenTTL
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Register tạo tài khoản operator mới, mật khẩu được lưu dưới dạng bcrypt hash
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) error {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "cannot hash password", err)
	}

	user := models.User{ID: input.ID, PasswordHash: hash, CreatedAt: s.now()}
	if err := s.users.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return apperrors.NewAppError(apperrors.ErrCodeUserExists, "user already exists", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "database error", err)
	}
	s.logger.Info("✅ operator %s registered", user.ID)
	return nil
}

// Login kiểm tra mật khẩu, tạo session trong store và trả về access token.
// Mọi lỗi xác thực đều trả về cùng một thông báo.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	loginFailed := apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Login failed", nil)

	user, err := s.users.FindUserByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ObserveLogin(false)
			return nil, loginFailed
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "database error", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		metrics.ObserveLogin(false)
		s.logger.Warn("failed login for %s", input.ID)
		return nil, loginFailed
	}

	issuedAt := s.now()
	session := Session{
		ID:         uuid.NewString(),
		OperatorID: user.ID,
		CreatedAt:  issuedAt,
		ExpiresAt:  issuedAt.Add(s.tokenTTL),
	}
	if err := s.sessions.Save(ctx, session, s.tokenTTL); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "cannot store session", err)
	}

	token, err := GenerateToken(UserInfo{OperatorID: user.ID}, session.ID, s.secret, issuedAt, s.tokenTTL)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "cannot sign token", err)
	}

	metrics.ObserveLogin(true)
	return &dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// Authenticate xác thực token và kiểm tra session còn tồn tại (chưa logout, chưa hết hạn)
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := ParseToken(token, s.secret)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, claims.Id)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "session expired", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "cannot load session", err)
	}
	if session.OperatorID != claims.UserInfo.OperatorID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "session does not belong to token", nil)
	}
	return &Identity{OperatorID: session.OperatorID, SessionID: session.ID}, nil
}

// Logout xóa session; token cũ sẽ không còn dùng được
func (s *AuthService) Logout(ctx context.Context, identity Identity) error {
	if err := s.sessions.Delete(ctx, identity.SessionID); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "cannot delete session", err)
	}
	s.logger.Info("operator %s logged out", identity.OperatorID)
	return nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
