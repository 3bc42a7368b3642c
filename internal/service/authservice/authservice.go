package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/coinledger/internal/domain"
	"github.com/GlebRadaev/coinledger/internal/metrics"
	"github.com/GlebRadaev/coinledger/internal/pg"
	"github.com/GlebRadaev/coinledger/pkg/auth"
	"github.com/GlebRadaev/coinledger/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	AdjustWallet(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type LedgerRepo interface {
	Append(ctx context.Context, e *domain.LedgerEntry) error
}

var (
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidUsername    = errors.New("Username is required")
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type Service struct {
	users        Repo
	sessions     SessionRepo
	ledger       LedgerRepo
	txManager    pg.TXManager
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	welcomeGrant decimal.Decimal
	sessionTTL   time.Duration
	now          func() time.Time
}

func New(users Repo, sessions SessionRepo, ledger LedgerRepo, txManager pg.TXManager,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface,
	welcomeGrant decimal.Decimal, sessionTTL time.Duration) *Service {
	return &Service{
		users:        users,
		sessions:     sessions,
		ledger:       ledger,
		txManager:    txManager,
		hashService:  hashService,
		jwtService:   jwtService,
		welcomeGrant: welcomeGrant,
		sessionTTL:   sessionTTL,
		now:          time.Now,
	}
}

// Register creates the user and credits the welcome grant in one unit of work.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	address, err := validate.NewWalletAddress()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err = s.users.Create(ctx, &domain.User{
			ID:            uuid.New(),
			Username:      username,
			PasswordHash:  hashedPassword,
			WalletAddress: address,
			WalletBalance: decimal.Zero,
			CreatedAt:     now,
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrUsernameTaken
			}
			return err
		}
		if !s.welcomeGrant.IsPositive() {
			return nil
		}

		entry := domain.NewCompletedEntry(domain.KindWelcomeGrant, s.welcomeGrant, "Welcome grant", now)
		entry.ToUserID = &user.ID
		if err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}
		user.WalletBalance, err = s.users.AdjustWallet(ctx, user.ID, s.welcomeGrant)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, err
		}
		zap.L().Error("can't register user", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("register user: %w", err)
	}

	if s.welcomeGrant.IsPositive() {
		metrics.RecordLedgerEntry(string(domain.KindWelcomeGrant), s.welcomeGrant)
	}
	zap.L().Info("user successfully registered", zap.String("username", username))
	return user, nil
}

// Login checks the password, opens a session row and signs a token bound to it.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
		Active:    true,
	}
	session.Token, err = s.jwtService.GenerateJWT(user.ID, session.ID, user.Username, session.ExpiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.String("username", user.Username))
	return &Session{Token: session.Token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Deactivate(ctx, sessionID)
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	return user, nil
}

// Validate resolves a bearer token to its principal. The token must be
// bound to an active, unexpired session.
func (s *Service) Validate(ctx context.Context, token string) (*auth.Principal, error) {
	if token == "" {
		return nil, auth.ErrMissingToken
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active || session.UserID != claims.UserID {
		return nil, auth.ErrInvalidToken
	}
	if s.now().After(session.ExpiresAt) {
		return nil, auth.ErrExpiredToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Principal{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: session.ID,
		IsAdmin:   user.IsAdmin,
	}, nil
}
