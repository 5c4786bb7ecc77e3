package usecases

import (
	"context"
	"errors"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/domain/repositories"
	"e-commerce.backend/internal/domain/validation"
	"e-commerce.backend/pkg/crypto"
	"e-commerce.backend/pkg/jwt"
	"e-commerce.backend/pkg/redis"
	"e-commerce.backend/pkg/utils"
)

// Response messages
const (
	MsgVerifySent     = "Verification link was sent to your email"
	MsgVerified       = "Account was verified. U can close the tab"
	MsgResetSent      = "If the email is registered, a reset link was sent to it"
	MsgPasswordWasSet = "Password was reset"
)

// SessionRegistry remembers issued login sessions
type SessionRegistry interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthConfig holds link and token settings of the auth flows
type AuthConfig struct {
	PublicURL    string
	TokenSecret  string
	VerifyExpiry time.Duration
	ResetExpiry  time.Duration
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	sessions   SessionRegistry
	jwtService *jwt.JWTService
	notifier   Notifier
	cfg        AuthConfig
}

var newSessionID = utils.NewSortableID

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	sessions SessionRegistry,
	jwtService *jwt.JWTService,
	notifier Notifier,
	cfg AuthConfig,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtService: jwtService,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// Register creates an active, unverified account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if !validation.ValidateEmail(input.Email) {
		return nil, domainerrors.EmailDomainNotAllowed(input.Email)
	}
	if !validation.ValidatePassword(input.Password) {
		return nil, domainerrors.WeakPassword()
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.EmailTaken(input.Email)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.EmailTaken(input.Email)
		}
		return nil, err
	}

	u.notifier.Registered(ctx, user)
	return user, nil
}

// Login checks credentials and opens a session
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.Session, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Identifier())
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadCredentials()
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) || !user.IsActive {
		return nil, domainerrors.BadCredentials()
	}

	sessionID := newSessionID()
	token, err := u.jwtService.GenerateSessionToken(user.ID, user.Email, string(user.Role), sessionID)
	if err != nil {
		return nil, err
	}

	expiry := u.jwtService.SessionExpiry()
	data := &redis.SessionData{UserID: user.ID, Email: user.Email, CreatedAt: time.Now().UTC()}
	if err := u.sessions.CreateSession(ctx, sessionID, data, expiry); err != nil {
		return nil, err
	}

	return &entities.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// Authenticate resolves a session token to the current user. The user row
// is reloaded so admin changes apply to open sessions.
func (u *AuthUsecase) Authenticate(ctx context.Context, token string) (*entities.Principal, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("Unauthorized")
	}

	session, err := u.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		if redis.IsNil(err) {
			return nil, domainerrors.Unauthorized("Unauthorized")
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, domainerrors.Unauthorized("Unauthorized")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Unauthorized")
		}
		return nil, err
	}

	return &entities.Principal{User: user, SessionID: claims.SessionID}, nil
}

// Logout forgets the session so its cookie stops working
func (u *AuthUsecase) Logout(ctx context.Context, principal *entities.Principal) error {
	return u.sessions.DeleteSession(ctx, principal.SessionID)
}

// GetUser gets a user by ID
func (u *AuthUsecase) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.UserNotFound()
		}
		return nil, err
	}
	return user, nil
}

// RequestVerify mails a verification link to user
func (u *AuthUsecase) RequestVerify(ctx context.Context, user *entities.User) (string, error) {
	if !user.IsActive {
		return "", domainerrors.UserNotActive()
	}
	if user.IsVerified {
		return "", domainerrors.AlreadyVerified()
	}

	token, err := u.jwtService.GenerateActionToken(jwt.AudienceVerify, jwt.ActionClaims{
		Email:            user.Email,
		RegisteredClaims: gojwt.RegisteredClaims{Subject: strconv.FormatInt(user.ID, 10)},
	}, u.cfg.VerifyExpiry)
	if err != nil {
		return "", err
	}

	u.notifier.VerifyRequested(ctx, user, u.cfg.PublicURL+"/verify/"+token)
	return MsgVerifySent, nil
}

// Verify consumes a verification token
func (u *AuthUsecase) Verify(ctx context.Context, token string) (string, error) {
	claims, err := u.jwtService.ParseActionToken(token, jwt.AudienceVerify)
	if err != nil || claims.Subject == "" || claims.Email == "" {
		return "", domainerrors.InvalidVerifyToken()
	}

	user, err := u.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.VerifyUserNotExists()
		}
		return "", err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return "", domainerrors.VerifyIDInvalid()
	}
	if id != user.ID {
		return "", domainerrors.VerifyIDMismatch()
	}
	if user.IsVerified {
		return "", domainerrors.VerifyReplayed()
	}

	if err := u.userRepo.SetVerified(ctx, user.ID); err != nil {
		return "", err
	}
	user.IsVerified = true

	u.notifier.Verified(ctx, user)
	return MsgVerified, nil
}

// ForgotPassword mails a reset link. Unknown emails get the same answer.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return MsgResetSent, nil
		}
		return "", err
	}
	if !user.IsActive {
		return "", domainerrors.UserInactive()
	}

	token, err := u.jwtService.GenerateActionToken(jwt.AudienceReset, jwt.ActionClaims{
		PasswordFingerprint: crypto.PasswordFingerprint(u.cfg.TokenSecret, user.PasswordHash),
		RegisteredClaims:    gojwt.RegisteredClaims{Subject: strconv.FormatInt(user.ID, 10)},
	}, u.cfg.ResetExpiry)
	if err != nil {
		return "", err
	}

	u.notifier.ResetRequested(ctx, user, u.cfg.PublicURL+"/reset/"+token)
	return MsgResetSent, nil
}

// ResetPassword consumes a reset token. The token dies with the password
// hash it was issued for.
func (u *AuthUsecase) ResetPassword(ctx context.Context, token, password string) (string, error) {
	claims, err := u.jwtService.ParseActionToken(token, jwt.AudienceReset)
	if err != nil || claims.Subject == "" || claims.PasswordFingerprint == "" {
		return "", domainerrors.InvalidResetToken()
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return "", domainerrors.InvalidResetToken()
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.InvalidResetToken()
		}
		return "", err
	}
	if !user.IsActive {
		return "", domainerrors.UserInactive()
	}
	if !crypto.FingerprintMatches(u.cfg.TokenSecret, user.PasswordHash, claims.PasswordFingerprint) {
		return "", domainerrors.InvalidResetToken()
	}

	if err := validation.CheckPassword(password); err != nil {
		return "", domainerrors.Validation(err.Error())
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}
	if err := u.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return "", err
	}
	user.PasswordHash = passwordHash

	u.notifier.PasswordReset(ctx, user)
	return MsgPasswordWasSet, nil
}
