// Package services contains the domain services of the Maré Viva client:
// authentication, product catalog, messaging, profiles, and demo-data
// seeding. Mutating operations return result values whose Message field is
// user-facing text; storage failures never propagate as errors to the
// presentation layer.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/cryptox"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/repositories/metadata"
	"github.com/mareviva/mareviva/internal/repositories/recovery"
	"github.com/mareviva/mareviva/internal/repositories/users"
)

// Shared user-facing texts.
const (
	msgFillAllFields  = "Por favor, preencha todos os campos"
	msgPasswordLength = "A senha deve ter pelo menos 6 caracteres"
)

// recoveryCodeTTL is how long a recovery code stays valid.
const recoveryCodeTTL = 10 * time.Minute

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService manages the user directory, the device session pointer, and
// pending password-recovery codes.
//
// ResetPassword does not require a previously verified recovery code; the
// caller is trusted to gate it behind VerifyRecoveryCode succeeding.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) models.Result
	Login(ctx context.Context, email, password string) models.LoginResult
	SendRecoveryCode(ctx context.Context, email string) models.RecoveryResult
	VerifyRecoveryCode(ctx context.Context, email, code string) models.Result
	ResetPassword(ctx context.Context, email, newPassword string) models.Result

	// CurrentUser returns the logged-in user recorded on this device, or
	// nil when nobody is logged in (or the session record is unreadable).
	CurrentUser(ctx context.Context) *models.User

	// Logout clears the session pointer. Failures are swallowed.
	Logout(ctx context.Context)
}

type authService struct {
	users users.Repository
	codes recovery.Repository
	meta  metadata.Repository
	log   logging.Logger

	// test seams
	now          func() time.Time
	generateCode func() (string, error)
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(users users.Repository, codes recovery.Repository, meta metadata.Repository, log logging.Logger) AuthService {
	return &authService{
		users:        users,
		codes:        codes,
		meta:         meta,
		log:          log,
		now:          time.Now,
		generateCode: common.GenerateRecoveryCode,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) models.Result {
	if name == "" || email == "" || password == "" {
		return models.Failure(msgFillAllFields)
	}
	if len(password) < 6 {
		return models.Failure(msgPasswordLength)
	}
	if !emailPattern.MatchString(email) {
		return models.Failure("Email inválido")
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return models.Failure("Este email já está cadastrado")
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, "register: user lookup failed", "error", err)
		return models.Failure("Erro ao criar conta. Tente novamente.")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "register: password hashing failed", "error", err)
		return models.Failure("Erro ao criar conta. Tente novamente.")
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.log.Error(ctx, "register: user insert failed", "error", err)
		return models.Failure("Erro ao criar conta. Tente novamente.")
	}

	s.log.Info(ctx, "user registered", "userId", u.ID)
	return models.OK("Conta criada com sucesso!")
}

func (s *authService) Login(ctx context.Context, email, password string) models.LoginResult {
	if email == "" || password == "" {
		return models.LoginResult{Result: models.Failure(msgFillAllFields)}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "login: user lookup failed", "error", err)
			return models.LoginResult{Result: models.Failure("Erro ao fazer login. Tente novamente.")}
		}
		// same message as a wrong password, so the response does not
		// reveal whether the email is registered
		return models.LoginResult{Result: models.Failure("Email ou senha incorretos")}
	}

	if !cryptox.CheckPassword(u.PasswordHash, password) {
		return models.LoginResult{Result: models.Failure("Email ou senha incorretos")}
	}

	if err := s.storeSession(ctx, u); err != nil {
		s.log.Error(ctx, "login: session store failed", "error", err)
		return models.LoginResult{Result: models.Failure("Erro ao fazer login. Tente novamente.")}
	}

	s.log.Info(ctx, "user logged in", "userId", u.ID)
	return models.LoginResult{Result: models.OK("Login realizado com sucesso!"), User: u}
}

func (s *authService) SendRecoveryCode(ctx context.Context, email string) models.RecoveryResult {
	if email == "" {
		return models.RecoveryResult{Result: models.Failure("Por favor, informe seu email")}
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// do not reveal whether the email is registered
			return models.RecoveryResult{Result: models.OK("Se o email estiver cadastrado, um código será enviado.")}
		}
		s.log.Error(ctx, "recovery: user lookup failed", "error", err)
		return models.RecoveryResult{Result: models.Failure("Erro ao enviar código. Tente novamente.")}
	}

	code, err := s.generateCode()
	if err != nil {
		s.log.Error(ctx, "recovery: code generation failed", "error", err)
		return models.RecoveryResult{Result: models.Failure("Erro ao enviar código. Tente novamente.")}
	}

	rc := &models.RecoveryCode{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(recoveryCodeTTL).UnixMilli(),
	}
	if err := s.codes.Set(ctx, rc); err != nil {
		s.log.Error(ctx, "recovery: code store failed", "error", err)
		return models.RecoveryResult{Result: models.Failure("Erro ao enviar código. Tente novamente.")}
	}

	s.log.Info(ctx, "recovery code issued")
	// the code is returned inline in place of out-of-band email delivery
	return models.RecoveryResult{
		Result: models.OK("Código enviado! (Para testes, o código é: " + code + ")"),
		Code:   code,
	}
}

func (s *authService) VerifyRecoveryCode(ctx context.Context, email, code string) models.Result {
	if email == "" || code == "" {
		return models.Failure(msgFillAllFields)
	}

	stored, err := s.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Failure("Código inválido ou expirado")
		}
		s.log.Error(ctx, "recovery: code lookup failed", "error", err)
		return models.Failure("Erro ao verificar código. Tente novamente.")
	}

	if s.now().UnixMilli() > stored.ExpiresAt {
		if err := s.codes.Delete(ctx, email); err != nil {
			s.log.Error(ctx, "recovery: stale code delete failed", "error", err)
		}
		return models.Failure("Código expirado. Solicite um novo código.")
	}

	if stored.Code != code {
		return models.Failure("Código incorreto")
	}

	// consumed once: a verified code cannot be reused
	if err := s.codes.Delete(ctx, email); err != nil {
		s.log.Error(ctx, "recovery: code consume failed", "error", err)
		return models.Failure("Erro ao verificar código. Tente novamente.")
	}
	return models.OK("Código verificado com sucesso!")
}

func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) models.Result {
	if email == "" || newPassword == "" {
		return models.Failure(msgFillAllFields)
	}
	if len(newPassword) < 6 {
		return models.Failure(msgPasswordLength)
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		s.log.Error(ctx, "reset: password hashing failed", "error", err)
		return models.Failure("Erro ao redefinir senha. Tente novamente.")
	}

	if err := s.users.UpdatePasswordHash(ctx, email, hash); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Failure("Usuário não encontrado")
		}
		s.log.Error(ctx, "reset: password update failed", "error", err)
		return models.Failure("Erro ao redefinir senha. Tente novamente.")
	}

	return models.OK("Senha redefinida com sucesso!")
}

func (s *authService) CurrentUser(ctx context.Context) *models.User {
	raw, err := s.meta.Get(ctx, metadata.KeyCurrentUser)
	if err != nil {
		s.log.Warn(ctx, "session read failed", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "session record unreadable", "error", err)
		return nil
	}
	return &u
}

func (s *authService) Logout(ctx context.Context) {
	if err := s.meta.Delete(ctx, metadata.KeyCurrentUser); err != nil {
		s.log.Warn(ctx, "logout failed", "error", err)
	}
}

func (s *authService) storeSession(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.meta.Set(ctx, metadata.KeyCurrentUser, raw)
}
