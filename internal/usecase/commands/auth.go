package commands

import (
	"context"
	"strings"

	"barberline/internal/domain/barber"
	"barberline/internal/infra"
	"barberline/internal/pkg/clock"
	"barberline/internal/pkg/errs"
	"barberline/internal/pkg/jwt"
	"barberline/internal/pkg/password"
	"barberline/internal/usecase/queries"
	"barberline/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid phone or password")
	ErrPhoneAlreadyTaken  = errs.New("phone number already registered")
	ErrInvalidSignup      = errs.New("invalid signup data")
)

type AuthResult struct {
	ID    uuid.UUID
	Name  string
	Role  string
	Token string
}

// CustomerAuthStore and BarberAuthStore are credential lookups by phone.
type CustomerAuthStore interface {
	FindAuthByPhone(ctx context.Context, phone string) (*queries.Credential, error)
}

type BarberAuthStore interface {
	FindAuthByPhone(ctx context.Context, phone string) (*queries.Credential, error)
}

type AuthCommands interface {
	SignupCustomer(ctx context.Context, phone, name, rawPassword string) (*AuthResult, error)
	SigninCustomer(ctx context.Context, phone, rawPassword string) (*AuthResult, error)
	SignupBarber(ctx context.Context, phone, name, rawPassword string, latitude, longitude float64) (*AuthResult, error)
	SigninBarber(ctx context.Context, phone, rawPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow           shared.UnitOfWork
	customerStore CustomerAuthStore
	barberStore   BarberAuthStore
	jwtService    *jwt.Service
	clock         clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	customerStore CustomerAuthStore,
	barberStore BarberAuthStore,
	jwtService *jwt.Service,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:           uow,
		customerStore: customerStore,
		barberStore:   barberStore,
		jwtService:    jwtService,
		clock:         clock,
	}
}

func (a *authCommandsImpl) SignupCustomer(ctx context.Context, phone, name, rawPassword string) (*AuthResult, error) {
	phone, name, err := normalizeSignup(phone, name)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	id := uuid.New()
	createdAt := a.clock.Now()

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Create(ctx, id, phone, name, hash, createdAt)
	})
	if err != nil {
		return nil, mapSignupErr(err)
	}

	return a.issue(id, name, jwt.RoleCustomer)
}

func (a *authCommandsImpl) SigninCustomer(ctx context.Context, phone, rawPassword string) (*AuthResult, error) {
	cred, err := a.customerStore.FindAuthByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, mapSigninErr(err)
	}

	if err := password.Compare(cred.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(cred.ID, cred.Name, jwt.RoleCustomer)
}

func (a *authCommandsImpl) SignupBarber(ctx context.Context, phone, name, rawPassword string, latitude, longitude float64) (*AuthResult, error) {
	phone, name, err := normalizeSignup(phone, name)
	if err != nil {
		return nil, err
	}

	location, err := barber.NewLocation(latitude, longitude)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	entity, err := barber.NewBarber(uuid.Nil, name, phone, location, nil, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	hash, err := password.Hash(rawPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Barbers().Create(ctx,
			entity.ID(), entity.Phone(), entity.Name(), hash,
			entity.Location().Latitude(), entity.Location().Longitude(),
			entity.CreatedAt(),
		)
	})
	if err != nil {
		return nil, mapSignupErr(err)
	}

	return a.issue(entity.ID(), entity.Name(), jwt.RoleBarber)
}

func (a *authCommandsImpl) SigninBarber(ctx context.Context, phone, rawPassword string) (*AuthResult, error) {
	cred, err := a.barberStore.FindAuthByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, mapSigninErr(err)
	}

	if err := password.Compare(cred.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(cred.ID, cred.Name, jwt.RoleBarber)
}

func (a *authCommandsImpl) issue(id uuid.UUID, name, role string) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{ID: id, Name: name, Role: role, Token: token}, nil
}

func normalizeSignup(phone, name string) (string, string, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if phone == "" || name == "" {
		return "", "", ErrInvalidSignup
	}
	return phone, name, nil
}

func mapSignupErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrPhoneAlreadyTaken)
	}
	return errs.Mark(err, ErrStoreUnavailable)
}

func mapSigninErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		// Same answer as a bad password; do not leak which phones exist.
		return ErrInvalidCredentials
	}
	return errs.Mark(err, ErrStoreUnavailable)
}
