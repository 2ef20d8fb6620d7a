package commands

import (
	"context"
	"log/slog"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/jwt"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"
)

// dummyHash keeps bcrypt timing uniform when the email does not exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, rawEmail, rawPassword string) (*TokenPair, *queries.AuthorizedUserView, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userReads  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, userReads queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		userReads:  userReads,
		jwtService: jwtService,
	}
}

func (uc *authUseCaseImpl) Login(ctx context.Context, rawEmail, rawPassword string) (*TokenPair, *queries.AuthorizedUserView, error) {
	creds, err := user.NewCredentials(rawEmail, rawPassword)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}

	view, hash, err := uc.userReads.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Burn the same bcrypt cost so response timing does not leak
			// whether the account exists.
			_ = password.ComparePassword(dummyHash, creds.Password().Value())
			return nil, nil, errs.Mark(err, errs.ErrAuthenticationFailed)
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, creds.Password().Value()); err != nil {
		return nil, nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}
	if !view.IsActive {
		return nil, nil, errs.Mark(errs.New("account is deactivated"), errs.ErrAuthenticationFailed)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	pair, err := uc.issueTokens(view, role)
	if err != nil {
		return nil, nil, err
	}

	// Best effort; a failed timestamp update must not reject a valid login.
	if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	}); err != nil {
		slog.WarnContext(ctx, "failed to update last login", "user_id", view.ID, "error", err)
	}

	return pair, view, nil
}

func (uc *authUseCaseImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.Mark(errs.New("token is not a refresh token"), errs.ErrAuthenticationFailed)
	}

	view, err := uc.userReads.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuthenticationFailed)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, errs.Mark(errs.New("account is deactivated"), errs.ErrAuthenticationFailed)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.issueTokens(view, role)
}

func (uc *authUseCaseImpl) issueTokens(view *queries.AuthorizedUserView, role user.Role) (*TokenPair, error) {
	access, err := uc.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refresh, err := uc.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
