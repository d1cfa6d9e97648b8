package account

import (
	"context"
	"fmt"

	"horizonx-storefront/internal/domain"
	"horizonx-storefront/pkg"
)

type Service struct {
	api domain.BackendClient
}

func NewService(api domain.BackendClient) domain.AccountService {
	return &Service{api: api}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) error {
	var reply domain.Reply
	if err := s.api.Post(ctx, domain.EndpointRegister, "", req, &reply); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if !reply.Succeeded() {
		return fmt.Errorf("register: %w", domain.ErrNotSucceeded)
	}

	return nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	var reply domain.Reply
	if err := s.api.Post(ctx, domain.EndpointLogin, "", req, &reply); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if reply.Token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res := &domain.LoginResult{Token: reply.Token}
	if exp, ok := pkg.TokenExpiry(reply.Token); ok {
		res.ExpiresAt = exp
	}

	return res, nil
}
