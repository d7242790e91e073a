package services

import (
	"context"

	"github.com/dmitrijs2005/kcc/internal/models"
)

func (s *chatService) ReadUser(ctx context.Context) (models.User, error) {
	return s.profile.ReadUser(ctx)
}

func (s *chatService) CreateUser(ctx context.Context, name string) (models.User, error) {
	u, err := s.profile.CreateUser(ctx, name)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user created", "user", u.Name.Value())
	return u, nil
}

// RenameUser changes the local name. Topics keep the owner they were created
// with.
func (s *chatService) RenameUser(ctx context.Context, name string) (models.User, error) {
	u, err := s.profile.RenameUser(ctx, name)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user renamed", "user", u.Name.Value())
	return u, nil
}

func (s *chatService) DeleteUser(ctx context.Context) (models.User, error) {
	u, err := s.profile.DeleteUser(ctx)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user deleted", "user", u.Name.Value())
	return u, nil
}

func (s *chatService) ReadHost(ctx context.Context) (models.Host, error) {
	return s.profile.ReadHost(ctx)
}

// RegisterHost stores address once a backend has accepted and connected to it.
func (s *chatService) RegisterHost(ctx context.Context, address string) (models.Host, error) {
	host, err := models.ParseHost(address)
	if err != nil {
		return models.Host{}, err
	}

	if _, err := s.connector.Connect(ctx, host); err != nil {
		return models.Host{}, err
	}

	if err := s.profile.RegisterHost(ctx, host); err != nil {
		return models.Host{}, err
	}
	s.log.Info(ctx, "host registered", "host", host.String())
	return host, nil
}

func (s *chatService) UnregisterHost(ctx context.Context) (models.Host, error) {
	host, err := s.profile.UnregisterHost(ctx)
	if err != nil {
		return models.Host{}, err
	}
	s.log.Info(ctx, "host unregistered", "host", host.String())
	return host, nil
}
