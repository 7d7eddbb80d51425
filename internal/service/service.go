package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/oriontour/admin-api/internal/model"
	"github.com/oriontour/admin-api/internal/repository"
)

const (
	defaultOptionsLimit = 50
	maxOptionsLimit     = 200
)

var (
	// ErrNotFound marks a missing id or natural-key target
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a rejected request payload
	ErrValidation = errors.New("validation failed")
)

// Service provides business logic for the admin API
type Service struct {
	repos    *repository.Container
	validate *validator.Validate
}

// NewService creates a new service instance
func NewService(repos *repository.Container) *Service {
	return &Service{
		repos:    repos,
		validate: validator.New(),
	}
}

func (s *Service) validateStruct(req interface{}) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// clampOptions applies the default and maximum typeahead limits
func clampOptions(opts model.OptionsRequest) model.OptionsRequest {
	if opts.Limit <= 0 {
		opts.Limit = defaultOptionsLimit
	}
	if opts.Limit > maxOptionsLimit {
		opts.Limit = maxOptionsLimit
	}
	return opts
}
