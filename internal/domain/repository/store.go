package repository

import "context"

// Store bundles the repositories of one backend with its lifecycle.
type Store struct {
	Users    UserRepository
	LabTests LabTestRepository

	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}
