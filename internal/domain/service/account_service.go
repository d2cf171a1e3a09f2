package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// IdentityResolver looks up the subject of a session token in the
// collection of a single role.
type IdentityResolver interface {
	// Resolve returns nil, nil when no account of role has uid
	Resolve(ctx context.Context, role entity.Role, uid uuid.UUID) (*security.Identity, error)
}

// AccountService defines the interface for admin and user account operations
type AccountService interface {
	IdentityResolver

	// SignupAdmin creates an administrator and opens a session
	SignupAdmin(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error)

	// SignupUser creates a citizen account and opens a session
	SignupUser(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error)

	// Login authenticates against the collection of role
	Login(ctx context.Context, role entity.Role, req *request.LoginRequest) (*response.SessionResponse, error)

	ListAdmins(ctx context.Context) ([]*response.AccountResponse, error)
	ListUsers(ctx context.Context) ([]*response.AccountResponse, error)
	GetUserByEmail(ctx context.Context, email string) (*response.AccountResponse, error)

	// UpdateUserProfile changes the contact details of pathID, which must be
	// the authenticated user identityID
	UpdateUserProfile(ctx context.Context, identityID, pathID uint, req *request.UpdateProfileRequest) (*response.AccountResponse, error)
}
