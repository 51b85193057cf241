package api

import (
	"context"

	"github.com/iudanet/resumeai/pkg/api"
)

// ClientAPI описывает REST API, по одному методу на endpoint
type ClientAPI interface {
	AuthAPI
	InterviewAPI
	ResumeAPI
	UserAPI
}

// AuthAPI /auth/*
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) (*api.RefreshTokenResponse, error)
}

// InterviewAPI /interview/sessions/*
type InterviewAPI interface {
	ListSessions(ctx context.Context, params api.SessionListParams) (*api.Page[api.InterviewSession], error)
	CreateSession(ctx context.Context, req api.CreateSessionRequest) (*api.InterviewSession, error)
	GetSession(ctx context.Context, sessionID string) (*api.InterviewSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetMessages(ctx context.Context, sessionID string) (*api.SessionMessagesResponse, error)
	SendMessage(ctx context.Context, sessionID string, req api.SendMessageRequest) (*api.SendMessageResponse, error)
	CompleteInterview(ctx context.Context, sessionID string) (*api.CompleteInterviewResponse, error)
	GetSessionResume(ctx context.Context, sessionID string) (*api.Resume, error)
}

// ResumeAPI /resumes/*
type ResumeAPI interface {
	ListResumes(ctx context.Context, params api.ListParams) (*api.Page[api.Resume], error)
	GetResume(ctx context.Context, resumeID string) (*api.Resume, error)
	DownloadResume(ctx context.Context, resumeID string, format api.ResumeFormat) (*RawResponse, error)
	RegenerateResume(ctx context.Context, resumeID string, req api.RegenerateResumeRequest) (*api.Resume, error)
}

// UserAPI /user/*
type UserAPI interface {
	GetProfile(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error)
	ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error
}

var _ ClientAPI = (*Client)(nil)
