package service

import "context"

// ClientInfoService reports facts about the remote server.
type ClientInfoService interface {
	// ServerVersion returns the version the server reports on /api/version/.
	ServerVersion(ctx context.Context) (string, error)
}
