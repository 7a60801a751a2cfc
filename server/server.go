package server

import "context"

// Server is a transport hosting the app. The core is
// transport-agnostic; HTTP is just the one that ships.
type Server interface {
	Run() error
	Stop(ctx context.Context) error
}
