// Package session stores per-client login state keyed by a cookie-carried
// identifier. Records expire after a TTL that slides on every read.
package session

import "context"

// Data is the state attached to an authenticated client.
type Data struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	Email      string `json:"email"`
	CartID     int    `json:"cartId"`
}

// Store is an opaque key-value service holding session records.
type Store interface {
	// Get loads a session and refreshes its TTL. The second return is
	// false when the session does not exist or has expired.
	Get(ctx context.Context, id string) (Data, bool, error)
	Save(ctx context.Context, id string, data Data) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close()
}
