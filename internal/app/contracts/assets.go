package contracts

import "context"

// AssetFetcher retrieves a remote asset as raw bytes. Implementations are
// expected to be safe for concurrent use.
type AssetFetcher interface {
	FetchBinary(ctx context.Context, url string) ([]byte, error)
}
