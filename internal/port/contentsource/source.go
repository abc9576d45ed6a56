package contentsource

import (
	"context"

	"github.com/artdevata/content-service/internal/entity"
)

// Source reads normalized records from the admin-managed content API.
type Source interface {
	List(ctx context.Context, contentType string) ([]*entity.Content, error)
	Get(ctx context.Context, contentType string, id string) (*entity.Content, error)
	ListClients(ctx context.Context) ([]*entity.Client, error)
}

type SourceError string

func (e SourceError) Error() string {
	return string(e)
}

// ErrNotFound means the upstream answered and the record does not exist.
// Transport and decode failures are returned as distinct wrapped errors.
const ErrNotFound = SourceError("content record not found")
