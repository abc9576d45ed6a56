package likestore

import (
	"context"
	"fmt"
)

// Store is the key-value contract behind like flags and counters.
// Keys follow the site's {contentType}_like_{id} / {contentType}_count_{id}
// convention so backends can be swapped without touching call sites.
type Store interface {
	GetFlag(ctx context.Context, key string) (bool, error)
	SetFlag(ctx context.Context, key string, value bool) error
	GetCount(ctx context.Context, key string) (int64, error)
	SetCount(ctx context.Context, key string, value int64) error
	Delete(ctx context.Context, key string) error
}

type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

const ErrNotFound = StoreError("key not found in like store")

func FlagKey(contentType, id string) string {
	return fmt.Sprintf("%s_like_%s", contentType, id)
}

func CountKey(contentType, id string) string {
	return fmt.Sprintf("%s_count_%s", contentType, id)
}
