package assets

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// AssetId identifies a loaded asset. Ids are unique for the lifetime of the
// process and never reused. The zero id is never handed out.
type AssetId uint64

var nextAssetId atomic.Uint64

// NextAssetId allocates a new unique AssetId. It is safe for concurrent use.
func NextAssetId() AssetId {
	return AssetId(nextAssetId.Add(1))
}

// Handle is a typed reference to an asset of type T held by a Server.
// Handles are comparable and can be used as map keys. A handle does not keep
// the asset alive.
type Handle[T any] struct {
	id AssetId
}

func handleOf[T any](id AssetId) Handle[T] {
	return Handle[T]{id: id}
}

func (h Handle[T]) Id() AssetId {
	return h.id
}

// IsValid returns false for the zero handle.
func (h Handle[T]) IsValid() bool {
	return h.id != 0
}

func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle[%s](%d)", reflect.TypeFor[T]().Name(), h.id)
}
