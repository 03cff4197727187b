package usecase

import "context"

// consultorUltimoID is the slice of a repository the allocator needs.
type consultorUltimoID interface {
	UltimoID(ctx context.Context) (int, error)
}

// asignarID derives the next integer id for a collection: 1 when the
// collection is empty, otherwise max existing id + 1. The maximum comes from
// a descending query, never from a document count, so deletions can not
// shrink the sequence back onto a live id.
func asignarID(ctx context.Context, repo consultorUltimoID) (int, error) {
	ultimo, err := repo.UltimoID(ctx)
	if err != nil {
		return 0, err
	}
	return ultimo + 1, nil
}
