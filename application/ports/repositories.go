package ports

import (
	"context"

	"paper-backend/domain/core/entities"
)

// FolderRepository defines the persistence contract for folders.
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation, and any backend covering this capability set is a
// valid substitute.
//
// All operations are single atomic backend calls: no retries, no multi-step
// write sequences, no compensation on partial failure. Failures talking to
// the backend surface as persistence errors (pkg/errors); absence on reads
// is a normal outcome, not an error.
type FolderRepository interface {
	// CreateFolder inserts a new folder document keyed by folder.ID.
	// Fails if a document with that id already exists.
	CreateFolder(ctx context.Context, folder *entities.Folder) error

	// GetFolderByID retrieves a folder by its id, returning (nil, nil)
	// when no document matches.
	GetFolderByID(ctx context.Context, id string) (*entities.Folder, error)

	// GetFoldersByUserID retrieves all folders owned by a user, in no
	// particular order. Empty slice when the user owns none.
	GetFoldersByUserID(ctx context.Context, userID string) ([]*entities.Folder, error)

	// UpdateFolder replaces the whole document matching folder.ID with the
	// supplied value and returns that same value. Matching zero documents
	// is still success: nothing is created and callers cannot tell the
	// no-op apart from a real replace through the return value alone.
	UpdateFolder(ctx context.Context, folder *entities.Folder) (*entities.Folder, error)

	// DeleteFolder removes the document matching id. Deleting a missing
	// id is a silent no-op.
	DeleteFolder(ctx context.Context, id string) error

	// EnsureIndexes is an idempotent setup step establishing the compound
	// (user_id, name) index. Called once at process startup, never on the
	// request path.
	EnsureIndexes(ctx context.Context) error
}
