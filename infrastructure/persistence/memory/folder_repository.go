package memory

import (
	"context"
	"fmt"
	"sync"

	"paper-backend/application/ports"
	"paper-backend/domain/core/entities"
	pkgerrors "paper-backend/pkg/errors"
)

// FolderRepository provides an in-memory implementation of
// ports.FolderRepository for unit tests, keeping the test suite free of any
// live database. It mirrors the backend adapter's edge-case policy exactly:
// absent reads are (nil, nil), and update/delete of a missing id succeed
// silently.
type FolderRepository struct {
	mu      sync.RWMutex
	folders map[string]*entities.Folder
}

// NewFolderRepository creates a new in-memory folder repository
func NewFolderRepository() *FolderRepository {
	return &FolderRepository{
		folders: make(map[string]*entities.Folder),
	}
}

// CreateFolder inserts a folder, failing if the id is already present
func (r *FolderRepository) CreateFolder(ctx context.Context, folder *entities.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.folders[folder.ID]; exists {
		return pkgerrors.NewPersistenceError("create_folder",
			fmt.Errorf("duplicate folder id: %s", folder.ID))
	}

	r.folders[folder.ID] = folder.Clone()
	return nil
}

// GetFolderByID retrieves a folder by id, (nil, nil) when absent
func (r *FolderRepository) GetFolderByID(ctx context.Context, id string) (*entities.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	folder, exists := r.folders[id]
	if !exists {
		return nil, nil
	}
	return folder.Clone(), nil
}

// GetFoldersByUserID retrieves all folders owned by a user, unordered
func (r *FolderRepository) GetFoldersByUserID(ctx context.Context, userID string) ([]*entities.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	folders := make([]*entities.Folder, 0)
	for _, folder := range r.folders {
		if folder.UserID == userID {
			folders = append(folders, folder.Clone())
		}
	}
	return folders, nil
}

// UpdateFolder replaces the stored folder when present; replacing a missing
// id succeeds without storing anything.
func (r *FolderRepository) UpdateFolder(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.folders[folder.ID]; exists {
		r.folders[folder.ID] = folder.Clone()
	}
	return folder, nil
}

// DeleteFolder removes the folder; deleting a missing id is a no-op
func (r *FolderRepository) DeleteFolder(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.folders, id)
	return nil
}

// EnsureIndexes is a no-op for the in-memory store
func (r *FolderRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

var _ ports.FolderRepository = (*FolderRepository)(nil)
