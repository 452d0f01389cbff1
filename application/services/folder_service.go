package services

import (
	"context"

	"go.uber.org/zap"

	"paper-backend/application/ports"
	"paper-backend/domain/core/entities"
	pkgerrors "paper-backend/pkg/errors"
)

// CreateFolderInput carries the caller-supplied fields for a new folder.
type CreateFolderInput struct {
	ParentID    *string
	Name        string
	Description *string
}

// UpdateFolderInput carries the optional fields of an update. A nil field
// means "leave unchanged"; only supplied fields override the stored value.
type UpdateFolderInput struct {
	ParentID    *string
	Name        *string
	Description *string
}

// FolderService orchestrates folder use cases on top of the repository
// port. The repository only knows whole-document replace, so the partial
// update offered at the API boundary is resolved here: load the current
// document, overlay the supplied fields, stamp the update time, then hand
// the full value to the repository.
type FolderService struct {
	folders ports.FolderRepository
	logger  *zap.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(folders ports.FolderRepository, logger *zap.Logger) *FolderService {
	return &FolderService{
		folders: folders,
		logger:  logger,
	}
}

// CreateFolder creates a user-defined folder for the authenticated user.
// The parent id, when supplied, is stored as-is: this layer does not check
// that it references an existing folder.
func (s *FolderService) CreateFolder(ctx context.Context, userID string, input CreateFolderInput) (*entities.Folder, error) {
	folder, err := entities.NewFolder(userID, input.Name, input.ParentID, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.folders.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("Folder created",
		zap.String("folderID", folder.ID),
		zap.String("userID", userID),
	)
	return folder, nil
}

// CreateDefaultFolder provisions the per-user system folder. It is invoked
// from user provisioning, never from the user-facing creation path.
func (s *FolderService) CreateDefaultFolder(ctx context.Context, userID string) (*entities.Folder, error) {
	folder := entities.DefaultSystemFolder(userID)

	if err := s.folders.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("Default folder created",
		zap.String("folderID", folder.ID),
		zap.String("userID", userID),
	)
	return folder, nil
}

// GetFolder retrieves a folder owned by the given user. Folders owned by
// other users are reported as not found rather than forbidden, so their
// existence is never leaked.
func (s *FolderService) GetFolder(ctx context.Context, userID, id string) (*entities.Folder, error) {
	folder, err := s.folders.GetFolderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if folder == nil || folder.UserID != userID {
		return nil, pkgerrors.NewNotFoundError("folder")
	}
	return folder, nil
}

// ListFolders returns all folders owned by the user, in no particular order.
func (s *FolderService) ListFolders(ctx context.Context, userID string) ([]*entities.Folder, error) {
	return s.folders.GetFoldersByUserID(ctx, userID)
}

// UpdateFolder applies the supplied fields onto the stored folder and
// replaces the whole document. A missing or foreign id is a not-found error
// here even though the repository itself would report the replace of a
// missing document as success.
func (s *FolderService) UpdateFolder(ctx context.Context, userID, id string, input UpdateFolderInput) (*entities.Folder, error) {
	folder, err := s.GetFolder(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		folder.ParentID = input.ParentID
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, pkgerrors.NewValidationError("folder name cannot be empty")
		}
		folder.Name = *input.Name
	}
	if input.Description != nil {
		folder.Description = input.Description
	}
	folder.Touch()

	updated, err := s.folders.UpdateFolder(ctx, folder)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Folder updated",
		zap.String("folderID", id),
		zap.String("userID", userID),
	)
	return updated, nil
}

// DeleteFolder removes a folder owned by the user. Deleting an id that no
// longer exists succeeds, keeping the operation retry-safe. Children of the
// deleted folder are not cascaded or reparented; they keep referencing the
// removed id.
func (s *FolderService) DeleteFolder(ctx context.Context, userID, id string) error {
	folder, err := s.folders.GetFolderByID(ctx, id)
	if err != nil {
		return err
	}
	if folder == nil {
		// Already gone; delete stays idempotent.
		return nil
	}
	if folder.UserID != userID {
		return pkgerrors.NewNotFoundError("folder")
	}

	if err := s.folders.DeleteFolder(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Folder deleted",
		zap.String("folderID", id),
		zap.String("userID", userID),
	)
	return nil
}
