package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "paper-backend/pkg/errors"
)

// FolderType distinguishes the per-user default folder from folders created
// through the API.
type FolderType string

const (
	// FolderTypeSystem is the default folder provisioned for every user.
	FolderTypeSystem FolderType = "system"
	// FolderTypeUser is any folder created by an explicit user action.
	FolderTypeUser FolderType = "user"
)

// Valid reports whether t is one of the known folder types.
func (t FolderType) Valid() bool {
	return t == FolderTypeSystem || t == FolderTypeUser
}

// UnmarshalJSON rejects values outside the closed enum.
func (t *FolderType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ft := FolderType(s)
	if !ft.Valid() {
		return fmt.Errorf("unknown folder type: %q", s)
	}
	*t = ft
	return nil
}

// DefaultFolderName is the display name given to the system folder created
// for each new user.
const DefaultFolderName = "Default"

// Folder is a named container owned by exactly one user, optionally nested
// under a parent folder. The owning user and the id are fixed at creation.
//
// ParentID is a loose reference: this layer never checks that the parent
// exists or that the hierarchy is acyclic, and deleting a folder leaves its
// children in place pointing at the removed id.
type Folder struct {
	ID          string
	ParentID    *string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description *string
	Type        FolderType
}

// NewFolder creates a user-defined folder with a freshly generated id.
// Folders created through this path are always FolderTypeUser.
func NewFolder(userID, name string, parentID, description *string) (*Folder, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.NewValidationError("folder name cannot be empty")
	}

	now := time.Now().UTC()
	return &Folder{
		ID:          uuid.New().String(),
		ParentID:    parentID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Description: description,
		Type:        FolderTypeUser,
	}, nil
}

// DefaultSystemFolder builds the single system folder provisioned for a new
// user. It always lives at the root of the user's tree and every call yields
// a distinct id.
func DefaultSystemFolder(userID string) *Folder {
	now := time.Now().UTC()
	description := "System-defined folder."
	return &Folder{
		ID:          uuid.New().String(),
		ParentID:    nil,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        DefaultFolderName,
		Description: &description,
		Type:        FolderTypeSystem,
	}
}

// Touch refreshes the update timestamp. The repository performs a plain
// whole-document replace and never stamps on its own, so callers must Touch
// before persisting a changed folder.
func (f *Folder) Touch() {
	f.UpdatedAt = time.Now().UTC()
}

// IsRoot reports whether the folder sits at the root of its owner's tree.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// Clone returns a deep copy so stored and returned values never alias.
func (f *Folder) Clone() *Folder {
	c := *f
	if f.ParentID != nil {
		p := *f.ParentID
		c.ParentID = &p
	}
	if f.Description != nil {
		d := *f.Description
		c.Description = &d
	}
	return &c
}
