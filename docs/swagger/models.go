//go:build swagger
// +build swagger

package docs

// ErrorResponse represents a standard API error payload
// @Description Error payload returned by all endpoints on failure
type ErrorResponse struct {
	// Always true for error responses
	Error bool `json:"error" example:"true"`

	// Human-readable error message
	// @example "folder not found"
	Message string `json:"message" example:"folder not found"`

	// HTTP status code
	// @example 404
	Code int `json:"code" example:"404"`
}

// FolderResponse represents a folder on the wire
// @Description A folder owned by the authenticated user
type FolderResponse struct {
	// Unique identifier of the folder
	// @example "550e8400-e29b-41d4-a716-446655440000"
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`

	// Parent folder id; null for folders at the root of the user's tree
	ParentID *string `json:"parentId" example:"9b2e7c80-41d4-4716-a716-550e84000000"`

	// Creation time, RFC3339 UTC
	CreatedAt string `json:"createdAt" example:"2026-08-31T12:00:00Z"`

	// Last update time, RFC3339 UTC
	UpdatedAt string `json:"updatedAt" example:"2026-08-31T12:00:00Z"`

	// Display name
	Name string `json:"name" example:"Notes"`

	// Optional free-text description
	Description *string `json:"description" example:"This is a folder description."`

	// Folder type: "system" for the per-user default folder, "user" otherwise
	Type string `json:"type" example:"user" enums:"system,user"`
}
