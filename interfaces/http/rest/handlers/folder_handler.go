package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"paper-backend/application/services"
	"paper-backend/domain/core/entities"
	"paper-backend/pkg/auth"
	pkgerrors "paper-backend/pkg/errors"
	"paper-backend/pkg/utils"
)

// FolderHandler handles folder-related HTTP requests
type FolderHandler struct {
	service *services.FolderService
	errors  *pkgerrors.ErrorHandler
	logger  *zap.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(service *services.FolderService, logger *zap.Logger) *FolderHandler {
	return &FolderHandler{
		service: service,
		errors:  pkgerrors.NewErrorHandler(logger, false),
		logger:  logger,
	}
}

// CreateFolderRequest represents the request body for creating a folder
type CreateFolderRequest struct {
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateFolderRequest represents the request body for updating a folder.
// Only supplied fields override the stored values.
type UpdateFolderRequest struct {
	ParentID    *string `json:"parentId,omitempty" validate:"omitempty,uuid"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// FolderResponse represents a folder on the wire. Type is the closed enum, so
// clients decoding through this struct reject unknown folder types.
type FolderResponse struct {
	ID          string              `json:"id"`
	ParentID    *string             `json:"parentId"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Type        entities.FolderType `json:"type"`
}

func toFolderResponse(folder *entities.Folder) FolderResponse {
	return FolderResponse{
		ID:          folder.ID,
		ParentID:    folder.ParentID,
		CreatedAt:   utils.FormatRFC3339(folder.CreatedAt),
		UpdatedAt:   utils.FormatRFC3339(folder.UpdatedAt),
		Name:        folder.Name,
		Description: folder.Description,
		Type:        folder.Type,
	}
}

// CreateFolder handles POST /folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	folder, err := h.service.CreateFolder(r.Context(), userCtx.UserID, services.CreateFolderInput{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toFolderResponse(folder))
}

// GetFolder handles GET /folders/{folderID}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := h.folderIDParam(w, r)
	if !ok {
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	folder, err := h.service.GetFolder(r.Context(), userCtx.UserID, folderID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toFolderResponse(folder))
}

// ListFolders handles GET /folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	folders, err := h.service.ListFolders(r.Context(), userCtx.UserID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	response := make([]FolderResponse, 0, len(folders))
	for _, folder := range folders {
		response = append(response, toFolderResponse(folder))
	}

	h.respondJSON(w, http.StatusOK, response)
}

// UpdateFolder handles PUT /folders/{folderID}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := h.folderIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	folder, err := h.service.UpdateFolder(r.Context(), userCtx.UserID, folderID, services.UpdateFolderInput{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toFolderResponse(folder))
}

// DeleteFolder handles DELETE /folders/{folderID}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := h.folderIDParam(w, r)
	if !ok {
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.respondError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteFolder(r.Context(), userCtx.UserID, folderID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// folderIDParam extracts and validates the folder id path parameter
func (h *FolderHandler) folderIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	folderID := chi.URLParam(r, "folderID")
	if folderID == "" {
		h.respondError(w, r, http.StatusBadRequest, "Folder ID is required")
		return "", false
	}

	if _, err := uuid.Parse(folderID); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid folder ID format")
		return "", false
	}

	return folderID, true
}

// handleServiceError translates service errors into HTTP responses. Typed
// errors carry their own status; anything untyped is reported as an opaque
// internal error, keeping persistence details out of client responses.
func (h *FolderHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.errors.Handle(w, r, err)
}

// respondJSON sends a JSON response
func (h *FolderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError sends an error response with a specific status code
func (h *FolderHandler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.errors.HandleStatus(w, r, status, message)
}
