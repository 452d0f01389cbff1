package handlers

// This file contains OpenAPI/Swagger documentation for FolderHandler endpoints

// CreateFolder creates a new folder for the authenticated user
// @Summary Create a new folder
// @Description Creates a user-defined folder, optionally nested under an existing parent folder
// @Tags folders
// @Accept json
// @Produce json
// @Param request body handlers.CreateFolderRequest true "Folder creation request"
// @Success 201 {object} handlers.FolderResponse "Folder created successfully"
// @Failure 400 {object} docs.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /folders [post]

// GetFolder retrieves a folder by ID
// @Summary Get folder by ID
// @Description Retrieves a single folder owned by the authenticated user
// @Tags folders
// @Accept json
// @Produce json
// @Param folderID path string true "Folder ID" example:"550e8400-e29b-41d4-a716-446655440000"
// @Success 200 {object} handlers.FolderResponse "Folder details"
// @Failure 404 {object} docs.ErrorResponse "Folder not found"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /folders/{folderID} [get]

// ListFolders lists all folders of the authenticated user
// @Summary List folders
// @Description Returns every folder owned by the authenticated user, in no particular order
// @Tags folders
// @Accept json
// @Produce json
// @Success 200 {array} handlers.FolderResponse "Folders"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /folders [get]

// UpdateFolder updates an existing folder
// @Summary Update a folder
// @Description Applies the supplied fields onto the stored folder; omitted fields are left unchanged
// @Tags folders
// @Accept json
// @Produce json
// @Param folderID path string true "Folder ID"
// @Param request body handlers.UpdateFolderRequest true "Update request"
// @Success 200 {object} handlers.FolderResponse "Updated folder"
// @Failure 400 {object} docs.ErrorResponse "Invalid request"
// @Failure 404 {object} docs.ErrorResponse "Folder not found"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /folders/{folderID} [put]

// DeleteFolder deletes a folder
// @Summary Delete a folder
// @Description Deletes a folder by id. Child folders are not removed or reparented. Deleting an id that no longer exists still succeeds.
// @Tags folders
// @Accept json
// @Produce json
// @Param folderID path string true "Folder ID"
// @Success 204 "Folder deleted successfully"
// @Failure 404 {object} docs.ErrorResponse "Folder not found"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /folders/{folderID} [delete]
