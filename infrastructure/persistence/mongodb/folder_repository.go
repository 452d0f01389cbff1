package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"paper-backend/application/ports"
	"paper-backend/domain/core/entities"
	pkgerrors "paper-backend/pkg/errors"
)

// FolderCollectionName is the collection holding one document per folder.
const FolderCollectionName = "folders"

// FolderRepository implements ports.FolderRepository on top of MongoDB.
// It is a stateless facade over the shared, connection-pooled client built
// once at startup, so it is safe for unlimited concurrent callers. The
// backend's per-document atomicity is the only coordination used: no
// transactions, no optimistic-concurrency guard, last write wins.
type FolderRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewFolderRepository creates a new FolderRepository
func NewFolderRepository(db *mongo.Database, logger *zap.Logger) *FolderRepository {
	return &FolderRepository{
		collection: db.Collection(FolderCollectionName),
		logger:     logger,
	}
}

// folderDocument represents the MongoDB document structure for a folder
type folderDocument struct {
	ID          string    `bson:"_id"`
	ParentID    *string   `bson:"parent_id,omitempty"`
	UserID      string    `bson:"user_id"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
	Name        string    `bson:"name"`
	Description *string   `bson:"description,omitempty"`
	Type        string    `bson:"type"`
}

func toDocument(folder *entities.Folder) folderDocument {
	return folderDocument{
		ID:          folder.ID,
		ParentID:    folder.ParentID,
		UserID:      folder.UserID,
		CreatedAt:   folder.CreatedAt.UTC(),
		UpdatedAt:   folder.UpdatedAt.UTC(),
		Name:        folder.Name,
		Description: folder.Description,
		Type:        string(folder.Type),
	}
}

func (d folderDocument) toEntity() *entities.Folder {
	return &entities.Folder{
		ID:          d.ID,
		ParentID:    d.ParentID,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Name:        d.Name,
		Description: d.Description,
		Type:        entities.FolderType(d.Type),
	}
}

// CreateFolder inserts a new folder document keyed by its id
func (r *FolderRepository) CreateFolder(ctx context.Context, folder *entities.Folder) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(folder)); err != nil {
		r.logger.Error("Failed to insert folder",
			zap.String("folderID", folder.ID),
			zap.String("userID", folder.UserID),
			zap.Error(err),
		)
		return pkgerrors.NewPersistenceError("create_folder", err)
	}

	r.logger.Debug("Folder created",
		zap.String("folderID", folder.ID),
		zap.String("userID", folder.UserID),
	)
	return nil
}

// GetFolderByID retrieves a folder by id, returning (nil, nil) when absent
func (r *FolderRepository) GetFolderByID(ctx context.Context, id string) (*entities.Folder, error) {
	var doc folderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to find folder",
			zap.String("folderID", id),
			zap.Error(err),
		)
		return nil, pkgerrors.NewPersistenceError("get_folder_by_id", err)
	}

	return doc.toEntity(), nil
}

// GetFoldersByUserID retrieves all folders owned by a user. The query
// establishes no ordering.
func (r *FolderRepository) GetFoldersByUserID(ctx context.Context, userID string) ([]*entities.Folder, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		r.logger.Error("Failed to query folders",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewPersistenceError("get_folders_by_user_id", err)
	}
	defer cursor.Close(ctx)

	var docs []folderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode folders",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewPersistenceError("get_folders_by_user_id", err)
	}

	folders := make([]*entities.Folder, 0, len(docs))
	for _, doc := range docs {
		folders = append(folders, doc.toEntity())
	}
	return folders, nil
}

// UpdateFolder replaces the whole document matching folder.ID. Matching zero
// documents is reported as success with nothing created; the caller cannot
// distinguish that no-op from a real replace.
func (r *FolderRepository) UpdateFolder(ctx context.Context, folder *entities.Folder) (*entities.Folder, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": folder.ID}, toDocument(folder))
	if err != nil {
		r.logger.Error("Failed to replace folder",
			zap.String("folderID", folder.ID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewPersistenceError("update_folder", err)
	}

	r.logger.Debug("Folder replaced",
		zap.String("folderID", folder.ID),
		zap.Int64("matched", result.MatchedCount),
	)
	return folder, nil
}

// DeleteFolder removes the document matching id. Delete-zero is not an
// error, and children referencing the id are left untouched.
func (r *FolderRepository) DeleteFolder(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete folder",
			zap.String("folderID", id),
			zap.Error(err),
		)
		return pkgerrors.NewPersistenceError("delete_folder", err)
	}

	r.logger.Debug("Folder deleted",
		zap.String("folderID", id),
		zap.Int64("deleted", result.DeletedCount),
	)
	return nil
}

// EnsureIndexes creates the compound (user_id, name) index supporting
// owner-scoped lookups. Index creation is idempotent on the server side, so
// this is safe to run on every startup. The index is deliberately
// non-unique: folder names are not constrained per user.
func (r *FolderRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "name", Value: 1},
		},
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		r.logger.Error("Failed to create folder index", zap.Error(err))
		return pkgerrors.NewPersistenceError("create_index", err)
	}

	r.logger.Info("Folder indexes ensured",
		zap.String("collection", FolderCollectionName),
	)
	return nil
}

var _ ports.FolderRepository = (*FolderRepository)(nil)
