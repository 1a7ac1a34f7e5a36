package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvatarStorage keeps avatar images in GridFS. The directory's avatar
// reference is the hex file id returned here.
type AvatarStorage struct {
	gridFS *gridfs.Bucket
}

func NewAvatarStorage(mongoClient *MongoClient) *AvatarStorage {
	return &AvatarStorage{gridFS: mongoClient.GridFS}
}

type AvatarFile struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (as *AvatarStorage) Upload(ctx context.Context, filename, contentType, uploaderID string, content io.Reader) (*AvatarFile, error) {
	metadata := bson.M{
		"content_type": contentType,
		"uploaded_by":  uploaderID,
		"uploaded_at":  time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := as.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &AvatarFile{
		ID:          stream.FileID.(primitive.ObjectID).Hex(),
		Filename:    filename,
		Size:        size,
		ContentType: contentType,
		UploadedBy:  uploaderID,
		UploadedAt:  time.Now(),
	}, nil
}

func (as *AvatarStorage) Download(ctx context.Context, fileID string) (io.ReadCloser, *AvatarFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := as.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	avatarFile := &AvatarFile{
		ID:          fileID,
		Filename:    fileInfo.Name,
		Size:        fileInfo.Length,
		ContentType: getStringFromMap(metadata, "content_type"),
		UploadedBy:  getStringFromMap(metadata, "uploaded_by"),
		UploadedAt:  fileInfo.UploadDate,
	}
	return stream, avatarFile, nil
}

func (as *AvatarStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return as.gridFS.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
