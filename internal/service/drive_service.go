package service

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// attachmentFolderID is the fixed destination folder for every upload.
// It is deliberately a constant, not configuration.
const attachmentFolderID = "1qPZbXhKQm4vR8sTd0aUwHcEyGnJf52oL"

type BlobStoreInterface interface {
	Upload(ctx context.Context, name, mimeType string, content io.Reader) (string, error)
}

// DriveService uploads files into the fixed Drive folder and hands back a
// publicly viewable link.
type DriveService struct {
	files       *drive.FilesService
	permissions *drive.PermissionsService
}

func NewDriveService(ctx context.Context, credentialsFile string) (*DriveService, error) {
	srv, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(drive.DriveScope))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive client: %w", err)
	}
	return &DriveService{
		files:       srv.Files,
		permissions: srv.Permissions,
	}, nil
}

func (s *DriveService) Upload(ctx context.Context, name, mimeType string, content io.Reader) (string, error) {
	meta := &drive.File{
		Name:    name,
		Parents: []string{attachmentFolderID},
	}
	created, err := s.files.Create(meta).
		Media(content, googleapi.ContentType(mimeType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload of %q failed: %w", name, err)
	}

	// Anyone with the link can view; the link is stored on the record.
	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.permissions.Create(created.Id, perm).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("drive permission on %q failed: %w", name, err)
	}

	return created.WebViewLink, nil
}
