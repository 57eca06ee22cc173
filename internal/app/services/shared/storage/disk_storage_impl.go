package storage

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

type diskStorage struct {
	Root string
}

// NewDiskStorage writes uploads below root, which the router also serves
// under /uploads.
func NewDiskStorage(root string) contracts.Storage {
	return &diskStorage{Root: root}
}

func (d *diskStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	directory := filepath.Join(d.Root, folder)
	err := os.MkdirAll(directory, 0o755)
	if err != nil {
		return "", exceptions.ErrStorageCreateFolder(err, folder)
	}

	fileName := utils.GenerateUploadFileName(fileHeader.Filename)
	destination, err := os.Create(filepath.Join(directory, fileName))
	if err != nil {
		return "", exceptions.ErrStorageWriteFile(err, folder)
	}
	defer destination.Close()

	_, err = io.Copy(destination, file)
	if err != nil {
		os.Remove(destination.Name())
		return "", exceptions.ErrStorageWriteFile(err, folder)
	}

	return path.Join(constvars.UploadURLPrefix, folder, fileName), nil
}
