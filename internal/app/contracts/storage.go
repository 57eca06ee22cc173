package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type Storage interface {
	// UploadFile stores the file inside folder and returns the public path
	// recorded on the owning document.
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, folder string) (string, error)
}
