package requests

import "mime/multipart"

// Upload is a file taken from a multipart form. The controller owns File and
// closes it once the usecase returns.
type Upload struct {
	File   multipart.File
	Header *multipart.FileHeader
}
