package filestorage

import "mime/multipart"

// MediaStorage is the media-upload collaborator: it takes an uploaded file
// and returns a stable public URL where the file can be fetched.
type MediaStorage interface {
	// SaveFile stores a file and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath stores a file under a subdirectory and returns its public URL
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file given its URL
	DeleteFile(fileURL string) error
}
