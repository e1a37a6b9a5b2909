package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// LocalStorage stores uploaded media on the local filesystem and serves it
// through the router's /uploads static route.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory is
// created if it does not exist.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFileWithPath saves a file to a subdirectory and returns its public URL.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename
	if subPath != "" {
		url = strings.TrimRight(ls.baseURL, "/") + "/" + subPath + "/" + uniqueFilename
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("url", url).Msg("File saved")
	return url, nil
}

// SaveFile saves an uploaded file at the storage root.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// DeleteFile removes a stored file given its public URL. Deleting a file that
// does not exist is treated as success.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	// Recover the path relative to the storage root from the public URL
	relPath := strings.TrimPrefix(fileURL, strings.TrimRight(ls.baseURL, "/")+"/")
	relPath = filepath.Clean(relPath)
	if relPath == "" || relPath == "." || strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("invalid file url: %s", fileURL)
	}

	physicalPath := filepath.Join(ls.basePath, relPath)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
