package filestorage

import (
	"mime/multipart"
	"time"
)

// Storage is the opaque blob store applications write their uploads to.
// Save assigns the stored filename; callers record that handle, never
// the original name.
type Storage interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
	Remove(storedName string) error
	ListOlderThan(age time.Duration) ([]string, error)
}
