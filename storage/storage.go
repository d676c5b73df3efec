package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes an uploaded image somewhere public and returns the URL to
// record on the entity. Blob writes happen outside the database transaction:
// a store that succeeds before a failed record update can strand a blob,
// which is an accepted inconsistency window.
type Store interface {
	Save(file *multipart.FileHeader, subdir string) (string, error)
	Remove(url string) error
}

// DiskStore keeps uploads on the local filesystem under Root and serves them
// from PublicBase (mounted as a static route by the server).
type DiskStore struct {
	Root       string
	PublicBase string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{Root: root, PublicBase: "/uploads"}, nil
}

func (d *DiskStore) Save(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(d.Root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uniqueName(file.Filename)
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	if subdir == "" {
		return d.PublicBase + "/" + name, nil
	}
	return d.PublicBase + "/" + subdir + "/" + name, nil
}

// Remove deletes a previously saved blob given its public URL. Unknown or
// already-missing paths are ignored.
func (d *DiskStore) Remove(url string) error {
	if !strings.HasPrefix(url, d.PublicBase+"/") {
		return nil
	}
	rel := strings.TrimPrefix(url, d.PublicBase+"/")
	path := filepath.Join(d.Root, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func uniqueName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}
