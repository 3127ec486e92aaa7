// Package upload streams incoming files into the file store while enforcing
// a byte ceiling and an extension allow-list. Memory stays bounded by one
// chunk no matter how large the upload is.
package upload

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"florisys/pkg/apperr"
	"florisys/pkg/files"
)

const chunkSize = 1 << 20 // 1 MiB

// StoredFile describes a successfully ingested upload. Bytes is read back
// from the store, not trusted from the client.
type StoredFile struct {
	ID           string
	StoredName   string
	OriginalName string
	Bytes        int64
	ContentType  string
}

// Pipeline is instantiated once per resource kind with its own allow-list
// (raster extensions for plots, point-cloud extension for spatial maps).
type Pipeline struct {
	store    *files.Store
	maxBytes int64
	allowed  map[string]struct{}
}

func NewPipeline(store *files.Store, maxBytes int64, extensions ...string) *Pipeline {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &Pipeline{store: store, maxBytes: maxBytes, allowed: allowed}
}

// Ingest validates the declared filename's extension before reading any
// bytes, then streams src into a scratch file. The moment the running total
// exceeds the ceiling the scratch file is dropped and ErrTooLarge returned,
// so no oversized file is ever persisted. On success the file is renamed to
// a fresh opaque stored name.
func (p *Pipeline) Ingest(src io.Reader, declaredName, declaredType string) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(declaredName))
	if _, ok := p.allowed[ext]; !ok {
		return nil, apperr.ErrUnsupportedType
	}

	tmp, err := p.store.CreateTemp()
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	if _, err := copyCapped(tmp, src, p.maxBytes); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("close temp: %w", err)
	}

	id := newID()
	storedName := id + ext
	if err := p.store.Commit(tmp.Name(), storedName); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("commit upload: %w", err)
	}
	info, err := p.store.Stat(storedName)
	if err != nil {
		p.store.Cleanup(storedName)
		return nil, fmt.Errorf("stat upload: %w", err)
	}

	if declaredType == "" {
		declaredType = "application/octet-stream"
	}
	return &StoredFile{
		ID:           id,
		StoredName:   storedName,
		OriginalName: declaredName,
		Bytes:        info.Size(),
		ContentType:  declaredType,
	}, nil
}

// copyCapped copies src to dst in fixed-size chunks, failing with ErrTooLarge
// as soon as the running total exceeds max.
func copyCapped(dst io.Writer, src io.Reader, max int64) (int64, error) {
	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			total += int64(n)
			if total > max {
				return total, apperr.ErrTooLarge
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, fmt.Errorf("write chunk: %w", werr)
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, fmt.Errorf("read upload: %w", rerr)
		}
	}
}

func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
