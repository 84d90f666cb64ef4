package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"litlint/internal/checker"
	"litlint/internal/diag"
	"litlint/internal/source"
)

// Bump when the DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest keys a cache entry: content hash mixed with the configuration.
type Digest [32]byte

// DiskCache stores per-file diagnostic results on disk, keyed by Digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiag is one serialized diagnostic. Spans are stored as byte offsets;
// they stay valid because the key covers the exact file content.
type CachedDiag struct {
	Code     uint16 `msgpack:"code"`
	Severity uint8  `msgpack:"sev"`
	Start    uint32 `msgpack:"start"`
	End      uint32 `msgpack:"end"`
	Message  string `msgpack:"msg"`
}

// DiskPayload is the cached result for one (content, config) pair.
type DiskPayload struct {
	Schema uint16       `msgpack:"schema"`
	Diags  []CachedDiag `msgpack:"diags"`
}

// NewDiskPayload snapshots a bag for caching.
func NewDiskPayload(bag *diag.Bag) *DiskPayload {
	payload := &DiskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		payload.Diags = append(payload.Diags, CachedDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return payload
}

// Restore rebuilds a bag from the payload for the given file.
func (p *DiskPayload) Restore(fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range p.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary: source.Span{
				File:  fileID,
				Start: d.Start,
				End:   d.End,
			},
		})
	}
	return bag
}

// CacheKey derives the cache digest from the file content hash and every
// configuration field that influences diagnostics.
func CacheKey(contentHash [32]byte, cfg checker.Config) Digest {
	h := sha256.New()
	h.Write(contentHash[:])

	var schema [2]byte
	binary.LittleEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	h.Write(schema[:])

	flags := []byte{
		byte(cfg.InlineQuote),
		byte(cfg.MultilineQuote),
		byte(cfg.DocstringQuote),
		boolByte(cfg.AvoidEscape),
		boolByte(cfg.IncludeName),
	}
	h.Write(flags)

	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache in an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "results", hexKey+".mp")
}

// Get loads a payload, reporting ok=false on miss, schema mismatch, or any
// decode problem. A bad entry is treated as a miss, never as an error.
func (c *DiskCache) Get(key Digest) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}

	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Put serializes and writes a payload, using a temp file plus rename so
// concurrent readers never observe a partial entry.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}
