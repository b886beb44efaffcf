package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"owl/internal/diag"
	"owl/internal/source"
)

// Digest is a SHA-256 content hash used as the cache key.
type Digest [sha256.Size]byte

// HashContent returns the cache key for a file's raw content.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// cacheSchemaVersion invalidates every stored payload when the format
// changes — increment on any edit to cachedDiagnostic/CachePayload.
const cacheSchemaVersion uint16 = 1

// cachedDiagnostic is the msgpack shape of one stored diagnostic. Спаны
// хранятся как смещения: при совпадении хеша содержимое байт в байт то
// же, так что смещения остаются корректными.
type cachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	HasSpan  bool
	Message  string
	Hints    []string
	Notes    []string
}

// CachePayload stores the full check outcome of one file.
type CachePayload struct {
	Schema      uint16
	Diagnostics []cachedDiagnostic
}

// CheckCache is a content-addressed store of per-file check results under
// the user cache directory. Thread-safe for concurrent access.
type CheckCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCheckCache initializes the cache at $XDG_CACHE_HOME/<app> (or
// ~/.cache/<app> when unset).
func OpenCheckCache(app string) (*CheckCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &CheckCache{dir: dir}, nil
}

// OpenCheckCacheAt initializes the cache rooted at an explicit directory.
func OpenCheckCacheAt(dir string) (*CheckCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &CheckCache{dir: dir}, nil
}

func (c *CheckCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум hex-символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "checks", hexKey[:2], hexKey+".mp")
}

// Store serializes the bag of one checked file. Урезанные сумки не
// кешируются: повтор прогона должен выдать полный список заново.
func (c *CheckCache) Store(key Digest, fileID source.FileID, bag *diag.Bag) error {
	if c == nil || bag.Dropped() > 0 {
		return nil
	}

	payload := CachePayload{Schema: cacheSchemaVersion}
	for _, d := range bag.Items() {
		cd := cachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Hints:    d.Hints,
			Notes:    d.Notes,
		}
		if d.HasSpan() {
			if d.Primary.File != fileID {
				// диагностика из другого файла в кеш одного файла не попадает
				return nil
			}
			cd.HasSpan = true
			cd.Start = d.Primary.Start
			cd.End = d.Primary.End
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create cache bucket: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return fmt.Errorf("create cache temp: %w", err)
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode cache payload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close cache temp: %w", err)
	}
	// атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("publish cache entry: %w", err)
	}
	return nil
}

// Load replays a stored result into a fresh bag bound to fileID. Returns
// false on miss, schema mismatch or a corrupt entry — все три случая для
// вызывающего неотличимы от промаха.
func (c *CheckCache) Load(key Digest, fileID source.FileID, maxDiagnostics int) (*diag.Bag, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			// повреждённый кеш не должен ломать проверку
			return nil, false
		}
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var payload CachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Code:     diag.Code(cd.Code),
			Severity: diag.Severity(cd.Severity),
			Message:  cd.Message,
			Hints:    cd.Hints,
			Notes:    cd.Notes,
		}
		if cd.HasSpan {
			d.Primary = source.Span{File: fileID, Start: cd.Start, End: cd.End}
		}
		bag.Add(d)
	}
	bag.Sort()
	return bag, true
}

// Drop removes every stored entry.
func (c *CheckCache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "checks"))
}
