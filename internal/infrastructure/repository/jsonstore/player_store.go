package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

// PlayerStore is the canonical player dataset backed by a flat JSON
// array on disk. Reads tolerate individually malformed entries; writes
// back up the previous file before replacing it.
type PlayerStore struct {
	mu     sync.Mutex
	path   string
	logger *logging.Logger
	now    func() time.Time
}

func NewPlayerStore(path string, logger *logging.Logger) *PlayerStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStore{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

func (s *PlayerStore) List(ctx context.Context) ([]player.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *PlayerStore) GetByID(ctx context.Context, id string) (player.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return player.Record{}, false, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, true, nil
		}
	}

	return player.Record{}, false, nil
}

func (s *PlayerStore) ReplaceAll(ctx context.Context, records []player.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]playerDocument, 0, len(records))
	for _, rec := range records {
		docs = append(docs, documentFromDomain(rec))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(docs); err != nil {
		return crerr.Wrap(err, "encode player store")
	}

	backup, err := writeBackup(s.path, s.now())
	if err != nil {
		return err
	}
	if backup != "" {
		s.logger.InfoContext(ctx, "player store backed up", "path", s.path, "backup", backup)
	}

	return writeAtomic(s.path, buf.B)
}

// load decodes the store entry by entry: a malformed record is logged
// and skipped, it must not sink the whole batch.
func (s *PlayerStore) load(ctx context.Context) ([]player.Record, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []player.Record{}, nil
	}
	if err != nil {
		return nil, crerr.Wrap(err, "read player store")
	}

	var entries []json.RawMessage
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, crerr.Wrapf(err, "parse player store %s", s.path)
	}

	out := make([]player.Record, 0, len(entries))
	for i, entry := range entries {
		var doc playerDocument
		if err := sonic.Unmarshal(entry, &doc); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed player record",
				"path", s.path, "index", i, "error", err)
			continue
		}
		out = append(out, doc.toDomain())
	}

	return out, nil
}
