package jsonstore

import (
	"context"
	"os"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/roster"
	"github.com/aflsquad/statpatch/internal/platform/logging"
)

type benchDocument struct {
	Defenders   []playerDocument `json:"defenders"`
	Midfielders []playerDocument `json:"midfielders"`
	Rucks       []playerDocument `json:"rucks"`
	Forwards    []playerDocument `json:"forwards"`
	Utility     []playerDocument `json:"utility"`
}

type rosterDocument struct {
	Defenders   []playerDocument `json:"defenders"`
	Midfielders []playerDocument `json:"midfielders"`
	Rucks       []playerDocument `json:"rucks"`
	Forwards    []playerDocument `json:"forwards"`
	Bench       benchDocument    `json:"bench"`
	CaptainID   string           `json:"captain,omitempty"`
}

// RosterStore persists the team roster document with the same
// backup-before-write contract as the player store.
type RosterStore struct {
	mu     sync.Mutex
	path   string
	logger *logging.Logger
	now    func() time.Time
}

func NewRosterStore(path string, logger *logging.Logger) *RosterStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterStore{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

func (s *RosterStore) Get(_ context.Context) (roster.Roster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return roster.Roster{}, nil
	}
	if err != nil {
		return roster.Roster{}, crerr.Wrap(err, "read roster store")
	}

	var doc rosterDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return roster.Roster{}, crerr.Wrapf(err, "parse roster store %s", s.path)
	}

	r := roster.Roster{
		Defenders:   recordsFromDocuments(doc.Defenders),
		Midfielders: recordsFromDocuments(doc.Midfielders),
		Rucks:       recordsFromDocuments(doc.Rucks),
		Forwards:    recordsFromDocuments(doc.Forwards),
		Bench: roster.Bench{
			Defenders:   recordsFromDocuments(doc.Bench.Defenders),
			Midfielders: recordsFromDocuments(doc.Bench.Midfielders),
			Rucks:       recordsFromDocuments(doc.Bench.Rucks),
			Forwards:    recordsFromDocuments(doc.Bench.Forwards),
			Utility:     recordsFromDocuments(doc.Bench.Utility),
		},
		CaptainID: doc.CaptainID,
	}
	r.NormalizePlacement()

	return r, nil
}

func (s *RosterStore) Save(ctx context.Context, r roster.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.NormalizePlacement()
	doc := rosterDocument{
		Defenders:   documentsFromRecords(r.Defenders),
		Midfielders: documentsFromRecords(r.Midfielders),
		Rucks:       documentsFromRecords(r.Rucks),
		Forwards:    documentsFromRecords(r.Forwards),
		Bench: benchDocument{
			Defenders:   documentsFromRecords(r.Bench.Defenders),
			Midfielders: documentsFromRecords(r.Bench.Midfielders),
			Rucks:       documentsFromRecords(r.Bench.Rucks),
			Forwards:    documentsFromRecords(r.Bench.Forwards),
			Utility:     documentsFromRecords(r.Bench.Utility),
		},
		CaptainID: r.CaptainID,
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(doc); err != nil {
		return crerr.Wrap(err, "encode roster store")
	}

	backup, err := writeBackup(s.path, s.now())
	if err != nil {
		return err
	}
	if backup != "" {
		s.logger.InfoContext(ctx, "roster store backed up", "path", s.path, "backup", backup)
	}

	return writeAtomic(s.path, buf.B)
}

func recordsFromDocuments(docs []playerDocument) []player.Record {
	out := make([]player.Record, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out
}

func documentsFromRecords(records []player.Record) []playerDocument {
	out := make([]playerDocument, 0, len(records))
	for _, rec := range records {
		out = append(out, documentFromDomain(rec))
	}
	return out
}
