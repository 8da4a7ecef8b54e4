package subtrack

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Load reads all the subscriptions from the file at path.
//
// A missing file is an empty list of subscriptions. A row that does not hold
// exactly three fields fails the whole load with a *MalformedRowError.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open subscriptions file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f, path)
	if err != nil {
		return nil, fmt.Errorf("load error: %w", err)
	}
	return records, nil
}

// Save rewrites the file at path with exactly one row per record.
//
// The content is written to a temporary file renamed over path, while holding
// an exclusive lock on path+".lock". Readers never observe a partial file.
func Save(path string, records []Record) error {
	var buf bytes.Buffer
	if err := EncodeRecords(&buf, records); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("persist error: cannot lock %q: %w", path, err)
	}
	defer lock.Unlock()

	if err := renameio.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("persist error: cannot write subscriptions file %q: %w", path, err)
	}
	return nil
}

// Store holds the subscriptions of a file in memory.
//
// Every successful mutation rewrites the whole file. A failed mutation leaves
// both the memory and the file unchanged.
type Store struct {
	path    string
	records []Record
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by the store.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the subscriptions file at path into a new Store.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.records = records
	s.logger.Debug("subscriptions loaded", zap.String("path", path), zap.Int("count", len(records)))
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// index returns the position of the first record of owner named name, or -1.
func (s *Store) index(owner, name string) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.is(owner, name) })
}

// Find reports whether owner has a subscription named name.
func (s *Store) Find(owner, name string) bool { return s.index(owner, name) >= 0 }

// List returns a copy of the subscriptions of owner, in file order.
// An empty owner lists everybody's subscriptions.
func (s *Store) List(owner string) []Record {
	list := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if owner == "" || r.Owner == owner {
			list = append(list, r)
		}
	}
	return list
}

// Add appends a new subscription and persists the store.
// It fails with a *DuplicateRecordError if owner already has a subscription with that name.
func (s *Store) Add(owner, name, paymentDay string) error {
	rec := Record{Owner: owner, Name: name, PaymentDay: paymentDay}
	if err := rec.Validate(); err != nil {
		return err
	}
	if s.Find(owner, name) {
		return &DuplicateRecordError{Owner: owner, Name: name}
	}

	previous := s.records
	s.records = append(slices.Clip(s.records), rec)
	if err := s.save(); err != nil {
		s.records = previous
		return err
	}
	s.logger.Info("subscription added", zap.String("owner", owner), zap.String("name", name))
	return nil
}

// Update renames the first subscription of owner named oldName and changes its
// payment day, then persists the store.
//
// It fails with a *NotFoundError, without writing, if there is no such
// subscription, and with a *DuplicateRecordError if newName is taken by another
// subscription of owner.
func (s *Store) Update(owner, oldName, newName, newPaymentDay string) error {
	i := s.index(owner, oldName)
	if i < 0 {
		return &NotFoundError{Owner: owner, Name: oldName}
	}
	updated := Record{Owner: owner, Name: newName, PaymentDay: newPaymentDay}
	if err := updated.Validate(); err != nil {
		return err
	}
	if newName != oldName && s.Find(owner, newName) {
		return &DuplicateRecordError{Owner: owner, Name: newName}
	}

	previous := s.records[i]
	s.records[i] = updated
	if err := s.save(); err != nil {
		s.records[i] = previous
		return err
	}
	s.logger.Info("subscription updated", zap.String("owner", owner), zap.String("name", oldName), zap.String("new_name", newName))
	return nil
}

// Delete removes the first subscription of owner named name, then persists the store.
// It fails with a *NotFoundError, without writing, if there is no such subscription.
func (s *Store) Delete(owner, name string) error {
	i := s.index(owner, name)
	if i < 0 {
		return &NotFoundError{Owner: owner, Name: name}
	}

	previous := s.records
	s.records = slices.Delete(slices.Clone(s.records), i, i+1)
	if err := s.save(); err != nil {
		s.records = previous
		return err
	}
	s.logger.Info("subscription deleted", zap.String("owner", owner), zap.String("name", name))
	return nil
}

// Search returns the subscriptions of owner matching term, see [Search].
// An empty owner searches everybody's subscriptions.
func (s *Store) Search(term, owner string) []Record {
	return Search(s.List(owner), term)
}

func (s *Store) save() error {
	if err := Save(s.path, s.records); err != nil {
		s.logger.Error("cannot save subscriptions", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.logger.Debug("subscriptions saved", zap.String("path", s.path), zap.Int("count", len(s.records)))
	return nil
}
