package respcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/logger"
)

type (
	Option func(s *Service)

	// Service keeps the last successful rows of cacheable read commands.
	Service struct {
		db         *badger.DB
		defaultTTL time.Duration
		familyTTL  map[string]time.Duration
		now        func() time.Time
	}

	entry struct {
		ExpiresAt time.Time      `json:"expiresAt"`
		Rows      []entities.Row `json:"rows"`
	}
)

// DefaultFamilyTTL overrides the cache TTL for fast or slow changing resources.
func DefaultFamilyTTL() map[string]time.Duration {
	return map[string]time.Duration{
		constants.PathHotspotActive:      5 * time.Second,
		constants.PathPPPActive:          5 * time.Second,
		"/system/resource":               10 * time.Second,
		constants.PathHotspotUserProfile: 5 * time.Minute,
		constants.PathPPPProfile:         5 * time.Minute,
	}
}

func WithDefaultTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

func WithFamilyTTL(family string, ttl time.Duration) Option {
	return func(s *Service) {
		s.familyTTL[family] = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// OpenInMemory opens a badger instance that lives only in memory.
func OpenInMemory() (db *badger.DB, err error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(logger.NewBadgerLogger("respcache"))

	if db, err = badger.Open(options); err != nil {
		return db, fmt.Errorf("OpenInMemory: %w", err)
	}

	return db, nil
}

func NewService(db *badger.DB, opts ...Option) *Service {
	s := &Service{
		db:         db,
		defaultTTL: constants.DefaultCacheTTL,
		familyTTL:  DefaultFamilyTTL(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// TTL returns the time to live of the command result.
func (s *Service) TTL(cmd entities.Command) time.Duration {
	if ttl, ok := s.familyTTL[cmd.Family()]; ok {
		return ttl
	}

	return s.defaultTTL
}

// Get returns cached rows of the command. Expired entries are removed on read.
func (s *Service) Get(cmd entities.Command) (rows []entities.Row, ok bool) {
	key := []byte(cmd.CacheKey())

	var cached entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", string(key)).Msg("Get: read cache entry error")
		}
		return nil, false
	}

	if !s.now().Before(cached.ExpiresAt) {
		if err = s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		}); err != nil {
			log.Warn().Err(err).Str("key", string(key)).Msg("Get: evict cache entry error")
		}
		return nil, false
	}

	if cached.Rows == nil {
		cached.Rows = make([]entities.Row, 0)
	}

	return cached.Rows, true
}

// Set stores rows of a cacheable command.
func (s *Service) Set(cmd entities.Command, rows []entities.Row) (err error) {
	if !cmd.Cacheable() {
		return nil
	}

	ttl := s.TTL(cmd)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry{
		ExpiresAt: s.now().Add(ttl),
		Rows:      rows,
	})
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		// badger ttl follows the wall clock and only reclaims memory, expiry is checked on read
		return txn.SetEntry(badger.NewEntry([]byte(cmd.CacheKey()), data).WithTTL(ttl + time.Minute))
	}); err != nil {
		return fmt.Errorf("Set: %w", err)
	}

	return nil
}

// InvalidateFamily removes all entries of the resource family, e.g. /ip/hotspot/user.
func (s *Service) InvalidateFamily(family string) (err error) {
	if err = s.deletePrefix([]byte(strings.TrimSuffix(family, "/") + "/")); err != nil {
		return fmt.Errorf("InvalidateFamily: %w", err)
	}

	return nil
}

// Clear removes all entries.
func (s *Service) Clear() (err error) {
	if err = s.deletePrefix(nil); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}

	return nil
}

func (s *Service) deletePrefix(prefix []byte) (err error) {
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		keys := make([][]byte, 0)
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Len returns the number of stored entries, including expired ones not read yet.
func (s *Service) Len() (n int) {
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n
}
