// Package store holds the four voting collections in memory and moves them
// to and from a db.Client. Callers take the embedded lock around every access.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/db"
	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

type Config struct {
	Client db.Client
	IDs    utils.IDGenerator
	Now    func() time.Time
	Logger *zap.Logger
}

type Store struct {
	sync.RWMutex

	Users   []types.User
	Members []types.Member
	Bills   []types.Bill
	Votes   []types.Vote

	IDs utils.IDGenerator
	Now func() time.Time

	client db.Client
	logger *zap.Logger
}

func New(cfg Config) *Store {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Store{
		IDs:    cfg.IDs,
		Now:    cfg.Now,
		client: cfg.Client,
		logger: cfg.Logger.With(zap.String("component", "store")),
	}
}

// Load reads every collection. Missing collections are seeded and saved;
// one that cannot be decoded stops the load with ErrMalformedCollection.
func (s *Store) Load(ctx context.Context) error {
	return s.load(ctx, false)
}

// LoadOrSeed is Load that replaces undecodable collections with their seed
// values in memory. The damaged document stays on disk until the next write.
func (s *Store) LoadOrSeed(ctx context.Context) error {
	return s.load(ctx, true)
}

func (s *Store) load(ctx context.Context, tolerant bool) error {
	s.Lock()
	defer s.Unlock()
	for _, name := range db.Collections {
		data, err := s.client.Load(ctx, name)
		if errors.Is(err, db.ErrCollectionNotFound) {
			s.logger.Info("Seeding collection", zap.String("collection", name))
			s.seed(name)
			if err := s.save(ctx, name); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		if err := s.decode(name, data); err != nil {
			if !tolerant {
				return err
			}
			s.logger.Warn("Collection is malformed, using seed data", zap.String("collection", name), zap.Error(err))
			s.seed(name)
		}
	}
	s.logger.Info("Collections loaded",
		zap.Int("users", len(s.Users)),
		zap.Int("members", len(s.Members)),
		zap.Int("bills", len(s.Bills)),
		zap.Int("votes", len(s.Votes)))
	return nil
}

func (s *Store) decode(name string, data []byte) error {
	var err error
	switch name {
	case db.CUsers:
		var users []types.User
		if err = json.Unmarshal(data, &users); err == nil {
			s.Users = users
		}
	case db.CMembers:
		var members []types.Member
		if err = json.Unmarshal(data, &members); err == nil {
			s.Members = members
		}
	case db.CBills:
		var bills []types.Bill
		if err = json.Unmarshal(data, &bills); err == nil {
			s.Bills = s.singleActive(bills)
		}
	case db.CVotes:
		var votes []types.Vote
		if err = json.Unmarshal(data, &votes); err == nil {
			s.Votes = votes
		}
	default:
		return fmt.Errorf("unknown collection %q", name)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrMalformedCollection, name, err)
	}
	return nil
}

// singleActive keeps the first active bill open and marks any later active
// bill passed.
func (s *Store) singleActive(bills []types.Bill) []types.Bill {
	var open int64
	found := false
	for i := range bills {
		if bills[i].Status != types.BillActive {
			continue
		}
		if !found {
			open, found = bills[i].ID, true
			continue
		}
		s.logger.Warn("More than one active bill stored, closing extra",
			zap.Int64("keep", open), zap.Int64("bill_id", bills[i].ID))
		bills[i].Status = types.BillPassed
	}
	return bills
}

func (s *Store) seed(name string) {
	now := s.Now()
	switch name {
	case db.CUsers:
		s.Users = []types.User{}
	case db.CMembers:
		s.Members = DefaultMembers()
	case db.CBills:
		s.Bills = DefaultBills(now)
	case db.CVotes:
		s.Votes = []types.Vote{}
	}
}

func (s *Store) collection(name string) (interface{}, error) {
	switch name {
	case db.CUsers:
		return s.Users, nil
	case db.CMembers:
		return s.Members, nil
	case db.CBills:
		return s.Bills, nil
	case db.CVotes:
		return s.Votes, nil
	}
	return nil, fmt.Errorf("unknown collection %q", name)
}

// Save writes one collection. The caller must hold the lock.
func (s *Store) Save(ctx context.Context, name string) error {
	return s.save(ctx, name)
}

func (s *Store) save(ctx context.Context, name string) error {
	value, err := s.collection(name)
	if err != nil {
		return err
	}
	return s.write(ctx, name, value)
}

func (s *Store) write(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.client.Save(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// The Replace methods persist a new version of a collection and only adopt
// it in memory once the write succeeded. The caller must hold the lock.

func (s *Store) ReplaceBills(ctx context.Context, bills []types.Bill) error {
	if err := s.write(ctx, db.CBills, bills); err != nil {
		return err
	}
	s.Bills = bills
	return nil
}

func (s *Store) ReplaceVotes(ctx context.Context, votes []types.Vote) error {
	if err := s.write(ctx, db.CVotes, votes); err != nil {
		return err
	}
	s.Votes = votes
	return nil
}

func (s *Store) ReplaceMembers(ctx context.Context, members []types.Member) error {
	if err := s.write(ctx, db.CMembers, members); err != nil {
		return err
	}
	s.Members = members
	return nil
}

func (s *Store) ReplaceUsers(ctx context.Context, users []types.User) error {
	if err := s.write(ctx, db.CUsers, users); err != nil {
		return err
	}
	s.Users = users
	return nil
}
