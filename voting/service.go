// Package voting implements the bill lifecycle and the vote ledger on top of
// a store.Store, and exposes them through Service.
package voting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/store"
	"github.com/akojamsy/voting-system/tally"
	"github.com/akojamsy/voting-system/types"
)

type Config struct {
	Store  *store.Store
	Logger *zap.Logger
}

// Service serializes every operation on the store lock.
type Service struct {
	st       *store.Store
	ledger   *Ledger
	registry *Registry
	logger   *zap.Logger
}

type HistoryEntry struct {
	types.Vote
	BillTitle  string           `json:"billTitle"`
	BillStatus types.BillStatus `json:"billStatus"`
}

func NewService(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	ledger := NewLedger(cfg.Store)
	return &Service{
		st:       cfg.Store,
		ledger:   ledger,
		registry: NewRegistry(cfg.Store, ledger),
		logger:   cfg.Logger.With(zap.String("component", "voting")),
	}
}

func (s *Service) CreateBill(ctx context.Context, fields types.BillFields) (types.Bill, error) {
	s.st.Lock()
	defer s.st.Unlock()
	bill, err := s.registry.Create(ctx, fields)
	if err != nil {
		return types.Bill{}, err
	}
	s.logger.Info("Bill created", zap.Int64("billID", bill.ID), zap.String("title", bill.Title))
	return bill, nil
}

// CastVote records the vote without looking at the bill.
func (s *Service) CastVote(ctx context.Context, billID, userID int64, choice types.VoteChoice) (types.Vote, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.ledger.Cast(ctx, billID, userID, choice)
}

// SubmitVote is CastVote for members voting through the API: the bill must be
// open and the member must not have voted on it yet.
func (s *Service) SubmitVote(ctx context.Context, billID, userID int64, choice types.VoteChoice) (types.Vote, error) {
	s.st.Lock()
	defer s.st.Unlock()
	bill, err := s.registry.Get(billID)
	if err != nil {
		return types.Vote{}, err
	}
	if bill.Status != types.BillActive {
		return types.Vote{}, fmt.Errorf("%w: bill %d is %s", types.ErrBillNotActive, billID, bill.Status)
	}
	if _, voted := s.ledger.Find(billID, userID); voted {
		return types.Vote{}, fmt.Errorf("%w: bill %d", types.ErrAlreadyVoted, billID)
	}
	vote, err := s.ledger.Cast(ctx, billID, userID, choice)
	if err != nil {
		return types.Vote{}, err
	}
	s.logger.Debug("Vote cast", zap.Int64("billID", billID), zap.Int64("userID", userID), zap.String("vote", string(choice)))
	return vote, nil
}

func (s *Service) CloseVoting(ctx context.Context, billID int64) (types.Bill, error) {
	s.st.Lock()
	defer s.st.Unlock()
	bill, err := s.registry.Get(billID)
	if err != nil {
		return types.Bill{}, err
	}
	bill, err = s.registry.CloseVoting(ctx, bill)
	if err != nil {
		return types.Bill{}, err
	}
	s.logger.Info("Voting closed", zap.Int64("billID", bill.ID), zap.String("status", string(bill.Status)))
	return bill, nil
}

func (s *Service) UpdateBill(ctx context.Context, bill types.Bill) (types.Bill, error) {
	s.st.Lock()
	defer s.st.Unlock()
	return s.registry.Update(ctx, bill)
}

func (s *Service) CountVotes(billID int64, choice types.VoteChoice) int {
	s.st.RLock()
	defer s.st.RUnlock()
	return s.ledger.CountVotes(billID, choice)
}

func (s *Service) ComputeOutcome(yes, no, abstain int) types.BillStatus {
	return tally.Outcome(yes, no, abstain)
}

func (s *Service) PercentageOf(count, total int) float64 {
	return tally.PercentageOf(count, total)
}

func (s *Service) Bill(billID int64) (types.Bill, error) {
	s.st.RLock()
	defer s.st.RUnlock()
	return s.registry.Get(billID)
}

func (s *Service) ActiveBill() (types.Bill, bool) {
	s.st.RLock()
	defer s.st.RUnlock()
	return s.registry.Active()
}

func (s *Service) ListBills(filter types.BillFilter) ([]types.Bill, int) {
	s.st.RLock()
	defer s.st.RUnlock()
	return s.registry.List(filter)
}

func (s *Service) CompletedBills() []types.Bill {
	s.st.RLock()
	defer s.st.RUnlock()
	return s.registry.Completed()
}

func (s *Service) BillReport(billID int64) (tally.BillReport, error) {
	s.st.RLock()
	defer s.st.RUnlock()
	bill, err := s.registry.Get(billID)
	if err != nil {
		return tally.BillReport{}, err
	}
	return tally.Report(bill, s.ledger.Tally(billID), len(s.st.Members)), nil
}

// VotesForBill attaches a display name to every vote: the account name,
// then the roster name, then "User <id>".
func (s *Service) VotesForBill(billID int64) ([]types.VoteRecord, error) {
	s.st.RLock()
	defer s.st.RUnlock()
	if _, err := s.registry.Get(billID); err != nil {
		return nil, err
	}
	votes := s.ledger.VotesForBill(billID)
	records := make([]types.VoteRecord, 0, len(votes))
	for _, v := range votes {
		records = append(records, types.VoteRecord{Vote: v, VoterName: s.voterName(v.UserID)})
	}
	return records, nil
}

func (s *Service) voterName(userID int64) string {
	for _, u := range s.st.Users {
		if u.ID == userID {
			return u.Name
		}
	}
	for _, m := range s.st.Members {
		if m.ID == userID {
			return m.Name
		}
	}
	return fmt.Sprintf("User %d", userID)
}

func (s *Service) Analytics() tally.Analytics {
	s.st.RLock()
	defer s.st.RUnlock()
	return tally.Summarize(s.st.Bills, s.st.Votes, len(s.st.Members))
}

func (s *Service) VotingHistory(userID int64) []HistoryEntry {
	s.st.RLock()
	defer s.st.RUnlock()
	votes := s.ledger.VotesByUser(userID)
	history := make([]HistoryEntry, 0, len(votes))
	for _, v := range votes {
		entry := HistoryEntry{Vote: v}
		if bill, err := s.registry.Get(v.BillID); err == nil {
			entry.BillTitle = bill.Title
			entry.BillStatus = bill.Status
		}
		history = append(history, entry)
	}
	return history
}
