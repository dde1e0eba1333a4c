package voting

import (
	"context"
	"fmt"

	"github.com/akojamsy/voting-system/store"
	"github.com/akojamsy/voting-system/tally"
	"github.com/akojamsy/voting-system/types"
)

// Registry owns the bill lifecycle. Bills are kept newest first and at most
// one of them is active after any mutation. The store lock must be held.
type Registry struct {
	st     *store.Store
	ledger *Ledger
}

func NewRegistry(st *store.Store, ledger *Ledger) *Registry {
	return &Registry{st: st, ledger: ledger}
}

// Create opens a new bill for voting. The currently active bill, if any, is
// moved to passed without looking at its votes.
func (r *Registry) Create(ctx context.Context, fields types.BillFields) (types.Bill, error) {
	bill := types.Bill{
		ID:          r.st.IDs.NextID(),
		Title:       fields.Title,
		Description: fields.Description,
		Category:    fields.Category,
		Status:      types.BillActive,
		CreatedAt:   r.st.Now(),
	}
	bills := make([]types.Bill, 0, len(r.st.Bills)+1)
	bills = append(bills, bill)
	bills = append(bills, r.st.Bills...)
	supersede(bills, bill.ID)
	if err := r.st.ReplaceBills(ctx, bills); err != nil {
		return types.Bill{}, err
	}
	return bill, nil
}

// CloseVoting finalizes the bill from its current tally.
func (r *Registry) CloseVoting(ctx context.Context, bill types.Bill) (types.Bill, error) {
	t := r.ledger.Tally(bill.ID)
	bill.Status = tally.Outcome(t.Yes, t.No, t.Abstain)
	return r.Update(ctx, bill)
}

// Update replaces the stored bill with the same id. Any status change is
// accepted; activating a bill closes every other active bill as passed.
func (r *Registry) Update(ctx context.Context, bill types.Bill) (types.Bill, error) {
	if !bill.Status.Valid() {
		return types.Bill{}, fmt.Errorf("%w: %q", types.ErrInvalidStatus, bill.Status)
	}
	idx := r.index(bill.ID)
	if idx < 0 {
		return types.Bill{}, types.ErrBillNotFound
	}
	bills := make([]types.Bill, len(r.st.Bills))
	copy(bills, r.st.Bills)
	bills[idx] = bill
	if bill.Status == types.BillActive {
		supersede(bills, bill.ID)
	}
	if err := r.st.ReplaceBills(ctx, bills); err != nil {
		return types.Bill{}, err
	}
	return bill, nil
}

func supersede(bills []types.Bill, keep int64) {
	for i := range bills {
		if bills[i].ID != keep && bills[i].Status == types.BillActive {
			bills[i].Status = types.BillPassed
		}
	}
}

func (r *Registry) index(id int64) int {
	for i, b := range r.st.Bills {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) Get(id int64) (types.Bill, error) {
	idx := r.index(id)
	if idx < 0 {
		return types.Bill{}, types.ErrBillNotFound
	}
	return r.st.Bills[idx], nil
}

// Active returns the most recently created active bill.
func (r *Registry) Active() (types.Bill, bool) {
	for _, b := range r.st.Bills {
		if b.Status == types.BillActive {
			return b, true
		}
	}
	return types.Bill{}, false
}

// List returns one page of bills matching the filter and the number of
// matches before paging.
func (r *Registry) List(filter types.BillFilter) ([]types.Bill, int) {
	var matched []types.Bill
	for _, b := range r.st.Bills {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		matched = append(matched, b)
	}
	start, end := filter.Pagination.Window(len(matched))
	page := make([]types.Bill, end-start)
	copy(page, matched[start:end])
	return page, len(matched)
}

func (r *Registry) Completed() []types.Bill {
	var bills []types.Bill
	for _, b := range r.st.Bills {
		if b.Status != types.BillActive {
			bills = append(bills, b)
		}
	}
	return bills
}
