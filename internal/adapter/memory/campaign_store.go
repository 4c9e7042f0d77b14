package memory

import (
	"context"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignStore implements port.CampaignStore in process memory. Each
// campaign carries its own operation lock; the registry lock only guards
// growth of the campaign list.
//
// Save publishes the working record to readers before the operation ends,
// so a recipient reading the campaign during a transfer sees the committed
// bookkeeping. If the operation then fails, for example because the
// transfer is rejected, the published state is rolled back and readers may
// briefly have observed it. Operations on the same campaign never see it:
// they wait on the operation lock until the rollback is done.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns []*entry
}

// entry serializes operations with op. mu guards the fields themselves so
// that readers, including a recipient reading back during a transfer, see
// committed bookkeeping without waiting for the operation to finish.
type entry struct {
	op sync.Mutex

	mu            sync.RWMutex
	campaign      domain.Campaign
	contributions map[domain.Address]domain.Amount
}

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{}
}

func (s *CampaignStore) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uint64(len(s.campaigns))
	s.campaigns = append(s.campaigns, &entry{
		campaign:      *c,
		contributions: make(map[domain.Address]domain.Amount),
	})
	return nil
}

func (s *CampaignStore) GetCampaign(_ context.Context, id uint64) (domain.Campaign, error) {
	e, err := s.entry(id)
	if err != nil {
		return domain.Campaign{}, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.campaign, nil
}

func (s *CampaignStore) CampaignCount(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.campaigns)), nil
}

func (s *CampaignStore) ContributionOf(_ context.Context, id uint64, backer domain.Address) (domain.Amount, error) {
	e, err := s.entry(id)
	if err != nil {
		return domain.Amount{}, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.contributions[backer], nil
}

// InCampaign holds the operation lock for the whole of fn. Ledger writes
// are staged and published together with the record by Save; everything
// published is undone if fn fails.
func (s *CampaignStore) InCampaign(ctx context.Context, id uint64, fn func(ctx context.Context, tx port.CampaignTx) error) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.op.Lock()
	defer e.op.Unlock()

	e.mu.RLock()
	tx := &campaignTx{
		entry:    e,
		working:  e.campaign,
		snapshot: e.campaign,
		pending:  make(map[domain.Address]domain.Amount),
		undo:     make(map[domain.Address]prior),
	}
	e.mu.RUnlock()
	if err = fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *CampaignStore) entry(id uint64) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id >= uint64(len(s.campaigns)) {
		return nil, domain.ErrNotFound
	}
	return s.campaigns[id], nil
}

type prior struct {
	amount  domain.Amount
	present bool
}

// campaignTx is only used by the holder of entry.op, the sole writer, so
// its own reads need no further locking.
type campaignTx struct {
	entry    *entry
	working  domain.Campaign
	snapshot domain.Campaign
	pending  map[domain.Address]domain.Amount
	undo     map[domain.Address]prior
}

func (tx *campaignTx) Campaign() *domain.Campaign {
	return &tx.working
}

// Save publishes the working record and staged ledger entries at once, so
// readers never see FundsRaised disagree with the ledger.
func (tx *campaignTx) Save(_ context.Context) error {
	tx.entry.mu.Lock()
	defer tx.entry.mu.Unlock()
	for backer, amount := range tx.pending {
		if _, seen := tx.undo[backer]; !seen {
			amt, ok := tx.entry.contributions[backer]
			tx.undo[backer] = prior{amount: amt, present: ok}
		}
		if amount.IsZero() {
			delete(tx.entry.contributions, backer)
		} else {
			tx.entry.contributions[backer] = amount
		}
	}
	clear(tx.pending)
	tx.entry.campaign = tx.working
	return nil
}

func (tx *campaignTx) Contribution(_ context.Context, backer domain.Address) (domain.Amount, error) {
	if amount, ok := tx.pending[backer]; ok {
		return amount, nil
	}
	return tx.entry.contributions[backer], nil
}

func (tx *campaignTx) SetContribution(_ context.Context, backer domain.Address, amount domain.Amount) error {
	tx.pending[backer] = amount
	return nil
}

func (tx *campaignTx) rollback() {
	tx.entry.mu.Lock()
	defer tx.entry.mu.Unlock()
	tx.entry.campaign = tx.snapshot
	for backer, p := range tx.undo {
		if p.present {
			tx.entry.contributions[backer] = p.amount
		} else {
			delete(tx.entry.contributions, backer)
		}
	}
}
