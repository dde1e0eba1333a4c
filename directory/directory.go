// Package directory keeps the member roster, user accounts and login sessions.
package directory

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akojamsy/voting-system/cache"
	"github.com/akojamsy/voting-system/store"
	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

const (
	DefaultAdminEmail    = "admin@parliament.gov"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Administrator"
)

type Config struct {
	Store *store.Store
	// Sessions defaults to an in-process cache.
	Sessions cache.Client
	// HashCost is the bcrypt cost for new passwords, bcrypt.DefaultCost when zero.
	HashCost int
	Logger   *zap.Logger
}

type Directory struct {
	st       *store.Store
	hashCost int
	sessions cache.Client
	logger   *zap.Logger
}

func New(cfg Config) *Directory {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HashCost == 0 {
		cfg.HashCost = bcrypt.DefaultCost
	}
	if cfg.Sessions == nil {
		cfg.Sessions = cache.NewMemory(12*time.Hour, time.Now)
	}
	return &Directory{
		st:       cfg.Store,
		hashCost: cfg.HashCost,
		sessions: cfg.Sessions,
		logger:   cfg.Logger.With(zap.String("component", "directory")),
	}
}

func (d *Directory) Members() []types.Member {
	d.st.RLock()
	defer d.st.RUnlock()
	members := make([]types.Member, len(d.st.Members))
	copy(members, d.st.Members)
	return members
}

func (d *Directory) MemberCount() int {
	d.st.RLock()
	defer d.st.RUnlock()
	return len(d.st.Members)
}

func (d *Directory) Member(id int64) (types.Member, error) {
	d.st.RLock()
	defer d.st.RUnlock()
	idx := d.memberIndex(id)
	if idx < 0 {
		return types.Member{}, types.ErrMemberNotFound
	}
	return d.st.Members[idx], nil
}

func (d *Directory) memberIndex(id int64) int {
	for i, m := range d.st.Members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (d *Directory) AddMember(ctx context.Context, m types.Member) (types.Member, error) {
	d.st.Lock()
	defer d.st.Unlock()
	m.ID = d.st.IDs.NextID()
	m.Email = utils.NormalizeEmail(m.Email)
	members := make([]types.Member, len(d.st.Members), len(d.st.Members)+1)
	copy(members, d.st.Members)
	members = append(members, m)
	if err := d.st.ReplaceMembers(ctx, members); err != nil {
		return types.Member{}, err
	}
	d.logger.Info("Member added", zap.Int64("memberID", m.ID), zap.String("name", m.Name))
	return m, nil
}

func (d *Directory) UpdateMember(ctx context.Context, m types.Member) (types.Member, error) {
	d.st.Lock()
	defer d.st.Unlock()
	idx := d.memberIndex(m.ID)
	if idx < 0 {
		return types.Member{}, types.ErrMemberNotFound
	}
	m.Email = utils.NormalizeEmail(m.Email)
	members := make([]types.Member, len(d.st.Members))
	copy(members, d.st.Members)
	members[idx] = m
	if err := d.st.ReplaceMembers(ctx, members); err != nil {
		return types.Member{}, err
	}
	return m, nil
}

func (d *Directory) DeleteMember(ctx context.Context, id int64) error {
	d.st.Lock()
	defer d.st.Unlock()
	idx := d.memberIndex(id)
	if idx < 0 {
		return types.ErrMemberNotFound
	}
	members := make([]types.Member, 0, len(d.st.Members)-1)
	members = append(members, d.st.Members[:idx]...)
	members = append(members, d.st.Members[idx+1:]...)
	if err := d.st.ReplaceMembers(ctx, members); err != nil {
		return err
	}
	d.logger.Info("Member removed", zap.Int64("memberID", id))
	return nil
}

// EnsureAdmin seeds the default administrator account when there are no users.
func (d *Directory) EnsureAdmin(ctx context.Context) error {
	d.st.RLock()
	empty := len(d.st.Users) == 0
	d.st.RUnlock()
	if !empty {
		return nil
	}
	_, err := d.Register(ctx, DefaultAdminEmail, DefaultAdminPassword, DefaultAdminName, types.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	d.logger.Info("Default administrator created", zap.String("email", DefaultAdminEmail))
	return nil
}
