package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akojamsy/voting-system/cache"
	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

// Register creates an account. An empty role means RoleUser.
func (d *Directory) Register(ctx context.Context, email, password, name string, role types.Role) (types.User, error) {
	if role == "" {
		role = types.RoleUser
	}
	if !role.Valid() {
		return types.User{}, fmt.Errorf("%w: %q", types.ErrInvalidRole, role)
	}
	email = utils.NormalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.hashCost)
	if err != nil {
		return types.User{}, err
	}

	d.st.Lock()
	defer d.st.Unlock()
	if _, ok := d.userByEmail(email); ok {
		return types.User{}, types.ErrEmailTaken
	}
	user := types.User{
		ID:       d.st.IDs.NextID(),
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
	}
	users := make([]types.User, len(d.st.Users), len(d.st.Users)+1)
	copy(users, d.st.Users)
	users = append(users, user)
	if err := d.st.ReplaceUsers(ctx, users); err != nil {
		return types.User{}, err
	}
	d.logger.Info("User registered", zap.Int64("userID", user.ID), zap.String("role", string(role)))
	return user, nil
}

func (d *Directory) userByEmail(email string) (types.User, bool) {
	for _, u := range d.st.Users {
		if u.Email == email {
			return u, true
		}
	}
	return types.User{}, false
}

func (d *Directory) Authenticate(email, password string) (types.User, error) {
	d.st.RLock()
	user, ok := d.userByEmail(utils.NormalizeEmail(email))
	d.st.RUnlock()
	if !ok {
		return types.User{}, types.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return types.User{}, types.ErrInvalidCredentials
	}
	return user, nil
}

func (d *Directory) User(id int64) (types.User, error) {
	d.st.RLock()
	defer d.st.RUnlock()
	for _, u := range d.st.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, types.ErrUserNotFound
}

// Login authenticates and opens a session.
func (d *Directory) Login(ctx context.Context, email, password string) (string, types.User, error) {
	user, err := d.Authenticate(email, password)
	if err != nil {
		return "", types.User{}, err
	}
	token := uuid.NewString()
	if err := d.sessions.SetSession(ctx, token, user.ID); err != nil {
		return "", types.User{}, fmt.Errorf("store session: %w", err)
	}
	return token, user, nil
}

func (d *Directory) Session(ctx context.Context, token string) (types.User, error) {
	id, err := d.sessions.Session(ctx, token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return types.User{}, types.ErrSessionNotFound
	}
	if err != nil {
		return types.User{}, err
	}
	return d.User(id)
}

func (d *Directory) Logout(ctx context.Context, token string) error {
	err := d.sessions.DeleteSession(ctx, token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return types.ErrSessionNotFound
	}
	return err
}
