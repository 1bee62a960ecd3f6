// Package identity implements the resolution between numeric user and group
// identifiers and their names in the identity database of the system.
//
// Resolved entries are cached for the lifetime of the process, as the identity
// database is considered static for that duration. Lookups of already cached
// entries do not lock, only the population of the cache is serialized.
package identity

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"sync"

	"github.com/desertwitch/fsmeta/internal/platform"
	"github.com/desertwitch/fsmeta/internal/schema"
)

type gateProvider interface {
	SupportsOwnership() bool
}

type userDBProvider interface {
	LookupId(uid string) (*user.User, error)       //nolint:revive,stylecheck
	LookupGroupId(gid string) (*user.Group, error) //nolint:revive,stylecheck
	Lookup(username string) (*user.User, error)
	LookupGroup(name string) (*user.Group, error)
}

// Handler is the principal implementation of a [schema.NameResolver].
type Handler struct {
	gateHandler gateProvider
	dbHandler   userDBProvider

	populateLock sync.Mutex

	userNames  sync.Map // map[int]string
	groupNames sync.Map // map[int]string
	userIDs    sync.Map // map[string]int
	groupIDs   sync.Map // map[string]int
}

//nolint:gochecknoglobals
var defaultHandler = sync.OnceValue(func() *Handler {
	return NewHandler(platform.Native(), &schema.UserDB{})
})

// Default returns the process-wide [Handler] of the build platform.
func Default() *Handler {
	return defaultHandler()
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(gateHandler gateProvider, dbHandler userDBProvider) *Handler {
	return &Handler{
		gateHandler: gateHandler,
		dbHandler:   dbHandler,
	}
}

// GetUserName returns the name of a user identifier. It returns
// [schema.ErrUnsupported] on platforms without ownership (or for
// [schema.NoID]) and [schema.ErrNotFound] if the identifier has no entry.
func (h *Handler) GetUserName(uid int) (string, error) {
	name, err := resolve(h, &h.userNames, uid, func(key int) (string, error) {
		u, err := h.dbHandler.LookupId(strconv.Itoa(key))
		if err != nil {
			return "", err
		}

		return u.Username, nil
	})
	if err != nil {
		return "", fmt.Errorf("(identity-user) uid %d: %w", uid, err)
	}

	return name, nil
}

// GetGroupName returns the name of a group identifier. It returns
// [schema.ErrUnsupported] on platforms without ownership (or for
// [schema.NoID]) and [schema.ErrNotFound] if the identifier has no entry.
func (h *Handler) GetGroupName(gid int) (string, error) {
	name, err := resolve(h, &h.groupNames, gid, func(key int) (string, error) {
		g, err := h.dbHandler.LookupGroupId(strconv.Itoa(key))
		if err != nil {
			return "", err
		}

		return g.Name, nil
	})
	if err != nil {
		return "", fmt.Errorf("(identity-group) gid %d: %w", gid, err)
	}

	return name, nil
}

// LookupUserID returns the identifier for a user given by its name or by a
// numeric identifier. Names take precedence over numbers. An empty string
// returns [schema.NoID], meaning "leave unchanged" to ownership changes.
func (h *Handler) LookupUserID(nameOrID string) (int, error) {
	if nameOrID == "" {
		return schema.NoID, nil
	}

	id, err := resolve(h, &h.userIDs, nameOrID, func(key string) (int, error) {
		u, err := h.dbHandler.Lookup(key)
		if err != nil {
			return fallbackID(key, err)
		}

		return strconv.Atoi(u.Uid)
	})
	if err != nil {
		return schema.NoID, fmt.Errorf("(identity-lookupuser) %q: %w", nameOrID, err)
	}

	return id, nil
}

// LookupGroupID returns the identifier for a group given by its name or by a
// numeric identifier. Names take precedence over numbers. An empty string
// returns [schema.NoID], meaning "leave unchanged" to ownership changes.
func (h *Handler) LookupGroupID(nameOrID string) (int, error) {
	if nameOrID == "" {
		return schema.NoID, nil
	}

	id, err := resolve(h, &h.groupIDs, nameOrID, func(key string) (int, error) {
		g, err := h.dbHandler.LookupGroup(key)
		if err != nil {
			return fallbackID(key, err)
		}

		return strconv.Atoi(g.Gid)
	})
	if err != nil {
		return schema.NoID, fmt.Errorf("(identity-lookupgroup) %q: %w", nameOrID, err)
	}

	return id, nil
}

// resolve returns a cached value for key, or populates the cache using the
// lookup function. Failed lookups are not cached.
func resolve[K comparable, V any](h *Handler, cache *sync.Map, key K, lookup func(K) (V, error)) (V, error) {
	var zero V

	if !h.gateHandler.SupportsOwnership() {
		return zero, schema.ErrUnsupported
	}

	if id, ok := any(key).(int); ok && id == schema.NoID {
		return zero, schema.ErrUnsupported
	}

	if v, ok := cache.Load(key); ok {
		return v.(V), nil //nolint:forcetypeassert
	}

	h.populateLock.Lock()
	defer h.populateLock.Unlock()

	if v, ok := cache.Load(key); ok {
		return v.(V), nil //nolint:forcetypeassert
	}

	v, err := lookup(key)
	if err != nil {
		return zero, classifyLookup(err)
	}

	cache.Store(key, v)

	return v, nil
}

// fallbackID parses a name that was not found in the database as a numeric
// identifier, returning the original lookup error if it is not one.
func fallbackID(nameOrID string, lookupErr error) (int, error) {
	id, err := strconv.Atoi(nameOrID)
	if err != nil || id < 0 {
		return schema.NoID, lookupErr
	}

	return id, nil
}

func classifyLookup(err error) error {
	var (
		unknownUser    user.UnknownUserError
		unknownUserID  user.UnknownUserIdError
		unknownGroup   user.UnknownGroupError
		unknownGroupID user.UnknownGroupIdError
	)

	switch {
	case errors.As(err, &unknownUser),
		errors.As(err, &unknownUserID),
		errors.As(err, &unknownGroup),
		errors.As(err, &unknownGroupID):
		return fmt.Errorf("%w: %w", schema.ErrNotFound, err)
	}

	return err
}
