package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladia/corretora-go/internal/model"
	"github.com/vladia/corretora-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// SETNX on the email index is the atomic uniqueness check: of two
	// concurrent registrations for the same email, exactly one claims it.
	email := model.NormalizeEmail(account.Email)
	claimed, err := s.client.SetNX(ctx, emailIndexKey(email), string(account.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrEmailTaken
	}

	return s.client.Set(ctx, accountKey(account.ID), data, 0).Err()
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	idStr, err := s.client.Get(ctx, emailIndexKey(model.NormalizeEmail(email))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	return s.GetAccount(ctx, model.AccountID(idStr))
}

func (s *Storage) UpdateAccount(ctx context.Context, account *model.Account) error {
	existing, err := s.GetAccount(ctx, account.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	oldEmail := model.NormalizeEmail(existing.Email)
	newEmail := model.NormalizeEmail(account.Email)

	if newEmail != oldEmail {
		claimed, err := s.client.SetNX(ctx, emailIndexKey(newEmail), string(account.ID), 0).Result()
		if err != nil {
			return err
		}
		if !claimed {
			// The index entry may already be ours (e.g. a case-only change)
			owner, err := s.client.Get(ctx, emailIndexKey(newEmail)).Result()
			if err != nil {
				return err
			}
			if owner != string(account.ID) {
				return model.ErrEmailTaken
			}
		}

		pipe := s.client.Pipeline()
		pipe.Set(ctx, accountKey(account.ID), data, 0)
		pipe.Del(ctx, emailIndexKey(oldEmail))
		_, err = pipe.Exec(ctx)
		return err
	}

	return s.client.Set(ctx, accountKey(account.ID), data, 0).Err()
}

// Listing operations

func (s *Storage) SaveListing(ctx context.Context, listing *model.Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	key := listingKey(listing.ID)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, listingIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetListing(ctx context.Context, id model.ListingID) (*model.Listing, error) {
	data, err := s.client.Get(ctx, listingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrListingNotFound
		}
		return nil, err
	}

	var listing model.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (s *Storage) ListListings(ctx context.Context) ([]*model.Listing, error) {
	keys, err := s.client.SMembers(ctx, listingIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Listing{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	listings := make([]*model.Listing, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // stale index entry
		}
		var listing model.Listing
		if err := json.Unmarshal([]byte(val.(string)), &listing); err != nil {
			continue // skip invalid data
		}
		listings = append(listings, &listing)
	}

	// Newest first
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

func (s *Storage) DeleteListing(ctx context.Context, id model.ListingID) error {
	key := listingKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, listingIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}
