package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/userdeck/internal/config"
	"github.com/cristianoliveira/userdeck/internal/domain"
	"github.com/cristianoliveira/userdeck/internal/logging"
	"github.com/cristianoliveira/userdeck/internal/search"
	"github.com/cristianoliveira/userdeck/internal/storage"
	"github.com/cristianoliveira/userdeck/internal/store"
)

// userClient is what the one-shot commands need from the data layer.
type userClient interface {
	FetchPage(req domain.PageRequest) domain.Page
	UserByID(id int) (domain.User, bool)
	IsFavorite(id int) bool
	Apply(ctx context.Context, cmd store.Command) error
	Close() error
}

// clientOpener opens a loaded userClient. Commands take one so tests can
// point them at a temporary database.
type clientOpener func(ctx context.Context) (userClient, error)

// storeClient couples a Store with the storage it reads from.
type storeClient struct {
	*store.Store
	storage storage.Storage
}

func (c *storeClient) Close() error {
	return c.storage.Close()
}

// openStorage opens the configured database, seeding it on first run.
func openStorage(ctx context.Context) (storage.Storage, error) {
	stor, err := storage.NewFromConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return stor, nil
}

// openStoreClient opens the configured database and loads it.
func openStoreClient(ctx context.Context) (*storeClient, error) {
	stor, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}
	return loadStoreClient(ctx, stor)
}

// openDBClient opens the database at dbPath and loads it.
func openDBClient(ctx context.Context, dbPath string) (*storeClient, error) {
	stor, err := storage.Open(ctx, dbPath, "")
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return loadStoreClient(ctx, stor)
}

func loadStoreClient(ctx context.Context, stor storage.Storage) (*storeClient, error) {
	client := &storeClient{Store: newStore(stor), storage: stor}
	if err := client.Apply(ctx, store.FetchAll()); err != nil {
		_ = stor.Close()
		return nil, err
	}
	return client, nil
}

// defaultOpener opens the configured database.
func defaultOpener(ctx context.Context) (userClient, error) {
	return openStoreClient(ctx)
}

// newStore builds a Store using the search and logging configuration.
func newStore(repo store.Repository) *store.Store {
	provider := search.New(
		config.Get("search_provider", "substring"),
		search.WithCaseInsensitive(config.GetBool("search_case_insensitive", true)),
		search.WithFields(config.GetList("search_fields", nil)),
	)
	return store.New(repo,
		store.WithSearchProvider(provider),
		store.WithLogger(logging.With("component", "store")),
	)
}

func pageSize() int {
	return config.GetInt("page_size", domain.DefaultPageSize)
}

func statusClearDuration() time.Duration {
	return time.Duration(config.GetInt("status_clear_seconds", 5)) * time.Second
}
