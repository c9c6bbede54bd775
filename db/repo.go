package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"Gin_redis_dress_rental/logger"
	"Gin_redis_dress_rental/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrMissingFields  = errors.New("name and category are required")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrRentalNotFound = models.ErrPeriodNotFound
	ErrDatesRequired  = models.ErrDatesRequired
	ErrInvalidRange   = models.ErrInvalidRange
)

// Op names a store mutation in change events, logs and metrics.
type Op string

const (
	OpToggle       Op = "toggle_availability"
	OpAddRental    Op = "add_rental"
	OpRemoveRental Op = "remove_rental"
	OpAddItem      Op = "add_item"
)

// Change is published to subscribers after every successful mutation.
type Change struct {
	Op      Op     `json:"op"`
	ItemID  string `json:"itemId"`
	Version uint64 `json:"version"`
}

// MutationHook observes every mutation attempt, successful or not.
type MutationHook func(op Op, err error)

type Option func(*Repo)

func WithLogger(l *logrus.Logger) Option { return func(r *Repo) { r.log = l } }

func WithMutationHook(h MutationHook) Option { return func(r *Repo) { r.hook = h } }

// WithCatalog replaces the starting items and categories.
func WithCatalog(c Catalog) Option {
	return func(r *Repo) {
		r.items = cloneItems(c.Items)
		r.categories = append([]models.Category(nil), c.Categories...)
	}
}

// Repo is the single owner of catalog state for both the storefront and the admin page.
// Mutations never edit the current slice in place; they publish a new one.
type Repo struct {
	mu         sync.RWMutex
	items      []models.CatalogItem
	categories []models.Category
	version    uint64

	subMu sync.Mutex
	subs  map[chan Change]struct{}

	log  *logrus.Logger
	hook MutationHook
}

func NewRepo(items []models.CatalogItem, categories []models.Category, opts ...Option) *Repo {
	r := &Repo{
		items:      cloneItems(items),
		categories: append([]models.Category(nil), categories...),
		subs:       make(map[chan Change]struct{}),
		log:        logger.Discard(),
		hook:       func(Op, error) {},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewID returns a time-ordered identifier with the given prefix.
func NewID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}

// Items

func (r *Repo) ListItems(ctx context.Context, category string) ([]models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneItems(FilterByCategory(r.items, category)), nil
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	it := r.items[i].Clone()
	return &it, nil
}

func (r *Repo) Categories(ctx context.Context) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Category(nil), r.categories...), nil
}

// Version increases by one with every successful mutation.
func (r *Repo) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Subscribe streams changes until ctx is done, then closes the channel.
// A subscriber that falls behind loses events rather than blocking writers.
func (r *Repo) Subscribe(ctx context.Context) <-chan Change {
	ch := make(chan Change, 16)
	r.subMu.Lock()
	r.subs[ch] = struct{}{}
	r.subMu.Unlock()

	go func() {
		<-ctx.Done()
		r.subMu.Lock()
		delete(r.subs, ch)
		close(ch)
		r.subMu.Unlock()
	}()
	return ch
}

func (r *Repo) publish(c Change) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

// update replaces the item with the given id by fn's result and swaps in a new list.
func (r *Repo) update(ctx context.Context, op Op, id string, fn func(models.CatalogItem) (models.CatalogItem, error)) (models.CatalogItem, error) {
	it, err := r.doUpdate(ctx, op, id, fn)
	r.hook(op, err)
	return it, err
}

func (r *Repo) doUpdate(ctx context.Context, op Op, id string, fn func(models.CatalogItem) (models.CatalogItem, error)) (models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CatalogItem{}, err
	}

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return models.CatalogItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	updated, err := fn(r.items[i].Clone())
	if err != nil {
		r.mu.Unlock()
		return models.CatalogItem{}, err
	}
	next := make([]models.CatalogItem, len(r.items))
	copy(next, r.items)
	next[i] = updated
	r.items = next
	r.version++
	change := Change{Op: op, ItemID: id, Version: r.version}
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{"op": op, "item": id, "version": change.Version}).Debug("catalog updated")
	r.publish(change)
	return updated.Clone(), nil
}

func (r *Repo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(in []models.CatalogItem) []models.CatalogItem {
	out := make([]models.CatalogItem, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
