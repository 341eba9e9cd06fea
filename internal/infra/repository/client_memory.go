package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
)

// ClientMemoryRepository keeps clients in process memory. Used for local
// runs without Postgres and in tests.
type ClientMemoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	rows   map[uint]domain.Client
}

func NewClientMemoryRepository() *ClientMemoryRepository {
	return &ClientMemoryRepository{
		nextID: 1,
		rows:   make(map[uint]domain.Client),
	}
}

func (r *ClientMemoryRepository) Create(_ context.Context, c *domain.Client) error {
	if c.IsPersisted() {
		return domain.ErrAlreadyPersisted
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	if err := c.AssignID(id); err != nil {
		return err
	}
	r.rows[id] = cloneClient(*c)
	return nil
}

func (r *ClientMemoryRepository) Get(_ context.Context, id uint) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneClient(row)
	return &c, nil
}

func (r *ClientMemoryRepository) List(_ context.Context, f domain.ListFilter) ([]domain.Client, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))

	matched := make([]domain.Client, 0, len(r.rows))
	for _, row := range r.rows {
		if query != "" &&
			!strings.Contains(strings.ToLower(row.Name), query) &&
			!strings.Contains(row.Phone, query) &&
			!strings.Contains(strings.ToLower(row.Email), query) {
			continue
		}
		matched = append(matched, cloneClient(row))
	}

	// newest first
	sort.Slice(matched, func(i, j int) bool {
		return *matched[i].ID > *matched[j].ID
	})

	total := int64(len(matched))

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []domain.Client{}, total, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}

	return matched, total, nil
}

func (r *ClientMemoryRepository) Update(_ context.Context, c *domain.Client) error {
	if err := domain.ValidateForIdentification(*c).Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[*c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[*c.ID] = cloneClient(*c)
	return nil
}

func (r *ClientMemoryRepository) Delete(_ context.Context, c *domain.Client) error {
	if err := domain.ValidateForIdentification(*c).Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[*c.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, *c.ID)
	return nil
}

// cloneClient detaches the ID pointer from the caller's copy.
func cloneClient(c domain.Client) domain.Client {
	if c.ID != nil {
		id := *c.ID
		c.ID = &id
	}
	return c
}

var _ domain.Repository = (*ClientMemoryRepository)(nil)
