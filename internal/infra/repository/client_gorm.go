package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-orders/internal/domain/client"
	"github.com/BruksfildServices01/service-orders/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Create / Read
// --------------------------------------------------

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *domain.Client,
) error {

	if c.IsPersisted() {
		return domain.ErrAlreadyPersisted
	}

	row := toModel(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	return c.AssignID(row.ID)
}

func (r *ClientGormRepository) Get(
	ctx context.Context,
	id uint,
) (*domain.Client, error) {

	var row models.Client
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	c := toDomain(row)
	return &c, nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]domain.Client, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var rows []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}

	return out, total, nil
}

// --------------------------------------------------
// Update / Delete (keyed by id)
// --------------------------------------------------

func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *domain.Client,
) error {

	if err := domain.ValidateForIdentification(*c).Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", *c.ID).
		Updates(map[string]any{
			"name":  c.Name,
			"email": c.Email,
			"phone": c.Phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	c *domain.Client,
) error {

	if err := domain.ValidateForIdentification(*c).Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&models.Client{}, *c.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toModel(c *domain.Client) models.Client {
	row := models.Client{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	if c.ID != nil {
		row.ID = *c.ID
	}
	return row
}

func toDomain(row models.Client) domain.Client {
	id := row.ID
	return domain.Client{
		ID:    &id,
		Name:  row.Name,
		Email: row.Email,
		Phone: row.Phone,
	}
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
