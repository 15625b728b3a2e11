package postgres

import (
	"context"

	"clientes/internal/domain/entity"
	"clientes/internal/domain/repository"
	"clientes/internal/errors"
	"clientes/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// DefaultRegions is the reference data inserted by the region seed.
var DefaultRegions = []string{
	"Sudamérica",
	"Centroamérica",
	"Norteamérica",
	"Europa",
	"Asia",
	"Africa",
	"Oceanía",
	"Antártida",
}

type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// FindAll returns every region ordered by ID.
func (repo *regionRepository) FindAll(ctx context.Context) ([]*entity.Region, error) {
	var rows []*model.RegionModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(rows))
	for _, row := range rows {
		regions = append(regions, toRegionDomain(row))
	}

	return regions, nil
}

func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	return &entity.Region{
		ID:   data.ID,
		Name: data.Name,
	}
}
