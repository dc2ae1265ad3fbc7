// Package repository provides data access layer for persisted settings.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karidea/pr.radiator/internal/settings/model"
)

// Repository defines the interface for settings data access operations.
type Repository interface {
	// ListRepos returns all tracked repositories ordered by name.
	ListRepos(ctx context.Context) ([]model.Repository, error)

	// ReplaceRepos swaps the tracked set for names, preserving the ignored
	// flag of repositories that survive the swap.
	ReplaceRepos(ctx context.Context, names []string) error

	// SetIgnored updates a repository's ignored flag.
	SetIgnored(ctx context.Context, name string, ignored bool) error

	// IgnoredNames returns the names of ignored repositories.
	IgnoredNames(ctx context.Context) ([]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new settings repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// ListRepos returns all tracked repositories ordered by name.
func (r *repository) ListRepos(ctx context.Context) ([]model.Repository, error) {
	var repos []model.Repository
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&repos).Error

	if err != nil {
		r.logger.Errorw("ListRepos database error", "error", err)
		return nil, err
	}

	if repos == nil {
		repos = []model.Repository{}
	}
	return repos, nil
}

// ReplaceRepos swaps the tracked set for names inside a transaction.
// Ignored flags carry over for names present in both the old and new set.
func (r *repository) ReplaceRepos(ctx context.Context, names []string) error {
	r.logger.Infow("ReplaceRepos called", "count", len(names))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ignored []string
		if txErr := tx.Model(&model.Repository{}).
			Where("ignored = ?", true).
			Pluck("name", &ignored).Error; txErr != nil {
			return txErr
		}
		ignoredSet := make(map[string]struct{}, len(ignored))
		for _, name := range ignored {
			ignoredSet[name] = struct{}{}
		}

		if txErr := tx.Where("1 = 1").Delete(&model.Repository{}).Error; txErr != nil {
			return txErr
		}

		if len(names) == 0 {
			return nil
		}

		repos := make([]model.Repository, 0, len(names))
		for _, name := range names {
			_, wasIgnored := ignoredSet[name]
			repos = append(repos, model.Repository{Name: name, Ignored: wasIgnored})
		}
		return tx.Create(&repos).Error
	})

	if err != nil {
		r.logger.Errorw("ReplaceRepos database error", "error", err)
		return err
	}
	return nil
}

// SetIgnored updates a repository's ignored flag.
func (r *repository) SetIgnored(ctx context.Context, name string, ignored bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Repository{}).
		Where("name = ?", name).
		Update("ignored", ignored)

	if result.Error != nil {
		r.logger.Errorw("SetIgnored database error", "name", name, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrRepositoryNotFound
	}

	r.logger.Infow("SetIgnored completed", "name", name, "ignored", ignored)
	return nil
}

// IgnoredNames returns the names of ignored repositories.
func (r *repository) IgnoredNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Repository{}).
		Where("ignored = ?", true).
		Order("name").
		Pluck("name", &names).Error

	if err != nil {
		r.logger.Errorw("IgnoredNames database error", "error", err)
		return nil, err
	}
	return names, nil
}
