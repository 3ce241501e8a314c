// Package service contains catalog workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/modkit/repokit"
	perr "bazaar/internal/platform/errors"
	"bazaar/internal/services/catalog/domain"
	"bazaar/internal/services/catalog/repo"
)

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the catalog service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Categories returns the full category tree ordered by path
func (s *Svc) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.Repo.Categories(ctx)
}

// ListingByID fetches one listing, visible or not
func (s *Svc) ListingByID(ctx context.Context, id string) (domain.Listing, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return domain.Listing{}, perr.WithField(perr.InvalidArgf("listing id must be a uuid"), "id")
	}
	return s.Repo.ListingByID(ctx, uid)
}

// AttrVocabFor returns observed attribute key values under a category
func (s *Svc) AttrVocabFor(ctx context.Context, category string) (domain.AttrVocab, error) {
	if category == "" {
		return nil, perr.WithField(perr.InvalidArgf("category is required"), "category")
	}
	return s.Repo.AttrVocabFor(ctx, category)
}
