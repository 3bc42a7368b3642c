package adsrepo

import (
	"github.com/GlebRadaev/coinledger/internal/pg"
)

// Repository stores publisher sites and slots, advertiser campaigns and
// creatives, served tokens and impressions.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}
