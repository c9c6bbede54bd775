package db

import (
	"github.com/sirupsen/logrus"
)

// Open builds the process-wide store seeded with the launch collection.
// Nothing is persisted; a restart brings the seed back.
func Open(log *logrus.Logger, opts ...Option) *Repo {
	opts = append([]Option{WithLogger(log)}, opts...)
	repo := NewRepo(SeedItems(), SeedCategories(), opts...)
	log.WithFields(logrus.Fields{
		"items":      len(repo.items),
		"categories": len(repo.categories),
	}).Info("catalog seeded")
	return repo
}
