// Package artifacts loads the offline-computed assets the profile engine
// consumes: the inverse-document-frequency model, the category popularity
// index and the rank distributions. Everything is loaded once at startup and
// treated as immutable afterwards, so reads need no locking. A missing or
// corrupt file leaves its slot unloaded and degrades only the algorithms
// that depend on it.
package artifacts

import (
	"go.uber.org/zap"
	"tastegraph/backend/pkg/config"
	apperrors "tastegraph/backend/pkg/errors"
	"tastegraph/backend/pkg/logger"
)

// Artifact names used in unavailable errors and log lines.
const (
	ArtifactIDFModel           = "idf model"
	ArtifactCategoryPopularity = "category popularity index"
	ArtifactRankDistributions  = "rank distributions"
)

// Store holds the loaded artifacts. Slots are nil when their file failed to
// load; accessors turn that into a typed unavailable error.
type Store struct {
	idf        *IDFModel
	popularity *CategoryPopularity
	ranks      *RankDistributions
	logger     *zap.Logger
}

// Load reads every artifact named in the configuration. Load failures are
// logged and leave the slot unloaded; the process starts regardless.
func Load(cfg *config.Config) *Store {
	log := logger.Get()
	s := &Store{logger: log}

	idf, err := LoadIDFModel(cfg.IDFModelPath)
	if err != nil {
		log.Warn("IDF model not loaded, word signature will be unavailable",
			zap.String("path", cfg.IDFModelPath), zap.Error(err))
	} else {
		log.Info("IDF model loaded",
			zap.String("path", cfg.IDFModelPath), zap.Int("terms", idf.Len()))
		s.idf = idf
	}

	popularity, err := LoadCategoryPopularity(cfg.CategoryPopularityPath)
	if err != nil {
		log.Warn("category popularity index not loaded, recommendations will be unavailable",
			zap.String("path", cfg.CategoryPopularityPath), zap.Error(err))
	} else {
		log.Info("category popularity index loaded",
			zap.String("path", cfg.CategoryPopularityPath), zap.Int("categories", popularity.Len()))
		s.popularity = popularity
	}

	ranks, err := LoadRankDistributions(cfg.RankDistributionsPath)
	if err != nil {
		log.Warn("rank distributions not loaded, influence percentile will be unavailable",
			zap.String("path", cfg.RankDistributionsPath), zap.Error(err))
	} else {
		log.Info("rank distributions loaded",
			zap.String("path", cfg.RankDistributionsPath),
			zap.Int("centrality", ranks.Centrality.Len()),
			zap.Int("useful_votes", ranks.UsefulVotes.Len()),
			zap.Int("composite", ranks.Composite.Len()))
		s.ranks = ranks
	}

	return s
}

// NewStore wires pre-built artifacts together; used by tests and by any
// caller that loads artifacts through another path.
func NewStore(idf *IDFModel, popularity *CategoryPopularity, ranks *RankDistributions) *Store {
	return &Store{
		idf:        idf,
		popularity: popularity,
		ranks:      ranks,
		logger:     logger.Get(),
	}
}

// IDFModel returns the loaded IDF model or an unavailable error.
func (s *Store) IDFModel() (*IDFModel, error) {
	if s.idf == nil {
		return nil, apperrors.NewArtifactUnavailable(ArtifactIDFModel)
	}
	return s.idf, nil
}

// CategoryPopularity returns the loaded popularity index or an unavailable error.
func (s *Store) CategoryPopularity() (*CategoryPopularity, error) {
	if s.popularity == nil {
		return nil, apperrors.NewArtifactUnavailable(ArtifactCategoryPopularity)
	}
	return s.popularity, nil
}

// RankDistributions returns the loaded distributions or an unavailable error.
// All three distributions load from one file, so they are present or absent
// as a unit.
func (s *Store) RankDistributions() (*RankDistributions, error) {
	if s.ranks == nil {
		return nil, apperrors.NewArtifactUnavailable(ArtifactRankDistributions)
	}
	return s.ranks, nil
}
