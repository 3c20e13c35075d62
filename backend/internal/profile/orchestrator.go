package profile

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"tastegraph/backend/internal/artifacts"
	"tastegraph/backend/internal/graph"
	"tastegraph/backend/pkg/logger"
)

// ErrStoreUnavailable is returned when every algorithm failed with a
// connectivity error: the graph store itself is down, and the caller should
// surface one service-unavailable signal instead of eight copies of it.
var ErrStoreUnavailable = errors.New("graph store unavailable")

const algorithmCount = 8

// Orchestrator runs the eight scoring algorithms against one user and
// assembles the composite profile. Failures are isolated per algorithm:
// a failing or unavailable algorithm contributes an entry to the profile's
// error map and never blocks its siblings.
type Orchestrator struct {
	repo      GraphReader
	store     *artifacts.Store
	tokenizer SignatureTokenizer
	workers   int
	logger    *zap.Logger
}

// NewOrchestrator creates a profile orchestrator. workers bounds the
// per-request fan-out; the algorithms are all read-only so concurrency
// needs no coordination beyond result collection.
func NewOrchestrator(repo GraphReader, store *artifacts.Store, tokenizer SignatureTokenizer, workers int) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		repo:      repo,
		store:     store,
		tokenizer: tokenizer,
		workers:   workers,
		logger:    logger.Get(),
	}
}

// BuildProfile computes the full composite profile for one user. The
// returned profile always carries the user id and an error map; individual
// sub-results are present only when their algorithm succeeded with data.
func (o *Orchestrator) BuildProfile(ctx context.Context, userID string) (*Profile, error) {
	p := &Profile{
		UserID: userID,
		Errors: make(map[string]string),
	}

	var mu sync.Mutex
	failures := make(map[string]error)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	// run invokes one algorithm and records either its result or its error.
	// Tasks always return nil so one failure never cancels siblings.
	run := func(key string, compute func(context.Context) error) {
		g.Go(func() error {
			if err := compute(gctx); err != nil {
				o.logger.Warn("profile algorithm failed",
					zap.String("user_id", userID),
					zap.String("algorithm", key),
					zap.Error(err),
				)
				mu.Lock()
				failures[key] = err
				p.Errors[key] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}

	run(KeyReviewRhythm, func(ctx context.Context) error {
		rhythm, err := o.ReviewRhythmFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.ReviewRhythm = rhythm
		mu.Unlock()
		return nil
	})

	run(KeyDiversity, func(ctx context.Context) error {
		diversity, err := o.DiversityFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.Diversity = diversity
		mu.Unlock()
		return nil
	})

	run(KeySentiment, func(ctx context.Context) error {
		timeline, err := o.SentimentFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.Sentiment = timeline
		mu.Unlock()
		return nil
	})

	run(KeyWordSignature, func(ctx context.Context) error {
		signature, err := o.SignatureFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.WordSignature = signature
		mu.Unlock()
		return nil
	})

	run(KeyHiddenGems, func(ctx context.Context) error {
		gems, err := o.HiddenGemsFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.HiddenGems = gems
		mu.Unlock()
		return nil
	})

	run(KeyTasteCluster, func(ctx context.Context) error {
		cluster, err := o.TasteClusterFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.TasteCluster = cluster
		mu.Unlock()
		return nil
	})

	run(KeyRecommendations, func(ctx context.Context) error {
		recommendations, err := o.RecommendationsFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.Recommendations = recommendations
		mu.Unlock()
		return nil
	})

	run(KeyInfluence, func(ctx context.Context) error {
		influence, err := o.InfluenceFor(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		p.Influence = influence
		mu.Unlock()
		return nil
	})

	// Tasks never return errors; Wait only joins them.
	_ = g.Wait()

	// A uniform connectivity failure across all eight means the store is
	// down; collapse the eight duplicates into one signal.
	if len(failures) == algorithmCount {
		storeDown := true
		for _, err := range failures {
			if !graph.IsUnavailable(err) {
				storeDown = false
				break
			}
		}
		if storeDown {
			return nil, ErrStoreUnavailable
		}
	}

	return p, nil
}
