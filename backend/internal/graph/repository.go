package graph

import (
	"context"
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	apperrors "tastegraph/backend/pkg/errors"
	"tastegraph/backend/pkg/logger"
)

// Repository handles all Neo4j read operations for the profile engine.
// Every query runs in a short-lived read session; nothing here mutates
// the graph.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

func (r *Repository) readSession(ctx context.Context) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

// IsUnavailable reports whether err indicates the graph store itself is
// unreachable, as opposed to a query-level failure. Checks the wrapped
// chain, since repository methods annotate driver errors.
func IsUnavailable(err error) bool {
	var connErr *neo4j.ConnectivityError
	if errors.As(err, &connErr) {
		return true
	}
	var appConnErr *apperrors.ErrGraphConnectionFailed
	return errors.As(err, &appConnErr)
}
