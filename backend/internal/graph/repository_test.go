package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	apperrors "tastegraph/backend/pkg/errors"
)

func TestIsUnavailable(t *testing.T) {
	connErr := apperrors.NewGraphConnectionFailed("neo4j://localhost:7687", errors.New("refused"))

	assert.True(t, IsUnavailable(connErr))
	assert.True(t, IsUnavailable(fmt.Errorf("review time buckets: %w", connErr)))

	assert.False(t, IsUnavailable(nil))
	assert.False(t, IsUnavailable(errors.New("syntax error")))
	assert.False(t, IsUnavailable(apperrors.NewGraphQueryFailed("MATCH (n)", errors.New("boom"))))
}

// The tests below require a running Neo4j instance at bolt://localhost:7687
// (neo4j/password), matching the dev compose setup.

func TestRepository_ReviewTimeBuckets(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	userID := "test-user-" + time.Now().Format("20060102150405")

	seedTestUser(t, driver, userID)
	defer cleanupTestUser(driver, userID)

	buckets, err := repo.ReviewTimeBuckets(ctx, userID)
	if err != nil {
		t.Fatalf("ReviewTimeBuckets failed: %v", err)
	}

	total := 0
	for _, b := range buckets {
		if b.Day < 1 || b.Day > 7 {
			t.Errorf("day out of range: %d", b.Day)
		}
		total += b.Count
	}
	if total != 2 {
		t.Errorf("Expected 2 dated reviews, got %d", total)
	}
}

func TestRepository_CommunityID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	userID := "test-user-" + time.Now().Format("20060102150405")

	seedTestUser(t, driver, userID)
	defer cleanupTestUser(driver, userID)

	communityID, err := repo.CommunityID(ctx, userID)
	if err != nil {
		t.Fatalf("CommunityID failed: %v", err)
	}
	if communityID == nil || *communityID != 3 {
		t.Errorf("Expected community id 3, got %v", communityID)
	}

	_, err = repo.CommunityID(ctx, userID+"-missing")
	if !apperrors.IsUserNotFound(err) {
		t.Errorf("Expected ErrGraphUserNotFound, got %v", err)
	}
}

func TestRepository_GetBusinessDetails(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	userID := "test-user-" + time.Now().Format("20060102150405")
	businessID := userID + "-biz"

	seedTestUser(t, driver, userID)
	defer cleanupTestUser(driver, userID)

	details, err := repo.GetBusinessDetails(ctx, businessID)
	if err != nil {
		t.Fatalf("GetBusinessDetails failed: %v", err)
	}
	if details == nil {
		t.Fatal("Expected business details, got nil")
	}
	if details.ReviewCount != 150 {
		t.Errorf("Expected review count 150, got %d", details.ReviewCount)
	}

	missing, err := repo.GetBusinessDetails(ctx, businessID+"-missing")
	if err != nil {
		t.Fatalf("GetBusinessDetails failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown business, got %+v", missing)
	}
}

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := "bolt://localhost:7687"
	user := "neo4j"
	password := "password"

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}

// seedTestUser creates one user (clusterId 3) with two Monday-morning reviews
// of one business; ids are derived from userID so parallel runs don't collide.
func seedTestUser(t *testing.T, driver neo4j.DriverWithContext, userID string) {
	t.Helper()
	ctx := context.Background()
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (u:User {user_id: $userID, clusterId: 3})
		CREATE (b:Business {business_id: $businessID, name: 'Test Sushi', avgStar: 4.5, review_count: 150})
		CREATE (c:Category {category_id: $categoryID})
		CREATE (b)-[:IN_CATEGORY]->(c)
		CREATE (u)-[:WROTE]->(:Review {date: '2023-01-02 10:00:00', stars: 5.0, polarity: 0.5, useful: 3, text: 'great'})-[:REVIEWS]->(b)
		CREATE (u)-[:WROTE]->(:Review {date: '2023-01-09 10:00:00', stars: 3.0, polarity: -0.2, useful: 1, text: 'meh'})-[:REVIEWS]->(b)
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"userID":     userID,
		"businessID": userID + "-biz",
		"categoryID": userID + "-cat",
	})
	if err != nil {
		t.Fatalf("Failed to seed test user: %v", err)
	}
}

func cleanupTestUser(driver neo4j.DriverWithContext, userID string) {
	ctx := context.Background()
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, _ = session.Run(ctx, `
		MATCH (u:User {user_id: $userID})
		OPTIONAL MATCH (u)-[:WROTE]->(r:Review)
		DETACH DELETE u, r
	`, map[string]interface{}{"userID": userID})
	_, _ = session.Run(ctx, `
		MATCH (b:Business {business_id: $businessID}) DETACH DELETE b
	`, map[string]interface{}{"businessID": userID + "-biz"})
	_, _ = session.Run(ctx, `
		MATCH (c:Category {category_id: $categoryID}) DETACH DELETE c
	`, map[string]interface{}{"categoryID": userID + "-cat"})
}
