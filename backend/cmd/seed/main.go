// Seeds a small synthetic review graph for local development: a handful of
// users, businesses, categories and reviews with timestamps, star ratings,
// polarity, useful votes, community ids and centrality scores.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"tastegraph/backend/pkg/config"
	"tastegraph/backend/pkg/logger"
)

func main() {
	wipe := flag.Bool("wipe", false, "Delete all existing nodes before seeding")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting graph seeding...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	if *wipe {
		log.Info("Wiping existing graph...")
		if err := runStatements(ctx, driver, []string{"MATCH (n) DETACH DELETE n"}); err != nil {
			log.Fatal("Failed to wipe graph", zap.Error(err))
		}
	}

	log.Info("Creating constraints...")
	if err := createConstraints(ctx, driver); err != nil {
		log.Warn("Failed to create some constraints (may already exist)", zap.Error(err))
	}

	log.Info("Creating indexes...")
	if err := createIndexes(ctx, driver); err != nil {
		log.Warn("Failed to create some indexes (may already exist)", zap.Error(err))
	}

	log.Info("Seeding synthetic data...")
	if err := seedData(ctx, driver); err != nil {
		log.Fatal("Failed to seed data", zap.Error(err))
	}

	log.Info("Seeding complete")
}

func createConstraints(ctx context.Context, driver neo4j.DriverWithContext) error {
	return runStatements(ctx, driver, []string{
		"CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.user_id IS UNIQUE",
		"CREATE CONSTRAINT business_id_unique IF NOT EXISTS FOR (b:Business) REQUIRE b.business_id IS UNIQUE",
		"CREATE CONSTRAINT category_id_unique IF NOT EXISTS FOR (c:Category) REQUIRE c.category_id IS UNIQUE",
	})
}

func createIndexes(ctx context.Context, driver neo4j.DriverWithContext) error {
	// The review date index keeps the point-in-time snapshot subquery usable.
	return runStatements(ctx, driver, []string{
		"CREATE INDEX review_date_index IF NOT EXISTS FOR (r:Review) ON (r.date)",
	})
}

func seedData(ctx context.Context, driver neo4j.DriverWithContext) error {
	statements := []string{
		// Categories, including generic ones that must be filtered out
		`UNWIND ['Restaurants', 'Food', 'Sushi', 'Ramen', 'Thai', 'Coffee & Tea', 'Vegan'] AS id
		 MERGE (:Category {category_id: id})`,

		// Businesses
		`MERGE (b:Business {business_id: 'b-sakura'})
		 SET b.name = 'Sakura Sushi', b.avgStar = 4.5, b.review_count = 240`,
		`MERGE (b:Business {business_id: 'b-noodle'})
		 SET b.name = 'Midnight Noodle Bar', b.avgStar = 4.2, b.review_count = 130`,
		`MERGE (b:Business {business_id: 'b-beanery'})
		 SET b.name = 'The Beanery', b.avgStar = 3.9, b.review_count = 55`,
		`MATCH (b:Business {business_id: 'b-sakura'}), (c:Category {category_id: 'Sushi'}) MERGE (b)-[:IN_CATEGORY]->(c)`,
		`MATCH (b:Business {business_id: 'b-sakura'}), (c:Category {category_id: 'Restaurants'}) MERGE (b)-[:IN_CATEGORY]->(c)`,
		`MATCH (b:Business {business_id: 'b-noodle'}), (c:Category {category_id: 'Ramen'}) MERGE (b)-[:IN_CATEGORY]->(c)`,
		`MATCH (b:Business {business_id: 'b-noodle'}), (c:Category {category_id: 'Restaurants'}) MERGE (b)-[:IN_CATEGORY]->(c)`,
		`MATCH (b:Business {business_id: 'b-beanery'}), (c:Category {category_id: 'Coffee & Tea'}) MERGE (b)-[:IN_CATEGORY]->(c)`,

		// Demo user: two Monday 10:00 sushi reviews, a community id and a
		// centrality score
		`MERGE (u:User {user_id: 'u-demo'})
		 SET u.clusterId = 3, u.pagerankScore = 0.42`,
		`MERGE (u:User {user_id: 'u-friend'})
		 SET u.clusterId = 3, u.pagerankScore = 0.18`,
		`MATCH (a:User {user_id: 'u-demo'}), (b:User {user_id: 'u-friend'}) MERGE (a)-[:FRIENDS]->(b)`,

		`MATCH (u:User {user_id: 'u-demo'}), (b:Business {business_id: 'b-sakura'})
		 MERGE (u)-[:WROTE]->(r:Review {review_id: 'r-demo-1'})-[:REVIEWS]->(b)
		 SET r.date = '2023-01-02 10:00:00', r.stars = 5, r.polarity = 0.5,
		     r.useful = 12, r.text = 'Flawless omakase, the fatty tuna was incredible.'`,
		`MATCH (u:User {user_id: 'u-demo'}), (b:Business {business_id: 'b-sakura'})
		 MERGE (u)-[:WROTE]->(r:Review {review_id: 'r-demo-2'})-[:REVIEWS]->(b)
		 SET r.date = '2023-01-09 10:00:00', r.stars = 3, r.polarity = -0.2,
		     r.useful = 2, r.text = 'Decent nigiri but the miso soup was lukewarm.'`,
		`MATCH (u:User {user_id: 'u-friend'}), (b:Business {business_id: 'b-noodle'})
		 MERGE (u)-[:WROTE]->(r:Review {review_id: 'r-friend-1'})-[:REVIEWS]->(b)
		 SET r.date = '2022-06-18 21:30:00', r.stars = 4, r.polarity = 0.3,
		     r.useful = 5, r.text = 'Rich tonkotsu broth, perfect late-night spot.'`,
	}
	return runStatements(ctx, driver, statements)
}

func runStatements(ctx context.Context, driver neo4j.DriverWithContext, statements []string) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, stmt := range statements {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("statement failed: %w", err)
		}
	}
	return nil
}
