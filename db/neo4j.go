package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/fly2any/alt-airports-api/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jFareStore reads fare aggregates from the price-point graph, where
// routes are (:Airport)-[:PRICE_POINT]->(:Airport) relationships carrying
// observed prices.
type Neo4jFareStore struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jFareStore opens a Neo4j-backed fare-history store.
func NewNeo4jFareStore(cfg config.Neo4jConfig) (*Neo4jFareStore, error) {
	uri := strings.TrimSpace(cfg.URI)
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}
	return &Neo4jFareStore{driver: driver}, nil
}

// AggregateFare implements FareHistoryStore.
func (s *Neo4jFareStore) AggregateFare(ctx context.Context, origin, destination, dateBucket, cabin string) (FareAggregate, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (o:Airport {code: $origin})-[p:PRICE_POINT]->(d:Airport {code: $destination})
		WHERE p.date_bucket = $bucket AND p.cabin = $cabin
		RETURN percentileCont(p.price, 0.5) AS median,
		       avg(p.price) AS mean,
		       count(p) AS samples`,
		map[string]interface{}{
			"origin":      origin,
			"destination": destination,
			"bucket":      dateBucket,
			"cabin":       cabin,
		})
	if err != nil {
		return FareAggregate{}, fmt.Errorf("fare aggregate query: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return FareAggregate{}, ErrNoData
	}

	samples, _ := record.Get("samples")
	count, _ := samples.(int64)
	if count == 0 {
		return FareAggregate{}, ErrNoData
	}

	median, _ := record.Get("median")
	mean, _ := record.Get("mean")
	medianVal, _ := median.(float64)
	meanVal, _ := mean.(float64)

	return FareAggregate{
		Median:     medianVal,
		Mean:       meanVal,
		SampleSize: int(count),
		Currency:   "USD",
	}, nil
}

// Close releases the underlying driver.
func (s *Neo4jFareStore) Close() error {
	return s.driver.Close(context.Background())
}
