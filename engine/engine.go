package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fly2any/alt-airports-api/airports"
	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/pkg/cache"
	"github.com/fly2any/alt-airports-api/pkg/logger"
)

// ErrInvalidRequest marks a request the engine refuses to evaluate. It is
// surfaced to the caller, unlike upstream store failures which degrade to
// lower-confidence estimates.
var ErrInvalidRequest = errors.New("invalid request")

// Request is a normalized recommendation request. Zero RadiusKm and
// MaxPerSide mean "use the configured defaults".
type Request struct {
	Origin      string
	Destination string
	DateBucket  string
	Cabin       Cabin
	RadiusKm    float64
	MaxPerSide  int
}

// Engine coordinates one recommendation run: candidate discovery on both
// sides, concurrent fare and ground estimation over the bounded pair set,
// ranking, and caching of the ranked result.
type Engine struct {
	repo    *airports.Repository
	locator *Locator
	fares   *FareEstimator
	ground  *GroundEstimator
	ranker  *Ranker
	cache   *cache.Manager // nil-safe; nil means no caching
	live    LiveFareSource // may be nil
	cfg     config.EngineConfig
}

// New wires an engine from its parts. cacheManager and live may be nil.
func New(repo *airports.Repository, fares *FareEstimator, cacheManager *cache.Manager, live LiveFareSource, cfg config.EngineConfig) *Engine {
	return &Engine{
		repo:    repo,
		locator: NewLocator(repo),
		fares:   fares,
		ground:  NewGroundEstimator(cfg),
		ranker:  NewRanker(cfg),
		cache:   cacheManager,
		live:    live,
		cfg:     cfg,
	}
}

// Recommend produces a ranked recommendation for the request. Identical
// requests within the cache TTL return the cached result with CacheHit set.
// The run is bounded by the configured request deadline; pairs that were not
// evaluated in time are simply absent from the ranking.
func (e *Engine) Recommend(ctx context.Context, req Request) (Recommendation, error) {
	req, err := e.normalize(req)
	if err != nil {
		return Recommendation{}, err
	}
	origin, err := e.repo.FindByCode(req.Origin)
	if err != nil {
		return Recommendation{}, fmt.Errorf("origin %s: %w", req.Origin, err)
	}
	destination, err := e.repo.FindByCode(req.Destination)
	if err != nil {
		return Recommendation{}, fmt.Errorf("destination %s: %w", req.Destination, err)
	}

	key := cache.RecommendationKey(origin.Code, destination.Code, req.DateBucket, string(req.Cabin), req.RadiusKm, req.MaxPerSide)
	var cached Recommendation
	if err := e.cache.GetJSON(ctx, key, &cached); err == nil {
		cached.CacheHit = true
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestDeadline)
	defer cancel()

	originCands := e.locator.FindCandidates(origin, req.RadiusKm, req.MaxPerSide)
	destCands := e.locator.FindCandidates(destination, req.RadiusKm, req.MaxPerSide)

	baseline := e.evaluateBaseline(ctx, origin, destination, req)
	pairs := e.buildPairs(origin, destination, originCands, destCands)
	evaluated := e.evaluatePairs(ctx, origin, destination, req, pairs)

	rec := e.ranker.Rank(baseline, evaluated)
	if deadlineExceeded(ctx) {
		logger.WithFields(map[string]interface{}{
			"origin":      origin.Code,
			"destination": destination.Code,
			"evaluated":   len(evaluated),
			"requested":   len(pairs),
		}).Warn("Recommendation deadline hit, returning partial ranking")
	} else {
		// Partial results are not worth pinning in the cache for a full TTL.
		e.cache.SetJSON(context.WithoutCancel(ctx), key, rec, e.cfg.CacheTTL)
	}
	return rec, nil
}

// Nearby exposes candidate discovery directly: substitute airports around
// one anchor, resolved to full reference records.
func (e *Engine) Nearby(code string, radiusKm float64, maxResults int) (airports.Airport, []Candidate, error) {
	anchor, err := e.repo.FindByCode(code)
	if err != nil {
		return airports.Airport{}, nil, err
	}
	if radiusKm <= 0 {
		radiusKm = e.cfg.DefaultRadiusKm
	}
	if radiusKm > e.cfg.MaxRadiusKm {
		radiusKm = e.cfg.MaxRadiusKm
	}
	if maxResults <= 0 {
		maxResults = e.cfg.DefaultMaxPerSide
	}
	if maxResults > e.cfg.MaxPerSide {
		maxResults = e.cfg.MaxPerSide
	}
	return anchor, e.locator.FindCandidates(anchor, radiusKm, maxResults), nil
}

func (e *Engine) normalize(req Request) (Request, error) {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))
	if len(req.Origin) != 3 || len(req.Destination) != 3 {
		return req, fmt.Errorf("%w: airport codes must be 3 letters", ErrInvalidRequest)
	}
	if req.Origin == req.Destination {
		return req, fmt.Errorf("%w: origin and destination are the same airport", ErrInvalidRequest)
	}

	bucket, err := ParseDateBucket(req.DateBucket)
	if err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	req.DateBucket = bucket

	if req.Cabin == "" {
		req.Cabin = CabinEconomy
	}
	if req.RadiusKm <= 0 {
		req.RadiusKm = e.cfg.DefaultRadiusKm
	}
	if req.RadiusKm > e.cfg.MaxRadiusKm {
		req.RadiusKm = e.cfg.MaxRadiusKm
	}
	if req.MaxPerSide <= 0 {
		req.MaxPerSide = e.cfg.DefaultMaxPerSide
	}
	if req.MaxPerSide > e.cfg.MaxPerSide {
		req.MaxPerSide = e.cfg.MaxPerSide
	}
	return req, nil
}

// evaluateBaseline prices the requested pair itself. When a live fare source
// is configured and answers in time, its quote replaces the estimate.
func (e *Engine) evaluateBaseline(ctx context.Context, origin, destination airports.Airport, req Request) evaluatedPair {
	fare := e.fares.Estimate(ctx, origin, destination, req.DateBucket, req.Cabin)
	if e.live != nil {
		if quote, err := e.live.Quote(ctx, origin.Code, destination.Code, req.DateBucket, req.Cabin); err == nil {
			fare = quote
		} else {
			logger.Debug("Live fare quote failed, keeping estimate", "error", err)
		}
	}
	return evaluatedPair{
		origin:      anchorCandidate(origin),
		destination: anchorCandidate(destination),
		fare:        fare,
	}
}

// pairSpec names one substitution to evaluate. A side equal to the anchor
// means "no substitution on that side".
type pairSpec struct {
	origin      Candidate
	destination Candidate
}

// buildPairs crosses the candidate sets, including the no-substitution
// option on each side, skips the baseline pair itself, and caps the result
// at the configured pair budget. Candidates come in sorted by distance, so
// truncation keeps the nearest substitutions.
func (e *Engine) buildPairs(origin, destination airports.Airport, originCands, destCands []Candidate) []pairSpec {
	oSide := append([]Candidate{anchorCandidate(origin)}, originCands...)
	dSide := append([]Candidate{anchorCandidate(destination)}, destCands...)

	var pairs []pairSpec
	for _, o := range oSide {
		for _, d := range dSide {
			if o.Code == origin.Code && d.Code == destination.Code {
				continue // that is the baseline
			}
			if o.Code == d.Code {
				continue
			}
			pairs = append(pairs, pairSpec{origin: o, destination: d})
		}
	}
	if len(pairs) > e.cfg.MaxPairs {
		pairs = pairs[:e.cfg.MaxPairs]
	}
	return pairs
}

// evaluatePairs runs fare and ground estimation for every pair through a
// bounded worker pool. Workers stop picking up pairs once the context is
// done; whatever finished by then is returned.
func (e *Engine) evaluatePairs(ctx context.Context, origin, destination airports.Airport, req Request, pairs []pairSpec) []evaluatedPair {
	if len(pairs) == 0 {
		return nil
	}

	workers := e.cfg.WorkerPoolSize
	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	jobs := make(chan pairSpec)
	results := make(chan evaluatedPair, len(pairs))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if ctx.Err() != nil {
					return
				}
				results <- e.evaluatePair(ctx, origin, destination, req, p)
			}
		}()
	}

feed:
	for _, p := range pairs {
		select {
		case jobs <- p:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make([]evaluatedPair, 0, len(pairs))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func (e *Engine) evaluatePair(ctx context.Context, origin, destination airports.Airport, req Request, p pairSpec) evaluatedPair {
	// Substituted codes always resolve: candidates came from the same
	// repository moments ago.
	oAirport, dAirport := origin, destination
	if p.origin.Code != origin.Code {
		oAirport, _ = e.repo.FindByCode(p.origin.Code)
	}
	if p.destination.Code != destination.Code {
		dAirport, _ = e.repo.FindByCode(p.destination.Code)
	}

	ev := evaluatedPair{
		origin:      p.origin,
		destination: p.destination,
		fare:        e.fares.Estimate(ctx, oAirport, dAirport, req.DateBucket, req.Cabin),
	}
	if p.origin.Code != origin.Code {
		ev.originGround = e.ground.EstimateKm(p.origin.DistanceKm, e.railAvailable(oAirport))
	}
	if p.destination.Code != destination.Code {
		ev.destGround = e.ground.EstimateKm(p.destination.DistanceKm, e.railAvailable(dAirport))
	}
	return ev
}

// railAvailable decides whether the area around an airport has a usable rail
// link. Hubs and high-traffic airports qualify.
func (e *Engine) railAvailable(a airports.Airport) bool {
	return a.Hub || float64(a.Popularity) >= e.cfg.RailAvailability
}

func anchorCandidate(a airports.Airport) Candidate {
	return Candidate{Code: a.Code}
}

func deadlineExceeded(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// WarmRoute evaluates and caches one route pair for the background warmer.
func (e *Engine) WarmRoute(ctx context.Context, origin, destination string) error {
	req := Request{
		Origin:      origin,
		Destination: destination,
		DateBucket:  DateBucket(time.Now().AddDate(0, 0, 7)),
	}
	_, err := e.Recommend(ctx, req)
	return err
}
