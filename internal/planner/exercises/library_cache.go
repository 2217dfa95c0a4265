package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/telemetry/metrics"
	"github.com/2beens/gymplans/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	exercisesCountKey    = []byte("library::exercises::count")
	muscleGroupsCacheKey = []byte("library::muscle_groups")
)

const (
	// freecache entry overhead on top of key and value
	entryHeaderSize = 24
	// freecache silently grows smaller caches to this size
	minCacheBytes = 512 * 1024
)

func exercisesChunkKey(n int) []byte {
	return []byte("library::exercises::" + strconv.Itoa(n))
}

//go:generate mockgen -source=$GOFILE -destination=library_cache_mocks_test.go -package=exercises_test

type librarySource interface {
	ListExercises(ctx context.Context) ([]planner.Exercise, error)
	ListMuscleGroups(ctx context.Context) ([]planner.MuscleGroup, error)
}

// LibraryCache keeps a short-lived snapshot of the exercise library and the muscle groups,
// so autocomplete does not hit postgres on every keystroke.
// Only the input snapshot is cached, never search results.
// freecache refuses entries above 1/1024 of its size, so the exercises snapshot is stored
// in chunks under library::exercises::<n>, with the chunk count stored last.
type LibraryCache struct {
	cache          *freecache.Cache
	maxEntryBytes  int
	ttlSeconds     int
	source         librarySource
	metricsManager *metrics.Manager

	// generation is bumped on every invalidation; a snapshot loaded
	// under an older generation is not stored
	mu         sync.Mutex
	generation uint64
}

func NewLibraryCache(
	source librarySource,
	sizeMB int,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *LibraryCache {
	sizeBytes := max(sizeMB*1024*1024, minCacheBytes)
	return &LibraryCache{
		cache:          freecache.NewCache(sizeBytes),
		maxEntryBytes:  sizeBytes / 1024,
		ttlSeconds:     int(ttl.Seconds()),
		source:         source,
		metricsManager: metricsManager,
	}
}

func (c *LibraryCache) Exercises(ctx context.Context) (_ []planner.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "library_cache.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercises, ok := c.getExercises(); ok {
		c.count("hit")
		span.SetAttributes(attribute.Bool("from-cache", true))
		return exercises, nil
	}
	c.count("miss")

	gen := c.currentGeneration()
	exercises, err := c.source.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	c.setExercises(gen, exercises)

	return exercises, nil
}

func (c *LibraryCache) MuscleGroups(ctx context.Context) (_ []planner.MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "library_cache.muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var groups []planner.MuscleGroup
	if c.get(muscleGroupsCacheKey, &groups) {
		c.count("hit")
		span.SetAttributes(attribute.Bool("from-cache", true))
		return groups, nil
	}
	c.count("miss")

	groups, err = c.source.ListMuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load muscle groups: %w", err)
	}
	if raw, ok := c.marshal(muscleGroupsCacheKey, groups); ok {
		c.set(muscleGroupsCacheKey, raw)
	}

	return groups, nil
}

// InvalidateExercises drops the exercises snapshot, e.g. after a new exercise is added.
// A load that started before the call will not store its now stale snapshot.
func (c *LibraryCache) InvalidateExercises() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	// chunks without a count are unreachable and expire with the ttl
	c.cache.Del(exercisesCountKey)
}

func (c *LibraryCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *LibraryCache) getExercises() ([]planner.Exercise, bool) {
	var count int
	if !c.get(exercisesCountKey, &count) {
		return nil, false
	}

	exercises := make([]planner.Exercise, 0)
	for n := 0; n < count; n++ {
		var chunk []planner.Exercise
		if !c.get(exercisesChunkKey(n), &chunk) {
			return nil, false
		}
		exercises = append(exercises, chunk...)
	}
	return exercises, true
}

func (c *LibraryCache) setExercises(gen uint64, exercises []planner.Exercise) {
	chunks, ok := c.chunkExercises(exercises)
	if !ok {
		return
	}
	countRaw, ok := c.marshal(exercisesCountKey, len(chunks))
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debugln("library cache: exercises invalidated while loading, snapshot not stored")
		return
	}
	for n, raw := range chunks {
		if !c.set(exercisesChunkKey(n), raw) {
			return
		}
	}
	c.set(exercisesCountKey, countRaw)
}

// chunkExercises splits the snapshot into marshalled chunks that each fit a freecache entry.
func (c *LibraryCache) chunkExercises(exercises []planner.Exercise) ([][]byte, bool) {
	// longest chunk key the snapshot can produce
	keyLen := len(exercisesChunkKey(len(exercises)))

	var split func(part []planner.Exercise) ([][]byte, bool)
	split = func(part []planner.Exercise) ([][]byte, bool) {
		raw, err := json.Marshal(part)
		if err != nil {
			log.Errorf("library cache marshal exercises: %s", err)
			return nil, false
		}
		if keyLen+len(raw)+entryHeaderSize <= c.maxEntryBytes {
			return [][]byte{raw}, true
		}
		if len(part) <= 1 {
			log.Warnf("library cache: single exercise takes %d bytes, above the %d bytes entry limit", len(raw), c.maxEntryBytes)
			return nil, false
		}

		half := len(part) / 2
		left, ok := split(part[:half])
		if !ok {
			return nil, false
		}
		right, ok := split(part[half:])
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	}

	return split(exercises)
}

func (c *LibraryCache) get(key []byte, dest any) bool {
	raw, err := c.cache.Get(key)
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("library cache get [%s]: %s", key, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Errorf("library cache unmarshal [%s]: %s", key, err)
		return false
	}

	return true
}

func (c *LibraryCache) marshal(key []byte, value any) ([]byte, bool) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Errorf("library cache marshal [%s]: %s", key, err)
		return nil, false
	}
	return raw, true
}

func (c *LibraryCache) set(key, raw []byte) bool {
	if err := c.cache.Set(key, raw, c.ttlSeconds); err != nil {
		log.Warnf("library cache set [%s], %d bytes: %s", key, len(raw), err)
		return false
	}
	return true
}

func (c *LibraryCache) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterLibraryCache.WithLabelValues(result).Inc()
	}
}
