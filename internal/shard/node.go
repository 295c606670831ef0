// Package shard composes the loader, the normalizer, and the two indexes
// into one search node. A node owns a disjoint partition of the address
// records: it loads its data file once at initialization, after which every
// exposed operation is a pure read and safe for concurrent use.
package shard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/address"
	"github.com/atlasmesh/geocoder/internal/index/forward"
	"github.com/atlasmesh/geocoder/internal/index/radix"
	"github.com/atlasmesh/geocoder/internal/loader"
	"github.com/atlasmesh/geocoder/internal/metrics"
	"github.com/atlasmesh/geocoder/internal/normalize"
)

// ErrNotInitialized is returned by Search when Initialize has not completed
// successfully. It lets callers distinguish a degraded node from an empty
// match.
var ErrNotInitialized = errors.New("shard not initialized")

// ErrNoRecords is returned by Initialize when the data file yielded zero
// valid rows. A node in this state must not serve traffic.
var ErrNoRecords = errors.New("no valid records loaded")

// Statistics captures the node state at the end of initialization.
type Statistics struct {
	TotalRecords     int
	RadixTreeMemory  uint64
	ForwardIndexSize uint64
	LoadTime         time.Duration
}

// Node is one shard of the address dataset.
type Node struct {
	shardID  int
	dataPath string
	log      *zap.Logger

	radix   *radix.Tree
	forward *forward.Store

	initialized bool
	stats       Statistics
}

// New constructs a node with empty indexes. Call Initialize before serving.
func New(shardID int, dataPath string, log *zap.Logger) *Node {
	return &Node{
		shardID:  shardID,
		dataPath: dataPath,
		log:      log.With(zap.Int("shard_id", shardID)),
		radix:    radix.New(),
		forward:  forward.New(),
	}
}

// ShardID returns the node's shard identifier.
func (n *Node) ShardID() int {
	return n.shardID
}

// Initialize loads the data file, builds both indexes, and captures
// statistics. It fails when the file cannot be read or no row is valid.
func (n *Node) Initialize() error {
	start := time.Now()
	n.log.Info("loading shard data", zap.String("path", n.dataPath))

	res, err := loader.ParseFile(n.dataPath, n.log)
	if err != nil {
		return err
	}
	if res.Accepted == 0 {
		return fmt.Errorf("%w from %s (%d rows rejected)", ErrNoRecords, n.dataPath, res.Rejected)
	}

	for _, rec := range res.Records {
		n.indexRecord(rec)
	}

	n.stats = Statistics{
		TotalRecords:     res.Accepted,
		RadixTreeMemory:  uint64(n.radix.MemoryUsage()),
		ForwardIndexSize: uint64(n.forward.StorageSize()),
		LoadTime:         time.Since(start),
	}
	n.initialized = true

	metrics.ShardRecordsLoaded.WithLabelValues(strconv.Itoa(n.shardID)).Set(float64(res.Accepted))
	n.log.Info("shard initialized",
		zap.Int("records", n.stats.TotalRecords),
		zap.Int("rejected_rows", res.Rejected),
		zap.Uint64("radix_memory_bytes", n.stats.RadixTreeMemory),
		zap.Uint64("forward_size_bytes", n.stats.ForwardIndexSize),
		zap.Duration("load_time", n.stats.LoadTime),
	)
	return nil
}

// indexRecord applies the indexing policy for one record: the forward store
// entry, the composite keys used by structured queries, and each individual
// field. The street field is indexed both as-is and with its suffix
// abbreviation expanded, so "3RD ST" is reachable as "3RD STREET" too.
func (n *Node) indexRecord(rec address.Record) {
	id := rec.Hash
	n.forward.Insert(id, rec)

	for _, key := range compositeKeys(rec) {
		n.radix.Insert(key, id)
	}

	if rec.Street != "" {
		street := normalize.Normalize(rec.Street)
		n.radix.Insert(street, id)
		if expanded := normalize.ExpandStreetSuffix(rec.Street); expanded != street {
			n.radix.Insert(expanded, id)
		}
	}
	if rec.City != "" {
		n.radix.Insert(normalize.Normalize(rec.City), id)
	}
	if rec.Postcode != "" {
		n.radix.Insert(normalize.Normalize(rec.Postcode), id)
	}
	if rec.Number != "" {
		n.radix.Insert(normalize.Normalize(rec.Number), id)
	}
}

// compositeKeys builds the structured-query keys for a record, most general
// first: "NUMBER STREET", "NUMBER STREET CITY", "NUMBER STREET CITY POSTCODE".
func compositeKeys(rec address.Record) []string {
	number := normalize.Normalize(rec.Number)
	street := normalize.Normalize(rec.Street)
	city := normalize.Normalize(rec.City)
	postcode := normalize.Normalize(rec.Postcode)

	if number == "" || street == "" {
		return nil
	}

	keys := []string{number + " " + street}
	if city != "" {
		keys = append(keys, number+" "+street+" "+city)
		if postcode != "" {
			keys = append(keys, number+" "+street+" "+city+" "+postcode)
		}
	}
	return keys
}

// Search resolves query terms to full records. Every term must prefix-match
// some indexed field of a record for it to be returned. A single term
// containing a comma is treated as a structured address query.
func (n *Node) Search(terms []string) ([]address.Record, error) {
	if !n.initialized {
		return nil, ErrNotInitialized
	}
	if len(terms) == 0 {
		return nil, nil
	}

	timer := time.Now()
	defer func() {
		metrics.ShardSearchDuration.
			WithLabelValues(strconv.Itoa(n.shardID)).
			Observe(time.Since(timer).Seconds())
	}()

	ids := n.matchingIDs(terms)

	results := make([]address.Record, 0, len(ids))
	for _, id := range ids {
		rec, ok := n.forward.Get(id)
		if !ok {
			metrics.IndexInconsistencyTotal.WithLabelValues(strconv.Itoa(n.shardID)).Inc()
			n.log.Error("index inconsistency: id in radix tree but not in forward store",
				zap.Uint64("id", id))
			continue
		}
		results = append(results, rec)
	}
	return results, nil
}

func (n *Node) matchingIDs(terms []string) []uint64 {
	if len(terms) == 1 && strings.ContainsRune(terms[0], ',') {
		return n.structuredSearch(terms[0])
	}

	first := n.radix.Search(normalize.Normalize(terms[0]))
	if len(first) == 0 || len(terms) == 1 {
		return first
	}

	current := make(map[uint64]struct{}, len(first))
	for _, id := range first {
		current[id] = struct{}{}
	}

	for _, term := range terms[1:] {
		matched := n.radix.Search(normalize.Normalize(term))
		next := make(map[uint64]struct{}, len(matched))
		for _, id := range matched {
			if _, ok := current[id]; ok {
				next[id] = struct{}{}
			}
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}

	// Preserve the first term's traversal order for determinism.
	ids := make([]uint64, 0, len(current))
	for _, id := range first {
		if _, ok := current[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// structuredSearch parses "number street[, city[, postcode]]" and probes the
// composite keys from most to least specific, returning the first non-empty
// result set.
func (n *Node) structuredSearch(query string) []uint64 {
	parsed := parseStructuredQuery(query)

	number := normalize.Normalize(parsed.number)
	street := normalize.Normalize(parsed.street)
	city := normalize.Normalize(parsed.city)
	postcode := normalize.Normalize(parsed.postcode)

	if number == "" || street == "" {
		return nil
	}

	var keys []string
	if city != "" && postcode != "" {
		keys = append(keys, number+" "+street+" "+city+" "+postcode)
	}
	if city != "" {
		keys = append(keys, number+" "+street+" "+city)
	}
	keys = append(keys, number+" "+street)

	for _, key := range keys {
		if ids := n.radix.Search(key); len(ids) > 0 {
			n.log.Debug("structured query matched", zap.String("key", key), zap.Int("ids", len(ids)))
			return ids
		}
	}
	return nil
}

type parsedAddress struct {
	number   string
	street   string
	city     string
	postcode string
}

// parseStructuredQuery splits on commas: the first part holds "number
// street", the second the city, the third the postcode.
func parseStructuredQuery(query string) parsedAddress {
	var parsed parsedAddress

	parts := strings.Split(query, ",")
	trimmed := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	parts = trimmed
	if len(parts) == 0 {
		return parsed
	}

	tokens := strings.Fields(parts[0])
	if len(tokens) > 0 {
		parsed.number = tokens[0]
		parsed.street = strings.Join(tokens[1:], " ")
	}
	if len(parts) >= 2 {
		parsed.city = parts[1]
	}
	if len(parts) >= 3 {
		parsed.postcode = parts[2]
	}
	return parsed
}

// Statistics returns the counters captured at the end of Initialize.
func (n *Node) Statistics() Statistics {
	return n.stats
}
