package gateway

import (
	"sort"
	"strings"

	"github.com/atlasmesh/geocoder/internal/transport/grpcapi/pb"
)

// ScoredRecord pairs a record with its originating shard and computed
// relevance.
type ScoredRecord struct {
	Record  *pb.AddressRecord
	ShardID int
	Score   float64
}

// isDuplicate reports whether two records describe the same address:
// number, street, city, and postcode all byte-equal. Unit is excluded on
// purpose; it differs in formatting between sources.
func isDuplicate(a, b *pb.AddressRecord) bool {
	return a.GetNumber() == b.GetNumber() &&
		a.GetStreet() == b.GetStreet() &&
		a.GetCity() == b.GetCity() &&
		a.GetPostcode() == b.GetPostcode()
}

// relevanceScore rates a record against the original (un-normalized) query
// terms. Base score is the fraction of terms found in any searchable field;
// per-term bonuses weight street matches highest, then city, number, and
// postcode, with prefix positions worth extra. Completeness of the address
// adds 2 points per populated field.
func relevanceScore(rec *pb.AddressRecord, terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}

	street := rec.GetStreet()
	city := rec.GetCity()
	postcode := rec.GetPostcode()
	number := rec.GetNumber()

	matched := 0
	for _, term := range terms {
		if strings.Contains(street, term) || strings.Contains(city, term) ||
			strings.Contains(postcode, term) || strings.Contains(number, term) {
			matched++
		}
	}

	score := float64(matched) / float64(len(terms)) * 100

	for _, term := range terms {
		if strings.Contains(street, term) {
			if strings.HasPrefix(street, term) {
				score += 15
			} else {
				score += 10
			}
		}
		if strings.Contains(city, term) {
			if strings.HasPrefix(city, term) {
				score += 8
			} else {
				score += 5
			}
		}
		if strings.Contains(postcode, term) {
			score += 3
		}
		if strings.Contains(number, term) {
			score += 5
		}
	}

	completeness := 0
	for _, f := range []string{number, street, rec.GetUnit(), city, postcode} {
		if f != "" {
			completeness++
		}
	}
	score += float64(completeness) * 2

	return score
}

// aggregateAndRank merges the records of successful shards, drops
// cross-shard duplicates (keeping the higher score; ties keep the
// incumbent), sorts by score descending, and truncates to maxResults.
func aggregateAndRank(results []ShardResult, terms []string, maxResults int) []ScoredRecord {
	var scored []ScoredRecord

	for _, res := range results {
		if !res.Success {
			continue
		}
		for _, rec := range res.Records {
			score := relevanceScore(rec, terms)

			dup := false
			for i := range scored {
				if isDuplicate(scored[i].Record, rec) {
					dup = true
					if score > scored[i].Score {
						scored[i] = ScoredRecord{Record: rec, ShardID: res.ShardID, Score: score}
					}
					break
				}
			}
			if !dup {
				scored = append(scored, ScoredRecord{Record: rec, ShardID: res.ShardID, Score: score})
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
