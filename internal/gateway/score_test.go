package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasmesh/geocoder/internal/transport/grpcapi/pb"
)

func TestIsDuplicate(t *testing.T) {
	a := wireRecord("123", "MAIN STREET", "APT 1", "SEATTLE", "98101")
	b := wireRecord("123", "MAIN STREET", "UNIT 4B", "SEATTLE", "98101")
	c := wireRecord("123", "MAIN STREET", "", "TACOMA", "98101")

	assert.True(t, isDuplicate(a, b), "unit is excluded from the duplicate key")
	assert.False(t, isDuplicate(a, c), "different city is not a duplicate")
}

func TestRelevanceScore(t *testing.T) {
	rec := wireRecord("611", "3RD ST", "", "STEILACOOM", "98388")

	t.Run("full street prefix match", func(t *testing.T) {
		// matched=1 of 1 -> 100; street prefix -> +15; completeness 4 -> +8.
		got := relevanceScore(rec, []string{"3RD"})
		assert.InDelta(t, 123.0, got, 1e-9)
	})

	t.Run("interior street match", func(t *testing.T) {
		// "ST" appears in street (not prefix, +10), in city prefix (+8),
		// matched 1/1 -> 100, completeness +8.
		got := relevanceScore(rec, []string{"ST"})
		assert.InDelta(t, 126.0, got, 1e-9)
	})

	t.Run("postcode and number", func(t *testing.T) {
		// matched 2/2 -> 100; postcode +3; number +5; completeness +8.
		got := relevanceScore(rec, []string{"98388", "611"})
		assert.InDelta(t, 116.0, got, 1e-9)
	})

	t.Run("no match scores completeness only", func(t *testing.T) {
		got := relevanceScore(rec, []string{"ZEBRA"})
		assert.InDelta(t, 8.0, got, 1e-9)
	})

	t.Run("no re-normalization", func(t *testing.T) {
		// Scoring compares raw bytes; lowercase query does not match the
		// uppercase record.
		got := relevanceScore(rec, []string{"3rd"})
		assert.InDelta(t, 8.0, got, 1e-9)
	})

	t.Run("empty terms", func(t *testing.T) {
		assert.Zero(t, relevanceScore(rec, nil))
	})
}

func TestAggregateAndRankDeduplicates(t *testing.T) {
	// Same (number, street, city, postcode) from both shards, units differ.
	shard0 := ShardResult{ShardID: 0, Success: true, Records: []*pb.AddressRecord{
		wireRecord("123", "MAIN STREET", "A", "SEATTLE", "98101"),
	}}
	shard1 := ShardResult{ShardID: 1, Success: true, Records: []*pb.AddressRecord{
		wireRecord("123", "MAIN STREET", "B", "SEATTLE", "98101"),
	}}

	ranked := aggregateAndRank([]ShardResult{shard0, shard1}, []string{"MAIN"}, MaxResults)
	require.Len(t, ranked, 1)
	// Equal scores: the incumbent from shard 0 wins.
	assert.Equal(t, 0, ranked[0].ShardID)
	assert.Equal(t, "A", ranked[0].Record.GetUnit())
}

func TestAggregateAndRankKeepsHigherScoredDuplicate(t *testing.T) {
	low := wireRecord("123", "MAIN STREET", "", "SEATTLE", "98101")
	high := &pb.AddressRecord{
		Hash: "bb", Number: "123", Street: "MAIN STREET", City: "SEATTLE", Postcode: "98101",
		Unit: "PENTHOUSE", // extra completeness point pushes the score up
	}

	ranked := aggregateAndRank([]ShardResult{
		{ShardID: 0, Success: true, Records: []*pb.AddressRecord{low}},
		{ShardID: 1, Success: true, Records: []*pb.AddressRecord{high}},
	}, []string{"MAIN"}, MaxResults)

	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ShardID)
	assert.Equal(t, "PENTHOUSE", ranked[0].Record.GetUnit())
}

func TestAggregateAndRankSkipsFailedShards(t *testing.T) {
	ranked := aggregateAndRank([]ShardResult{
		{ShardID: 0, Success: false, Err: "down", Records: []*pb.AddressRecord{
			wireRecord("1", "GHOST ST", "", "NOWHERE", "00000"),
		}},
		{ShardID: 1, Success: true, Records: []*pb.AddressRecord{
			wireRecord("2", "REAL ST", "", "SEATTLE", "98101"),
		}},
	}, []string{"REAL"}, MaxResults)

	require.Len(t, ranked, 1)
	assert.Equal(t, "REAL ST", ranked[0].Record.GetStreet())
}

func TestAggregateAndRankTruncatesToTopK(t *testing.T) {
	var records []*pb.AddressRecord
	for _, street := range []string{"A ST", "B ST", "C ST", "D ST", "E ST", "F ST", "G ST"} {
		records = append(records, wireRecord("1", street, "", "CITY", "11111"))
	}

	ranked := aggregateAndRank([]ShardResult{
		{ShardID: 0, Success: true, Records: records},
	}, []string{"CITY"}, MaxResults)

	assert.Len(t, ranked, MaxResults)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}
