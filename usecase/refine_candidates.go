package usecase

import (
	"sort"

	"feed-ranker/domain"
)

const (
	rerankFactor      = 3
	diversityKeyLimit = 2
)

// RefineCandidates turns a score-ordered candidate batch into the final
// page: seen-filtering, first-wins dedup, re-rank, diversification and
// backfill. The result is deterministic for identical inputs and never
// exceeds requestedSize.
func RefineCandidates(candidates []domain.Candidate, seenIDs map[string]struct{}, requestedSize int) []domain.RankedFeedItem {
	deduped := dedupCandidates(candidates, seenIDs)

	// Stable sort keeps retrieval order for equal scores, preserving the
	// first-seen-wins contract established during dedup.
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})
	if max := rerankFactor * requestedSize; len(deduped) > max {
		deduped = deduped[:max]
	}

	admitted := diversify(deduped, requestedSize)
	admitted = backfill(deduped, admitted, requestedSize)

	items := make([]domain.RankedFeedItem, 0, len(admitted))
	for _, candidate := range admitted {
		items = append(items, domain.NewRankedFeedItem(candidate))
	}
	return items
}

// dedupCandidates drops already-seen ids and keeps the first occurrence of
// each remaining id. It runs before re-ranking on purpose: retrieval order
// is score-descending, so the first occurrence is the best-scored one.
func dedupCandidates(candidates []domain.Candidate, seenIDs map[string]struct{}) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(candidates))
	kept := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, seen := seenIDs[candidate.ID]; seen {
			continue
		}
		if _, duplicate := kept[candidate.ID]; duplicate {
			continue
		}
		kept[candidate.ID] = struct{}{}
		out = append(out, candidate)
	}
	return out
}

// diversify greedily admits candidates while no author id and no leading
// tag exceeds the per-key limit.
func diversify(candidates []domain.Candidate, requestedSize int) []domain.Candidate {
	admitted := make([]domain.Candidate, 0, requestedSize)
	byAuthor := make(map[string]int)
	byLeadTag := make(map[string]int)

	for _, candidate := range candidates {
		if len(admitted) == requestedSize {
			break
		}
		if byAuthor[candidate.AuthorID] >= diversityKeyLimit {
			continue
		}
		if byLeadTag[candidate.LeadTag()] >= diversityKeyLimit {
			continue
		}
		byAuthor[candidate.AuthorID]++
		byLeadTag[candidate.LeadTag()]++
		admitted = append(admitted, candidate)
	}
	return admitted
}

// backfill appends skipped candidates in re-ranked order when diversity
// constraints left the page short. A full page is a hard requirement;
// diversity is only a preference.
func backfill(candidates, admitted []domain.Candidate, requestedSize int) []domain.Candidate {
	if len(admitted) >= requestedSize {
		return admitted
	}

	taken := make(map[string]struct{}, len(admitted))
	for _, candidate := range admitted {
		taken[candidate.ID] = struct{}{}
	}
	for _, candidate := range candidates {
		if len(admitted) == requestedSize {
			break
		}
		if _, ok := taken[candidate.ID]; ok {
			continue
		}
		taken[candidate.ID] = struct{}{}
		admitted = append(admitted, candidate)
	}
	return admitted
}
