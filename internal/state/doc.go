// Package state holds the client-side copy of backend entities.
//
// # Overview
//
// Each screen keeps the list it last fetched in a Cache. After a successful
// write the cache is brought up to date in one of two ways, chosen per
// screen:
//
//   - RefetchAfterWrite: issue List again and Replace the cache
//   - PatchLocally: write the returned entity straight into the cache
//
// A confirmed delete always calls Remove, whatever the strategy.
//
// # Request Tokens
//
// Network calls run concurrently with the UI, so results can arrive out of
// order. Tokens hands out a monotonically increasing token per slot ("list",
// "singleton", or an entity id). A result is applied only while its token is
// still the latest for its slot:
//
//	tok := tokens.Issue(state.SlotList)
//	// ... later, when the list arrives
//	if tokens.Current(state.SlotList, tok) {
//		cache.Replace(items)
//	}
//
// A successful write calls Invalidate(SlotList) so a fetch issued before the
// write cannot overwrite the post-write cache.
//
// # Derived Views
//
// FilterSponsorsByLevel and Pager never mutate the cache. Pager pages are
// 1-indexed and clamped to [1, TotalPages]; requests outside that range are
// ignored. An empty list has a single empty page.
//
// # Copies
//
// Snapshot and Find return deep copies. A draft loaded from the cache can be
// edited freely and discarded without the cached entity changing.
package state
