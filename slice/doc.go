// Package slice provides a growable buffer plus aliasing views over it:
// windows with independent length and capacity which share, but do not
// jointly own, one allocation.
//
// # Ownership
//
// Exactly one view per buffer is owning: the one returned by Make, New
// or MakeMapped. Only the owner may perform structural operations (Grow,
// Free). Every view produced by Ref or Reslice is non-owning and may
// only read and write element contents; such writes are visible through
// every sibling view, since all views share one buffer. Free on a
// non-owning view is always a no-op, so passing views by value cannot
// cause a double free.
//
// # Generations
//
// The buffer lives in an arena carrying a generation counter. Every
// relocating operation — an owner's Grow, or Free — bumps the
// generation. A view created against an earlier generation is stale:
// its memory may have moved or been released. Content access through a
// stale view (Get, Set, Data, Copy, Reslice) panics with a diagnostic
// naming both generations, instead of silently reading relocated or
// freed memory. Stale views' own counters remain readable; they track
// the window, not the allocation.
//
// # Reslicing
//
// Reslice takes a half-open element range [lower, upper) of the view's
// reachable capacity: length becomes upper-lower, capacity becomes
// Cap()-lower, and the base advances by lower elements. No data is
// copied, and reslicing below the current length does not discard data;
// it remains reachable by reslicing back up to capacity.
//
// # Failure model
//
// Capacity exhaustion (unrepresentable byte size, failed mapping) is a
// returned error wrapping buf.ErrTooLarge or the mapping errno; the
// slice is unchanged. Misuse — length exceeding capacity in Make, bad
// reslice bounds, out-of-range indices, stale-view access — panics with
// the offending values.
//
// # Concurrency
//
// Unsynchronized. All views of one buffer assume single-threaded access;
// concurrent mutation, including reads during a structural operation,
// must be serialized by the caller.
package slice
