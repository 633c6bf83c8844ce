// Package dedupe merges bibliographic collections into one deduplicated
// collection.
//
// The Merger folds sources into a target in order. Each incoming record is
// classified against the target's records in insertion order and the first
// non-distinct verdict decides its fate: identical records are dropped,
// probable duplicates go through a Resolver (silent or interactive), and
// records that are kept receive a collision-free key from AllocateKey.
//
// Settings are immutable and passed by value; nothing in this package holds
// global state or touches the filesystem. The only blocking call is the
// interactive Chooser behind Policy.
package dedupe
