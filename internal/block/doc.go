// Package block provides the fixed-capacity storage blocks and the append-only
// block directory behind segkit's stable containers.
//
// A Block is allocated once with a fixed capacity and is never resized, so the
// address of a slot inside it is valid for the block's lifetime. A Directory
// owns an ordered slice of block handles. The slice itself may be reallocated
// while it grows; the blocks it points to never move.
//
// Nothing in this package is safe for concurrent use.
package block
