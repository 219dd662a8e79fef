// Package testutil provides testing utilities for segkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible RNG and generators for randomized
// container workloads.
//
// # Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(1000, 0.7) {
//	    switch op.Kind {
//	    case testutil.OpPush: ...
//	    case testutil.OpPop: ...
//	    }
//	}
//
// # Skewed Keys
//
//	keys := rng.ZipfKeys(1000, 64, 1.5) // few hot keys, long tail
package testutil
