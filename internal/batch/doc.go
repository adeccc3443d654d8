// Package batch discovers card images under a folder and runs bleed
// processing across all of them.
//
// Discovery walks the input folder recursively and keeps files with a
// recognized image extension. One bad file becomes a failure record and
// the rest of the batch continues. Outputs
// land flat in a single directory under each input's base name, and a run
// refuses to write the same output path twice, so two inputs that share a
// base name surface as a failure instead of silently overwriting each
// other.
//
// # Concurrency
//
// Runs are sequential by default and process files in discovery order. An
// optional worker pool processes several files at once; each file is still
// handled by exactly one worker, and results are delivered to the caller
// from a single goroutine either way. Cancelling the run's context stops
// new files from being dispatched while files already being processed run
// to completion, so every output on disk is complete.
package batch
