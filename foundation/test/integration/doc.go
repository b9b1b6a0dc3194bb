// Package integration provides end-to-end tests for the RoboScript foundation.
//
// Package: integration
// Title: RoboScript Foundation Integration Tests
// Description: Integration tests that run programs through parser, engine,
//              governor and the scripted world together, checking results,
//              error chains and performance across module boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-14 v0.2.0: Rewritten for the RoboScript engine and scripted world
//
// Test Categories:
//
// Pipeline Tests (pipeline_integration_test.go):
// - Source text to final world state through the engine
// - Cached programs executed against several worlds
// - Rendering round-trip before execution
//
// Error Integration Tests (error_integration_test.go):
// - Out of fuel, step limit and timeout codes through the engine boundary
// - Parse errors reachable with errors.As after wrapping
// - Run ID and operation context preserved in error chains
//
// Performance Tests (performance_test.go):
// - Parse and run benchmarks
// - Cache hit versus cold parse
package integration
