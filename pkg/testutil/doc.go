// Package testutil provides utilities for testing packforge components.
//
// Key components:
//   - MemFS: In-memory filesystem preloaded with descriptor files
//   - PackBuilder: Declarative pack list setup
//   - IsolateState: Redirects the XDG state directory into the test's temp dir
//
// All test data should be defined inline, not in external files, and each
// test should be completely isolated with no shared state.
package testutil
