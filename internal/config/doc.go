// Package config implements the layered configuration resolver of the
// application.
//
// Two kinds of configuration live here:
//
//   - Boot configuration ([BootConfig]): process-level settings (listen
//     address, database DSN, log options) assembled from environment
//     variables, command-line flags, and an optional JSON file, in that
//     priority order (later sources override earlier non-zero fields).
//
//   - Site settings ([Settings]): the typed settings record seen by request
//     handlers. Compiled-in defaults are overlaid by an optional site
//     configuration file and, later in the request lifecycle, by per-user
//     preference overrides. The [Resolver] owns the merge and always exposes
//     a fully merged snapshot.
//
// The main entry points are [GetBootConfig] for process startup and
// [NewResolver] for the request-facing settings layer.
package config
