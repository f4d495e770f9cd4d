// Package envtab defines the flat table contract the envmap core layers
// structure onto, plus the bundled implementations.
//
// Responsibilities:
//   - Table is the only surface the core touches: enumerate keys, look up,
//     set, and delete single entries. The core never caches table state.
//   - OS binds Table to the process environment.
//   - Memory is an ordered in-process Table for tests and fakes. Enumeration
//     order is insertion order, which the core relies on as the tie-break
//     when matched keys have equal length.
//   - Layered presents several tables as one read-through view, strongest
//     table first.
//
// The core package remains host-agnostic; anything that can enumerate string
// pairs can stand in for the process environment.
package envtab
