// Package project persists project records as JSON files keyed by project id
// under a configured root directory.
//
// The store root is always passed in explicitly so tests can point it at an
// isolated directory. Writes go through a temp-file rename guarded by a file
// lock; concurrent writers resolve last-write-wins.
package project
