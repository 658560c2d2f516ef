// Package filesystem provides the POSIX filesystem primitives on which the
// recursive tree operations are built: descriptor-based directory scanning,
// no-follow metadata queries, file content copying, removal, directory
// creation, and mode and ownership changes. Every system call is retried on
// EINTR. Only POSIX platforms are supported.
package filesystem
