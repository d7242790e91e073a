// Package protocol defines how kcc talks to a topic store and implements the
// file-backed store.
//
// # Overview
//
// A Backend declares which hosts it can serve (Accept, a pure predicate) and
// binds to one of them with Connect, which returns a Session. All topic and
// message operations go through the Session; nothing is bound globally.
//
// A Registry holds an ordered list of backends and picks the first one that
// accepts a host. DefaultRegistry contains only FileBackend.
//
// # File layout
//
// FileBackend serves "file:" hosts whose path is an existing directory. A
// topic T owned by user U is the file
//
//	<root>/.T#U.kcc
//
// and every message is one line "author|content" appended to it. Appends
// hold an exclusive advisory lock for the duration of a single write; reads
// take no lock and may miss a line being written concurrently.
//
// # Errors
//
// Operations return errors matching the kinds in internal/common:
// ErrNotFound, ErrConflict, ErrUnauthorized, ErrValidation and
// ErrConfiguration.
package protocol
