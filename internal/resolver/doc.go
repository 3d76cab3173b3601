// Package resolver locates, provisions, and caches a language-server
// binary on behalf of a host application.
//
// Resolution runs through four stages, each short-circuiting on success:
//
//  1. A user-managed binary on the worktree's search path wins outright.
//  2. A path cached from an earlier resolution in this process is reused
//     if the file still exists.
//  3. The release source is asked for the latest version; the matching
//     platform asset is downloaded unless that version is already on disk.
//     A successful install removes superseded version directories.
//  4. When the release source is unreachable, the newest usable version
//     already on disk is used instead. Only when that also fails does the
//     call fail, reporting both problems.
//
// The resolver is synchronous and keeps no state beyond the cached path;
// it is not meant to be shared across goroutines. Partial effects of a
// failed resolution (a half-written download, an uncleaned stale
// directory) are corrected by the next call re-checking the filesystem
// rather than trusting prior state.
package resolver
