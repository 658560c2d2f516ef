package filesystem

// fchmodatNoFollowFlags are the flags passed to fchmodat by SetMode. On Linux,
// AT_SYMLINK_NOFOLLOW is not supported by fchmodat and results in ENOTSUP, so
// SetMode relies on its own symbolic link check instead.
const fchmodatNoFollowFlags = 0
