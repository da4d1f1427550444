// Package prefio reads and writes the line-oriented text formats used by the
// matcher and verifier tools, and resolves input paths against a data
// directory.
//
// Preference file (blank lines ignored):
//
//	n
//	<hospital 1 list: n space-separated student numbers, 1-based>
//	…
//	<hospital n list>
//	<student 1 list: n space-separated hospital numbers, 1-based>
//	…
//	<student n list>
//
// Matching file (blank lines ignored): one "hospital student" pair per line,
// 1-based.
//
// Parsed IDs are converted to zero-based core.IDs. Preference files are fully
// validated (line count, integer tokens, permutations); matching files are
// only checked for shape, since range and consistency problems are the
// verifier's to report.
//
// Files whose name ends in ".gz" are gzip-compressed on write and
// decompressed on read.
//
// Errors:
//
//	*InputFormatError  - malformed content; names the file and 1-based line.
//	*FileNotFoundError - Resolve found the path neither as given nor under
//	                     the data directory; lists every location tried.
package prefio
