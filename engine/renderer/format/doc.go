/*
Package format is the process-wide registry of pixel formats.

Every fact about a format (component layout, bit widths and positions,
numeric type, YUV plane topology, compressed block geometry and
compatibility class) lives in immutable tables that are validated once when
the package is initialised. All functions are pure and safe for concurrent
use.

Functions that only make sense for some formats, such as asking for the
plane layout of a non-YUV format, treat a wrong format as a programming
error and panic through core.Assert. Lookups that can legitimately find
nothing, like Resolve and Name, report absence through FormatUndefined or a
false flag instead.
*/
package format
