/*
Package stream reads and writes SED-ML documents as XML token streams.

Reader wraps an xml.Decoder, tracking the namespace declarations in scope
and the input position of every token. Problems found while reading are
added to a sederr.Log rather than returned, so that a caller may walk a
whole document and inspect every problem afterwards. Only failures after
which reading cannot continue (malformed XML, I/O errors) are returned.

Writer wraps an xml.Encoder. Element and attribute names are written
exactly as given, so the caller controls namespace prefixes and
declarations.
*/
package stream
