/*
Package sederr holds the SED-ML error vocabulary.

Two kinds of failure are reported by the sedml packages. Mutators (setters,
list additions) return a Status, an integer operation code which implements
error. Problems found while reading a document are recorded as *Error values
in a Log carried by the document, and reading carries on past them; callers
inspect the Log once the read completes.
*/
package sederr
