package sederr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the result code of a mutating operation on a SED-ML object.
//
// Status implements error. Operations report success by returning a nil
// error, never OperationSuccess itself.
type Status int

const (
	// OperationSuccess indicates the operation completed.
	OperationSuccess Status = 0
	// IndexExceedsSize indicates an index was out of range.
	IndexExceedsSize Status = -1
	// UnexpectedAttribute indicates the attribute is not valid for the
	// object's level and version.
	UnexpectedAttribute Status = -2
	// OperationFailed is a generic failure.
	OperationFailed Status = -3
	// InvalidAttributeValue indicates a value failed syntax, enumeration or
	// nil checks.
	InvalidAttributeValue Status = -4
	// InvalidObject indicates an object is incomplete or ill-formed.
	InvalidObject Status = -5
	// DuplicateObjectID indicates an id already present in the container.
	DuplicateObjectID Status = -6
	// LevelMismatch indicates a SED-ML level differing from the parent's.
	LevelMismatch Status = -7
	// VersionMismatch indicates a SED-ML version differing from the parent's.
	VersionMismatch Status = -8
	// InvalidXMLOperation indicates an XML operation that cannot be applied.
	InvalidXMLOperation Status = -9
	// NamespacesMismatch indicates conflicting namespace declarations.
	NamespacesMismatch Status = -10
)

var statusText = map[Status]string{
	OperationSuccess:      "operation succeeded",
	IndexExceedsSize:      "index exceeds size",
	UnexpectedAttribute:   "unexpected attribute",
	OperationFailed:       "operation failed",
	InvalidAttributeValue: "invalid attribute value",
	InvalidObject:         "invalid object",
	DuplicateObjectID:     "duplicate object id",
	LevelMismatch:         "level mismatch",
	VersionMismatch:       "version mismatch",
	InvalidXMLOperation:   "invalid XML operation",
	NamespacesMismatch:    "namespaces mismatch",
}

func (s Status) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) Error() string { return "sedml: " + s.String() }

// StatusOf returns the Status carried by err. A nil err yields
// OperationSuccess, and errors which carry no Status yield OperationFailed.
func StatusOf(err error) Status {
	if err == nil {
		return OperationSuccess
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return OperationFailed
}
