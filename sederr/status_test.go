package sederr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil", want: OperationSuccess},
		{name: "status", err: InvalidAttributeValue, want: InvalidAttributeValue},
		{name: "wrapped", err: errors.Wrap(DuplicateObjectID, "adding dataGenerator"), want: DuplicateObjectID},
		{name: "stacked", err: errors.WithStack(LevelMismatch), want: LevelMismatch},
		{name: "foreign", err: errors.New("boom"), want: OperationFailed},
	} {
		t.Run(tc.name, func(t *testing.T) { assert.Equal(t, tc.want, StatusOf(tc.err)) })
	}
}

func TestStatusString(t *testing.T) {
	check := assert.New(t)
	check.Equal("sedml: invalid attribute value", InvalidAttributeValue.Error())
	check.Equal("namespaces mismatch", NamespacesMismatch.String())
	check.Equal("Status(-99)", Status(-99).String())
	check.True(errors.Is(errors.Wrap(InvalidObject, "x"), InvalidObject))
}
