package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title  string `validate:"required,max=10"`
	Rating int    `validate:"required,min=1,max=5"`
	Status string `validate:"omitempty,oneof=open closed"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(sampleRequest{Title: "Brunch", Rating: 4, Status: "open"})
	require.NoError(t, err)
}

func TestValidateStructListsEveryFailure(t *testing.T) {
	err := ValidateStruct(sampleRequest{Status: "stale"})
	require.Error(t, err)

	verr, ok := err.(*ValidationErrors)
	require.True(t, ok)
	require.Contains(t, verr.Details, "title is required")
	require.Contains(t, verr.Details, "rating is required")
	require.Contains(t, verr.Details, "status must be one of: open closed")
}

func TestValidateStructMaxMessage(t *testing.T) {
	err := ValidateStruct(sampleRequest{Title: "quite a long title", Rating: 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "title must be at most 10")
}
