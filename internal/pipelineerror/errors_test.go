package pipelineerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidCategoryError(t *testing.T) {
	err := &InvalidCategoryError{Category: "expense"}
	assert.Equal(t, `invalid business category "expense": must be one of purchase, bank, card, sale`, err.Error())
}

func TestLoadError_Unwrap(t *testing.T) {
	originalErr := errors.New("unexpected end of JSON input")
	loadErr := &LoadError{
		Path:   "/data/records.json",
		Format: "json",
		Err:    originalErr,
	}

	assert.Equal(t, "failed to load json records from /data/records.json: unexpected end of JSON input", loadErr.Error())
	assert.Equal(t, originalErr, loadErr.Unwrap())
	assert.True(t, errors.Is(loadErr, originalErr))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		RecordID: "tx-42",
		Reason:   "missing capture source",
	}
	assert.Equal(t, `validation failed for record "tx-42": missing capture source`, err.Error())
}

func TestWriteError_Unwrap(t *testing.T) {
	originalErr := errors.New("permission denied")
	writeErr := &WriteError{
		Path:   "/out/snapshot.csv",
		Format: "csv",
		Err:    originalErr,
	}

	assert.Equal(t, "failed to write csv report to /out/snapshot.csv: permission denied", writeErr.Error())
	assert.True(t, errors.Is(writeErr, originalErr))
}
