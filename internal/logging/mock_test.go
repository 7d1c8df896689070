package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockLogger_CapturesLevels(t *testing.T) {
	mock := NewMockLogger()

	mock.Debug("debug message")
	mock.Info("info message")
	mock.Warn("warn message")
	mock.Error("error message")

	assert.Len(t, mock.GetEntries(), 4)
	assert.True(t, mock.HasEntry("DEBUG", "debug message"))
	assert.True(t, mock.HasEntry("INFO", "info message"))
	assert.True(t, mock.HasEntry("WARN", "warn message"))
	assert.True(t, mock.HasEntry("ERROR", "error message"))
	assert.False(t, mock.HasEntry("INFO", "never logged"))
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.WithField(FieldRecordID, "tx-1").Warn("record skipped")
	mock.WithError(errors.New("boom")).Error("load failed")

	warns := mock.GetEntriesByLevel("WARN")
	assert.Len(t, warns, 1)
	assert.Equal(t, []Field{{Key: FieldRecordID, Value: "tx-1"}}, warns[0].Fields)

	errs := mock.GetEntriesByLevel("ERROR")
	assert.Len(t, errs, 1)
	assert.EqualError(t, errs[0].Error, "boom")
}

func TestMockLogger_Clear(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("one")
	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}
