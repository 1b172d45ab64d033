package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionStatus(t *testing.T) {
	tests := []struct {
		action string
		status RegistrationStatus
	}{
		{action: "accept", status: RegistrationStatusAccepted},
		{action: "reject", status: RegistrationStatusRejected},
		{action: "cancel", status: RegistrationStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			status, err := ActionStatus(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		_, err := ActionStatus("approve")
		assert.ErrorIs(t, err, ErrInvalidAction)
	})
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{
		"email": "is required",
		"date":  "must match format 2006-01-02 15:04",
	}

	assert.ErrorIs(t, fe, ErrValidation)
	// Fields are listed deterministically.
	assert.Equal(t, "validation failed: date, email", fe.Error())
}
