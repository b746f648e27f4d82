package payments

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"gateway authentication failed: invalid credentials",
		(&AuthError{Reason: "invalid credentials"}).Error(),
	)
	assert.Equal(t,
		"gateway error 1: Insufficient funds",
		(&GatewayError{Code: "1", Description: "Insufficient funds"}).Error(),
	)
	assert.Equal(t,
		"transaction abc not found",
		(&NotFoundError{Resource: "transaction", ID: "abc"}).Error(),
	)
	assert.Equal(t,
		"payout abc is pending, requires approved",
		(&StateConflictError{Resource: "payout", ID: "abc", Current: "pending", Required: "approved"}).Error(),
	)
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("stk push failed: %w", &NetworkError{Op: "stk push", Err: cause})

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, cause)
}
