package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
)

func TestTransportErrorStatus(t *testing.T) {
	err := &entity.TransportError{StatusCode: 500}
	require.Equal(t, "vendor returned HTTP 500", err.Error())
}

func TestTransportErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &entity.TransportError{Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection refused")
}

func TestAsTransportErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("list orders: %w", &entity.TransportError{StatusCode: 502})

	te, ok := entity.AsTransportError(wrapped)
	require.True(t, ok)
	require.Equal(t, 502, te.StatusCode)

	_, ok = entity.AsTransportError(errors.New("plain"))
	require.False(t, ok)
}
