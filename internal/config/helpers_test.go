package config

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}
