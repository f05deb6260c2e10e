package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	exp := time.Now().Add(time.Hour)

	reg.Insert(Session{TokenID: "t1", OwnerEmail: "ann@x.com", ExpiresAt: exp})
	reg.Insert(Session{TokenID: "t2", OwnerEmail: "ann@x.com", ExpiresAt: exp})
	reg.Insert(Session{TokenID: "t3", OwnerEmail: "bob@x.com", ExpiresAt: exp})

	require.True(t, reg.IsActive("t1"))
	require.True(t, reg.IsActive("t2"))
	require.False(t, reg.IsActive("missing"))

	s, ok := reg.Consume("t1")
	require.True(t, ok)
	require.Equal(t, "ann@x.com", s.OwnerEmail)
	require.False(t, reg.IsActive("t1"), "consume must be single-use")

	_, ok = reg.Consume("t1")
	require.False(t, ok, "second consume must fail")

	require.Equal(t, 1, reg.RevokeAllFor("ann@x.com"))
	require.False(t, reg.IsActive("t2"))
	require.True(t, reg.IsActive("t3"), "other accounts must be untouched")

	require.Equal(t, 0, reg.RevokeAllFor("ann@x.com"))
}
