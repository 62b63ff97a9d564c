package role_test

import (
	"testing"

	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_StringAndParse(t *testing.T) {
	for _, r := range role.All() {
		parsed, err := role.Parse(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
		assert.NoError(t, r.Validate())
	}
}

func TestParse(t *testing.T) {
	t.Run("is case insensitive", func(t *testing.T) {
		r, err := role.Parse("  delivery_agency ")
		require.NoError(t, err)
		assert.Equal(t, role.DeliveryAgency, r)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		r, err := role.Parse("SUPERUSER")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, role.Unknown, r)
	})
}

func TestRole_Validate(t *testing.T) {
	assert.ErrorIs(t, role.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, role.Role(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", role.Role(42).String())
}

func TestRole_IsDeliveryActor(t *testing.T) {
	assert.True(t, role.Rider.IsDeliveryActor())
	assert.True(t, role.DeliveryAgency.IsDeliveryActor())
	assert.False(t, role.Vendor.IsDeliveryActor())
	assert.False(t, role.Admin.IsDeliveryActor())
}
