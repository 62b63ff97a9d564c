package dispute_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestDeriveStatus(t *testing.T) {
	testCases := []struct {
		name       string
		resolution *string
		want       dispute.Status
	}{
		{"nil is open", nil, dispute.Open},
		{"rejected", ptr("REJECTED"), dispute.Rejected},
		{"resolved", ptr("RESOLVED"), dispute.Resolved},
		{"any other value", ptr("REFUND_ISSUED"), dispute.Resolved},
		{"case sensitive", ptr("rejected"), dispute.Resolved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dispute.DeriveStatus(tc.resolution))
		})
	}
}

func TestNewDispute(t *testing.T) {
	d, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "damaged", "box crushed", time.Now())

	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.Equal(t, dispute.Open, d.Status())
	assert.Equal(t, "OPEN", d.Status().String())
	assert.Nil(t, d.Resolution())

	_, err = dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), " ", "", time.Now())
	assert.ErrorIs(t, err, dispute.ErrReasonIsRequired)
}

func TestDispute_Resolve(t *testing.T) {
	d, _ := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "late", "", time.Now())
	at := time.Now()

	require.ErrorIs(t, d.Resolve("", at), dispute.ErrResolutionIsRequired)
	require.NoError(t, d.Resolve("REJECTED", at))
	assert.Equal(t, dispute.Rejected, d.Status())
	require.NotNil(t, d.ResolvedAt())
	assert.Equal(t, at, *d.ResolvedAt())

	err := d.Resolve("REFUND_ISSUED", at)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, errs.CodeDisputeNotOpen, errs.CodeOf(err))
	assert.Equal(t, dispute.Rejected, d.Status())
}
