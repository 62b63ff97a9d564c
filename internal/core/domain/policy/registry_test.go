package policy_test

import (
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/profile"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/policy"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, selfService ...role.Role) *policy.Registry {
	t.Helper()
	r, err := policy.NewRegistry(selfService...)
	require.NoError(t, err)
	return r
}

func TestRegistry_OrderTransitions(t *testing.T) {
	r := newRegistry(t, policy.StrictSelfServiceRoles()...)

	allowed := map[order.Status][]order.Status{
		order.Pending:        {order.Confirmed, order.Cancelled},
		order.Confirmed:      {order.Processing, order.Cancelled},
		order.Processing:     {order.OutForDelivery, order.Cancelled},
		order.OutForDelivery: {order.Delivered, order.Cancelled},
	}

	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			want := false
			for _, s := range allowed[from] {
				want = want || s == to
			}
			assert.Equal(t, want, r.AllowsOrderTransition(from, to), "%s -> %s", from, to)
			assert.Equal(t, want, r.OrderRules().IsAllowed(from, to), "%s -> %s", from, to)
		}
	}

	assert.Empty(t, r.NextOrderStatuses(order.Delivered))
	assert.Empty(t, r.NextOrderStatuses(order.Cancelled))
}

func TestRegistry_OrderActors(t *testing.T) {
	r := newRegistry(t)

	testCases := []struct {
		from, to order.Status
		want     policy.Relations
	}{
		{order.Pending, order.Confirmed, policy.RelationVendor | policy.RelationAdmin},
		{order.Confirmed, order.Processing, policy.RelationVendor | policy.RelationAdmin},
		{order.Processing, order.OutForDelivery, policy.RelationVendor | policy.RelationAdmin},
		{order.OutForDelivery, order.Delivered, policy.RelationSystem | policy.RelationAdmin},
		{order.Pending, order.Cancelled, policy.RelationCustomer | policy.RelationVendor | policy.RelationAdmin},
		{order.Confirmed, order.Cancelled, policy.RelationCustomer | policy.RelationVendor | policy.RelationAdmin},
		{order.Processing, order.Cancelled, policy.RelationVendor | policy.RelationAdmin},
		{order.OutForDelivery, order.Cancelled, policy.RelationAdmin},
		{order.Pending, order.Delivered, policy.None},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, r.OrderActorRelations(tc.from, tc.to))
		})
	}

	assert.False(t, r.AllowsOrderActor(order.Processing, order.Cancelled, policy.RelationCustomer))
	assert.True(t, r.AllowsOrderActor(order.Pending, order.Cancelled, policy.RelationCustomer))
	assert.False(t, r.AllowsOrderActor(order.OutForDelivery, order.Delivered, policy.RelationVendor))
}

func TestRegistry_DeliveryTransitions(t *testing.T) {
	r := newRegistry(t)

	for _, from := range delivery.Statuses() {
		for _, to := range delivery.Statuses() {
			want := to == from+1
			assert.Equal(t, want, r.AllowsDeliveryTransition(from, to), "%s -> %s", from, to)
			assert.Equal(t, want, r.DeliveryRules().IsAllowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestRegistry_PromotionPaths(t *testing.T) {
	r := newRegistry(t)

	for _, target := range role.All() {
		path := r.PromotionPath(target)
		assert.Equal(t, target, path.Target, "every role has a path entry")
	}

	assert.False(t, r.PromotionPath(role.Customer).Promotable)
	assert.False(t, r.PromotionPath(role.Admin).Promotable)
	assert.Equal(t, profile.Vendor, r.PromotionPath(role.Vendor).Profile)
	assert.Equal(t, profile.Rider, r.PromotionPath(role.Rider).Profile)

	agency := r.PromotionPath(role.DeliveryAgency)
	assert.True(t, agency.Promotable)
	assert.True(t, agency.AdminProvisioned)
	assert.Equal(t, profile.Agency, agency.Profile)

	assert.Equal(t, role.Unknown, r.PromotionPath(role.Role(99)).Target)
}

func TestNewRegistry_SelfService(t *testing.T) {
	t.Run("strict preset", func(t *testing.T) {
		r := newRegistry(t, policy.StrictSelfServiceRoles()...)

		assert.True(t, r.IsSelfService(role.Vendor))
		assert.False(t, r.IsSelfService(role.Rider))
		assert.Equal(t, []role.Role{role.Vendor}, r.SelfServiceRoles())
	})

	t.Run("open preset", func(t *testing.T) {
		r := newRegistry(t, policy.OpenSelfServiceRoles()...)

		assert.True(t, r.IsSelfService(role.Rider))
		assert.Equal(t, []role.Role{role.Vendor, role.Rider}, r.SelfServiceRoles())
	})

	t.Run("rejects roles that are not self-service eligible", func(t *testing.T) {
		for _, bad := range []role.Role{role.Admin, role.Customer, role.DeliveryAgency, role.Unknown} {
			_, err := policy.NewRegistry(role.Vendor, bad)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, bad.String())
		}
	})
}

func TestParseSelfServiceRoles(t *testing.T) {
	testCases := []struct {
		in   string
		want []role.Role
	}{
		{"", []role.Role{role.Vendor}},
		{"strict", []role.Role{role.Vendor}},
		{" OPEN ", []role.Role{role.Vendor, role.Rider}},
		{"vendor, rider,", []role.Role{role.Vendor, role.Rider}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := policy.ParseSelfServiceRoles(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := policy.ParseSelfServiceRoles("vendor,wizard")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := newRegistry(t, policy.OpenSelfServiceRoles()...)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, r.AllowsOrderTransition(order.Pending, order.Confirmed))
			assert.True(t, r.IsSelfService(role.Rider))
			next := r.NextOrderStatuses(order.Pending)
			next[0] = order.Delivered
		}()
	}
	wg.Wait()

	assert.Equal(t, []order.Status{order.Confirmed, order.Cancelled}, r.NextOrderStatuses(order.Pending))
}

func TestRelationsOf(t *testing.T) {
	customerID, vendorID := kernel.NewUUID(), kernel.NewUUID()
	line, _ := order.NewLine(kernel.NewUUID(), 1, 100)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, vendorID, []order.Line{line}, order.Card, time.Now())
	require.NoError(t, err)

	actor := func(id kernel.UUID, r role.Role) user.Actor {
		a, err := user.NewActor(id, r)
		require.NoError(t, err)
		return a
	}

	assert.Equal(t, policy.RelationCustomer, policy.RelationsOf(o, actor(customerID, role.Customer)))
	assert.Equal(t, policy.RelationVendor, policy.RelationsOf(o, actor(vendorID, role.Vendor)))
	assert.Equal(t, policy.RelationAdmin, policy.RelationsOf(o, actor(kernel.NewUUID(), role.Admin)))
	assert.Equal(t, policy.RelationSystem, policy.RelationsOf(o, user.SystemActor()))
	assert.Equal(t, policy.None, policy.RelationsOf(o, actor(kernel.NewUUID(), role.Vendor)))
	// a vendor id held by a user who lost the vendor role does not count
	assert.Equal(t, policy.None, policy.RelationsOf(o, actor(vendorID, role.Rider)))

	assert.Equal(t, "CUSTOMER|ADMIN", (policy.RelationCustomer | policy.RelationAdmin).String())
	assert.Equal(t, "NONE", policy.None.String())
}
