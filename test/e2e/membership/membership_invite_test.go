package membership_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/stretchr/testify/require"
)

func TestInviteFlow(t *testing.T) {
	client, cleanup := setupMembershipContainer(t)
	defer cleanup()

	ctx := context.Background()
	owner := managerSession(t, client, "owner-1")

	b, err := owner.CreateBusiness(ctx, "Harbour Bakery")
	require.NoError(t, err)
	cb, err := owner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Front Till"})
	require.NoError(t, err)

	t.Run("StaffInviteAccepted", func(t *testing.T) {
		res, err := owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{
			Email:      "Staff-1@Example.com",
			Role:       "staff",
			CashbookID: cb.ID,
		})
		require.NoError(t, err)
		// No provider is configured in the container.
		require.False(t, res.Delivered)
		require.Equal(t, "staff-1@example.com", res.Invite.Email)

		token := tokenFromLink(t, res.Link)
		require.NotEmpty(t, token)

		invitee := newSession(t, client, "staff-1")

		preview, err := invitee.LookupInvite(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "Harbour Bakery", preview.BusinessName)
		require.Equal(t, "Front Till", preview.CashbookName)

		accepted, err := invitee.AcceptInvite(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "accepted", accepted.Invite.Status)
		require.Equal(t, cb.ID, accepted.Membership.CashbookID)

		_, err = invitee.AcceptInvite(ctx, token)
		require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyResolved))

		roster, err := owner.GetRoster(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, roster.Members, 2)
		require.Equal(t, "owner-1", roster.Members[0].User.ID)
		require.Equal(t, "staff-1", roster.Members[1].User.ID)
	})

	t.Run("RevokedInviteRejected", func(t *testing.T) {
		res, err := owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{
			Phone: "+61400000111",
			Role:  "partner",
		})
		require.NoError(t, err)

		require.NoError(t, owner.RevokeInvite(ctx, res.Invite.ID))

		invites, err := owner.ListInvites(ctx, b.ID, "revoked")
		require.NoError(t, err)
		require.Len(t, invites, 1)

		invitee := newSession(t, client, "partner-1")
		_, err = invitee.AcceptInvite(ctx, tokenFromLink(t, res.Link))
		require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyResolved))
	})

	t.Run("NonManagerForbidden", func(t *testing.T) {
		outsider := managerSession(t, client, "outsider-1")
		_, err := outsider.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{
			Email: "x@example.com", Role: "partner",
		})
		require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeForbidden))
	})
}
