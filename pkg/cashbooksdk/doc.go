/*
Package cashbooksdk is a client for the Cashbook membership service.

Public endpoints hang off SDKClient; calls that need a caller go through a
Session wrapping an access token from the auth service:

	client := cashbooksdk.NewSDKClient("https://members.example.com")
	session := client.NewSession(accessToken, []string{"cashbook:read", "cashbook:write"})

	roster, err := session.GetRoster(ctx, businessID)

	invite, err := session.CreateInvite(ctx, businessID, cashbooksdk.CreateInviteRequest{
		Email:      "sam@example.com",
		Role:       "staff",
		CashbookID: cashbookID,
	})

The invited person, signed in with their own token, redeems the link's token:

	accepted, err := theirSession.AcceptInvite(ctx, token)

Non-2xx responses come back as *APIError; match the code with HasCode:

	if cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyResolved) {
		// someone else accepted first
	}
*/
package cashbooksdk
