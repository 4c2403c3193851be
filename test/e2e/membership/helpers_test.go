package membership_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for membership service end-to-end
 * tests. The container trusts a locally generated Ed25519 key, so tests mint
 * their own access tokens instead of running the auth service.
 */

const (
	testImageName = "cashbook-membership-test:latest"

	testIssuer   = "cashbook-e2e"
	testAudience = "cashbook"
	testKeyID    = "e2e-key-001"
)

var testSigner jwtx.Signer

// TestMain builds the Docker image and the signing key once before all tests
// and cleans the image up after all tests complete.
func TestMain(m *testing.M) {
	pemKey, _, err := cryptox.GenerateEd25519Key()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate signing key: %v\n", err)
		os.Exit(1)
	}
	testSigner, err = jwtx.NewSignerEdDSA(testKeyID, pemKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create signer: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Building Membership Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Membership Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/membership/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupMembershipContainer starts the membership service in a container and
// returns a client pointed at it.
func setupMembershipContainer(t *testing.T) (*cashbooksdk.SDKClient, func()) {
	t.Helper()
	ctx := context.Background()

	jwks, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{testSigner.PublicJWK()}})
	require.NoError(t, err)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"AUTH_JWKS":        string(jwks),
			"AUTH_ISSUER":      testIssuer,
			"AUTH_AUDIENCE":    testAudience,
			"DATABASE_FILE":    "/data/membership.db",
			"CONSOLE_BASE_URL": "https://console.example.com",
			"ENV":              "test",
			"LOG_LEVEL":        "info",
			"LOG_FORMAT":       "json",
			// E2E tests make many rapid requests from one user
			"RATELIMIT_INVITE_REQUESTS": "1000",
			"RATELIMIT_INVITE_BURST":    "1000",
			"RATELIMIT_WRITE_REQUESTS":  "1000",
			"RATELIMIT_WRITE_BURST":     "1000",
			"RATELIMIT_READ_REQUESTS":   "1000",
			"RATELIMIT_READ_BURST":      "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	client := cashbooksdk.NewSDKClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return client, cleanup
}

// newSession mints an access token for userID and opens a session with it.
func newSession(t *testing.T, client *cashbooksdk.SDKClient, userID string, scopes ...string) *cashbooksdk.Session {
	t.Helper()

	claims := jwtx.NewAccessClaims(userID, scopes, jwtx.Profile{
		Email: strings.ToLower(userID) + "@example.com",
		Name:  "User " + userID,
	}, time.Hour, testIssuer, []string{testAudience}, time.Now())

	tok, err := testSigner.Sign(claims)
	require.NoError(t, err)

	return client.NewSession(tok, scopes)
}

func managerSession(t *testing.T, client *cashbooksdk.SDKClient, userID string) *cashbooksdk.Session {
	return newSession(t, client, userID, cashbooksdk.ScopeRead, cashbooksdk.ScopeWrite)
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("token")
}
