package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladia/corretora-go/internal/api"
	"github.com/vladia/corretora-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "corretora-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cli")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	app, err := factory.New(factory.Config{
		TokenSecret: []byte("e2e-test-secret"),
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AccountService: app.AccountService,
		ListingService: app.ListingService,
		GeocodeService: app.GeocodeService,
		TokenService:   app.TokenService,
		Storage:        app.Storage,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Account accountResponse `json:"account"`
	Token   string          `json:"token"`
}

type listingResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Kind   string  `json:"kind"`
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("auth", "register",
		"--name", "Alice",
		"--email", "alice@example.com",
		"--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var registered authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &registered))
	assert.Equal(t, "Alice", registered.Account.Name)
	assert.Equal(t, "client", registered.Account.Role)
	assert.NotEmpty(t, registered.Token)

	// Me (token saved to token file by register)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var me accountResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, registered.Account.ID, me.ID)

	// Login
	output, err = cli.run("auth", "login",
		"--email", "alice@example.com",
		"--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var loggedIn authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loggedIn))
	assert.Equal(t, registered.Account.ID, loggedIn.Account.ID)

	// Verify
	output, err = cli.run("auth", "verify")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, `"valid": true`)
}

func TestCLI_ListingCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register as broker
	output, err := cli.run("auth", "register",
		"--name", "Bia Broker",
		"--email", "broker@example.com",
		"--pass", "secret123",
		"--role", "broker")
	require.NoError(t, err, "output: %s", output)

	// Create a listing
	output, err = cli.run("listing", "create",
		"--title", "Cozy house",
		"--kind", "house",
		"--address", "Rua das Flores 123",
		"--price", "350000")
	require.NoError(t, err, "output: %s", output)

	var created listingResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "available", created.Status)

	// Get it back
	output, err = cli.run("listing", "get", created.ID)
	require.NoError(t, err, "output: %s", output)

	var fetched listingResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// Update it
	output, err = cli.run("listing", "update", created.ID,
		"--title", "Renovated house",
		"--kind", "house",
		"--address", "Rua das Flores 123",
		"--price", "420000",
		"--status", "sold")
	require.NoError(t, err, "output: %s", output)

	var updated listingResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, "Renovated house", updated.Title)
	assert.Equal(t, "sold", updated.Status)

	// Delete it
	output, err = cli.run("listing", "delete", created.ID)
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("listing", "get", created.ID)
	assert.Error(t, err, "deleted listing should be gone")
}

func TestCLI_ClientsCannotCreateListings(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register",
		"--name", "Carla Client",
		"--email", "client@example.com",
		"--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("listing", "create",
		"--title", "Sneaky listing",
		"--address", "Rua das Flores 123")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "insufficient permissions")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Profile without auth
	output, err := cli.run("auth", "me")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "token not provided")

	// Unknown listing
	output, err = cli.run("listing", "get", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Wrong credentials
	output, err = cli.run("auth", "login",
		"--email", "nobody@example.com",
		"--pass", "whatever")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid email or password")
}
