package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkfetch/internal/adapters/telemetry"
	"go.trai.ch/apkfetch/internal/app"
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/apkfetch/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const testPkg = "com.example.app"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	loader     *mocks.MockConfigLoader
	scanner    *mocks.MockInventoryScanner
	stores     *mocks.MockStoreClientFactory
	client     *mocks.MockStoreClient
	hasher     *mocks.MockHasher
	receipts   *mocks.MockReceiptStore
	logger     *mocks.MockLogger
	cfg        *domain.Config
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	programDir string
	slept      []time.Duration
	app        *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	h := &harness{
		loader:     mocks.NewMockConfigLoader(ctrl),
		scanner:    mocks.NewMockInventoryScanner(ctrl),
		stores:     mocks.NewMockStoreClientFactory(ctrl),
		client:     mocks.NewMockStoreClient(ctrl),
		hasher:     mocks.NewMockHasher(ctrl),
		receipts:   mocks.NewMockReceiptStore(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		cfg:        domain.DefaultConfig(),
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
		programDir: t.TempDir(),
	}
	h.cfg.InventoryDir = "/inventory"

	h.app = app.New(h.loader, h.scanner, h.stores, h.hasher, h.receipts, telemetry.NewNoOpTracer(), h.logger).
		WithOutput(h.stdout, h.stderr).
		WithProgramDir(h.programDir).
		WithClock(func() time.Time { return testNow }).
		WithSleeper(func(_ context.Context, d time.Duration) error {
			h.slept = append(h.slept, d)
			return nil
		})
	return h
}

// expectClient sets up the steps that precede the details lookup.
func (h *harness) expectClient(inventory domain.InventoryMap) {
	h.loader.EXPECT().Load(domain.DefaultConfigFileName).Return(h.cfg, nil)
	h.scanner.EXPECT().Scan("/inventory").Return(inventory, nil)
	h.stores.EXPECT().New(domain.DefaultCredentialsPath, h.cfg.Store).Return(h.client, nil)
}

func (h *harness) details(versionCode int64) *domain.AppDetails {
	return &domain.AppDetails{PackageName: testPkg, Title: "Example", Creator: "Example Inc.", VersionCode: versionCode}
}

func TestApp_Run_SkipsWhenUpToDate(t *testing.T) {
	tests := []struct {
		name   string
		local  string
		remote int64
	}{
		{name: "same version", local: "5", remote: 5},
		{name: "local newer", local: "7", remote: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectClient(domain.InventoryMap{testPkg: tt.local})
			h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(tt.remote), nil)

			outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeSkippedUpToDate, outcome)
			assert.Equal(t, "------------The same version of the apk already exists------------\n", h.stdout.String())
		})
	}
}

func TestApp_Run_DownloadsMissingPackage(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(42), nil)

	dest := filepath.Join(h.programDir, "Downloads", "com.example.app-42.apk")
	h.client.EXPECT().Download(gomock.Any(), testPkg, dest).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(dest).Return(uint64(0xef46db3751d8e999), nil)
	h.logger.EXPECT().Info("artifact saved", "xxhash64", "ef46db3751d8e999", "path", dest)
	h.receipts.EXPECT().Put(filepath.Dir(dest), domain.Receipt{
		PackageName: testPkg,
		VersionCode: 42,
		Digest:      "ef46db3751d8e999",
		Path:        dest,
		Timestamp:   testNow,
	}).Return(nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)

	assert.DirExists(t, filepath.Dir(dest))
	assert.Equal(t,
		"The APK save path is "+dest+"\n"+
			`✓ Downloaded "com.example.app" version 42 to `+dest+"\n",
		h.stdout.String())
	assert.Empty(t, h.slept)
}

func TestApp_Run_DownloadsNewerRemote(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{testPkg: "41"})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(42), nil)
	h.client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestApp_Run_NonNumericLocalVersion(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{testPkg: "beta"})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(1), nil)
	h.logger.EXPECT().Warn("local version is not numeric, treating it as absent", "package", testPkg, "version", "beta")
	h.client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestApp_Run_CustomOutAndTrimmedArguments(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("custom.yaml").Return(h.cfg, nil)
	h.scanner.EXPECT().Scan("/override").Return(domain.InventoryMap{}, nil)
	h.stores.EXPECT().New("my creds.json", h.cfg.Store).Return(h.client, nil)
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(3), nil)

	dest := filepath.Join(h.programDir, "mirror", "apk", "com.example.app-3.apk")
	h.client.EXPECT().Download(gomock.Any(), testPkg, dest).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(dest).Return(uint64(1), nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{
		Package:         ` 'com.example.app' `,
		CredentialsPath: `"my creds.json"`,
		OutPath:         `'mirror/apk'`,
		InventoryDir:    "/override",
		ConfigPath:      "custom.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
	assert.DirExists(t, filepath.Dir(dest))
}

func TestApp_Run_SanitizesFileName(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).
		Return(&domain.AppDetails{PackageName: "com.example/app:x", VersionCode: 9}, nil)

	dest := filepath.Join(h.programDir, "Downloads", "com.example_app_x-9.apk")
	h.client.EXPECT().Download(gomock.Any(), "com.example/app:x", dest).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(dest).Return(uint64(1), nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
	assert.Contains(t, h.stdout.String(), `Downloaded "com.example/app:x" version 9 to `+dest)
}

func TestApp_Run_DownloadsResolvedPackageName(t *testing.T) {
	const resolved = "com.example.resolved"

	t.Run("download failure names the resolved package", func(t *testing.T) {
		h := newHarness(t)
		h.expectClient(domain.InventoryMap{})
		h.client.EXPECT().AppDetails(gomock.Any(), testPkg).
			Return(&domain.AppDetails{PackageName: resolved, VersionCode: 9}, nil)

		dest := filepath.Join(h.programDir, "Downloads", "com.example.resolved-9.apk")
		h.client.EXPECT().Download(gomock.Any(), resolved, dest).Return(domain.ErrDownloadFailed)
		h.logger.EXPECT().Error(gomock.Any())

		outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeDownloadFailed, outcome)
		assert.Contains(t, h.stdout.String(), `Error when downloading "com.example.resolved".`+"\n")
	})

	t.Run("receipt records the resolved package", func(t *testing.T) {
		h := newHarness(t)
		h.expectClient(domain.InventoryMap{})
		h.client.EXPECT().AppDetails(gomock.Any(), testPkg).
			Return(&domain.AppDetails{PackageName: resolved, VersionCode: 9}, nil)
		h.client.EXPECT().Download(gomock.Any(), resolved, gomock.Any()).Return(nil)
		h.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil)
		h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
		h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, receipt domain.Receipt) error {
				assert.Equal(t, resolved, receipt.PackageName)
				return nil
			})

		outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeDownloaded, outcome)
		assert.Contains(t, h.stdout.String(), `Downloaded "com.example.resolved" version 9`)
	})
}

func TestApp_Run_LookupFailed(t *testing.T) {
	tests := []struct {
		name    string
		details *domain.AppDetails
		err     error
	}{
		{name: "malformed details", err: zerr.With(domain.ErrMetadataUnavailable, "package", testPkg)},
		{name: "transport error", err: zerr.Wrap(errors.New("connection refused"), domain.ErrStoreRequestFailed.Error())},
		{name: "nil details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectClient(domain.InventoryMap{})
			h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(tt.details, tt.err)
			h.logger.EXPECT().Error(gomock.Any())

			outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeLookupFailed, outcome)
			assert.Equal(t, `Error when downloading "com.example.app". Unable to get app's details.`+"\n", h.stdout.String())
			assert.NoDirExists(t, filepath.Join(h.programDir, "Downloads"))
		})
	}
}

func TestApp_Run_DownloadFailed(t *testing.T) {
	h := newHarness(t)
	h.cfg.Download.Cooldown = 7 * time.Second
	h.expectClient(domain.InventoryMap{})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(42), nil)
	h.client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).
		Return(zerr.Wrap(errors.New("unexpected EOF"), domain.ErrDownloadFailed.Error()))
	h.logger.EXPECT().Error(gomock.Any())

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloadFailed, outcome)
	assert.Equal(t, []time.Duration{7 * time.Second}, h.slept)
	assert.Contains(t, h.stdout.String(), `Error when downloading "com.example.app".`+"\n")
}

func TestApp_Run_HashFailureKeepsDownload(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(42), nil)
	h.client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(0), domain.ErrFileOpenFailed)
	h.logger.EXPECT().Warn(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, receipt domain.Receipt) error {
			assert.Empty(t, receipt.Digest)
			return nil
		})

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestApp_Run_ReceiptFailureKeepsDownload(t *testing.T) {
	h := newHarness(t)
	h.expectClient(domain.InventoryMap{})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(42), nil)
	h.client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).Return(nil)
	h.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	h.receipts.EXPECT().Put(gomock.Any(), gomock.Any()).Return(domain.ErrReceiptWriteFailed)
	h.logger.EXPECT().Warn("could not write download receipt", "error", domain.ErrReceiptWriteFailed)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestApp_Run_FatalErrors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(h *harness)
		errContains string
	}{
		{
			name: "config cannot be loaded",
			setup: func(h *harness) {
				h.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigParseFailed)
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "inventory directory missing",
			setup: func(h *harness) {
				h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil)
				h.scanner.EXPECT().Scan("/inventory").
					Return(nil, zerr.With(zerr.Wrap(os.ErrNotExist, domain.ErrDirectoryAccess.Error()), "dir", "/inventory"))
			},
			errContains: domain.ErrDirectoryAccess.Error(),
		},
		{
			name: "credentials invalid",
			setup: func(h *harness) {
				h.loader.EXPECT().Load(gomock.Any()).Return(h.cfg, nil)
				h.scanner.EXPECT().Scan(gomock.Any()).Return(domain.InventoryMap{}, nil)
				h.stores.EXPECT().New(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCredentialsInvalid)
			},
			errContains: domain.ErrCredentialsInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h)

			outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
			assert.Equal(t, domain.OutcomeAborted, outcome)
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestApp_Run_NoPackage(t *testing.T) {
	h := newHarness(t)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: ` "" `})
	require.ErrorIs(t, err, domain.ErrNoPackageSpecified)
	assert.Equal(t, domain.OutcomeAborted, outcome)
}

func TestApp_Run_Spans(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	scanner := mocks.NewMockInventoryScanner(ctrl)
	stores := mocks.NewMockStoreClientFactory(ctrl)
	client := mocks.NewMockStoreClient(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	cfg := domain.DefaultConfig()
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	scanner.EXPECT().Scan(gomock.Any()).Return(domain.InventoryMap{}, nil)
	stores.EXPECT().New(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(&domain.AppDetails{PackageName: testPkg, VersionCode: 2}, nil)
	client.EXPECT().Download(gomock.Any(), testPkg, gomock.Any()).Return(nil)
	hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil)
	logger.EXPECT().Info(gomock.Any(), gomock.Any())
	receiptStore := mocks.NewMockReceiptStore(ctrl)
	receiptStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	startSpan := func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span }
	gomock.InOrder(
		tracer.EXPECT().Start(gomock.Any(), "fetch").DoAndReturn(startSpan),
		tracer.EXPECT().Start(gomock.Any(), "inventory.scan").DoAndReturn(startSpan),
		tracer.EXPECT().Start(gomock.Any(), "store.details").DoAndReturn(startSpan),
		tracer.EXPECT().Start(gomock.Any(), "store.download").DoAndReturn(startSpan),
	)
	span.EXPECT().SetAttribute("outcome", "DOWNLOADED")
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().Times(4)

	a := app.New(loader, scanner, stores, hasher, receiptStore, tracer, logger).
		WithOutput(io.Discard, io.Discard).
		WithProgramDir(t.TempDir())

	outcome, err := a.Run(context.Background(), app.RunOptions{Package: testPkg})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestApp_Run_TraceSummary(t *testing.T) {
	h := newHarness(t)
	h.app = app.New(h.loader, h.scanner, h.stores, h.hasher, h.receipts, telemetry.NewOTelTracer("test"), h.logger).
		WithOutput(h.stdout, h.stderr).
		WithProgramDir(h.programDir)

	h.expectClient(domain.InventoryMap{testPkg: "5"})
	h.client.EXPECT().AppDetails(gomock.Any(), testPkg).Return(h.details(5), nil)

	outcome, err := h.app.Run(context.Background(), app.RunOptions{Package: testPkg, Trace: true})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkippedUpToDate, outcome)

	assert.Contains(t, h.stderr.String(), "trace: inventory.scan took ")
	assert.Contains(t, h.stderr.String(), "trace: store.details took ")
	assert.Contains(t, h.stderr.String(), "trace: fetch took ")
}

func TestResolveDestination(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{name: "default", out: domain.DefaultOutDir, want: "/opt/apkfetch/Downloads/a-1.apk"},
		{name: "empty uses default", out: "", want: "/opt/apkfetch/Downloads/a-1.apk"},
		{name: "relative custom", out: "mirror", want: "/opt/apkfetch/mirror/a-1.apk"},
		{name: "absolute custom stays below program dir", out: "/srv/apk", want: "/opt/apkfetch/srv/apk/a-1.apk"},
		{name: "parent segments stay below program dir", out: "../../etc", want: "/opt/apkfetch/etc/a-1.apk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.ResolveDestination("/opt/apkfetch", tt.out, "a-1.apk")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDestination_SymlinkStaysBelowProgramDir(t *testing.T) {
	programDir := t.TempDir()
	require.NoError(t, os.Symlink("/", filepath.Join(programDir, "escape")))

	got, err := app.ResolveDestination(programDir, "escape/srv", "a-1.apk")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(programDir, "srv", "a-1.apk"), got)
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, app.SleepContext(context.Background(), 0))
	require.NoError(t, app.SleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, app.SleepContext(ctx, time.Hour), context.Canceled)
}
