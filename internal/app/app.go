// Package app implements the application layer for apkfetch.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/apkfetch/internal/adapters/telemetry"
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/apkfetch/internal/ui/status"
	"go.trai.ch/zerr"
)

// argCutset is stripped from both ends of every user supplied argument.
const argCutset = " '\""

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scanner      ports.InventoryScanner
	stores       ports.StoreClientFactory
	hasher       ports.Hasher
	receipts     ports.ReceiptStore
	tracer       ports.Tracer
	logger       ports.Logger

	status     *status.Printer
	traceOut   io.Writer
	programDir func() (string, error)
	sleep      func(context.Context, time.Duration) error
	now        func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	scanner ports.InventoryScanner,
	stores ports.StoreClientFactory,
	hasher ports.Hasher,
	receipts ports.ReceiptStore,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scanner:      scanner,
		stores:       stores,
		hasher:       hasher,
		receipts:     receipts,
		tracer:       tracer,
		logger:       log,
		status:       status.New(os.Stdout),
		traceOut:     os.Stderr,
		programDir:   executableDir,
		sleep:        sleepContext,
		now:          time.Now,
	}
}

// WithOutput redirects status lines to stdout and trace summaries to stderr.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.status = status.New(stdout)
	a.traceOut = stderr
	return a
}

// WithProgramDir fixes the directory destinations are resolved against instead of
// the directory of the running executable.
func (a *App) WithProgramDir(dir string) *App {
	a.programDir = func() (string, error) { return dir, nil }
	return a
}

// WithSleeper replaces the cooldown wait after a failed download.
func (a *App) WithSleeper(sleep func(context.Context, time.Duration) error) *App {
	a.sleep = sleep
	return a
}

// WithClock replaces the clock used to stamp download receipts.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Package         string
	CredentialsPath string
	OutPath         string
	// InventoryDir overrides the inventory directory of the config file when set.
	InventoryDir string
	ConfigPath   string
	// Trace prints a duration line per phase.
	Trace bool
}

// Run fetches the artifact for opts.Package unless the inventory already holds
// its current version. A non-nil error means the run was aborted; every other
// result is reported through the returned Outcome.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.Outcome, error) {
	pkg := strings.Trim(opts.Package, argCutset)
	if pkg == "" {
		return domain.OutcomeAborted, domain.ErrNoPackageSpecified
	}
	credentials := orDefault(strings.Trim(opts.CredentialsPath, argCutset), domain.DefaultCredentialsPath)
	out := orDefault(strings.Trim(opts.OutPath, argCutset), domain.DefaultOutDir)

	// 1. Configuration
	cfg, err := a.configLoader.Load(orDefault(opts.ConfigPath, domain.DefaultConfigFileName))
	if err != nil {
		return domain.OutcomeAborted, zerr.Wrap(err, "failed to load configuration")
	}
	inventoryDir := orDefault(opts.InventoryDir, cfg.InventoryDir)

	// 2. Telemetry
	var summary io.Writer
	if opts.Trace {
		summary = a.traceOut
	}
	shutdown := telemetry.Setup(summary)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	ctx, span := a.tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttribute("package", pkg)

	// 3. Inventory
	inventory, err := a.scan(ctx, inventoryDir)
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeAborted, err
	}

	// 4. Store client
	client, err := a.stores.New(credentials, cfg.Store)
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeAborted, err
	}

	// 5. Remote details
	details, err := a.lookup(ctx, client, pkg)
	if err != nil {
		a.status.Failure(fmt.Sprintf(`Error when downloading "%s". Unable to get app's details.`, pkg))
		a.logger.Error(err)
		span.SetAttribute("outcome", domain.OutcomeLookupFailed.String())
		return domain.OutcomeLookupFailed, nil
	}

	// 6. Freshness
	if _, _, err := inventory.LocalVersion(pkg); err != nil {
		a.logger.Warn("local version is not numeric, treating it as absent", "package", pkg, "version", inventory[pkg])
	}
	if inventory.IsUpToDate(pkg, details.VersionCode) {
		a.status.Notice("------------The same version of the apk already exists------------")
		span.SetAttribute("outcome", domain.OutcomeSkippedUpToDate.String())
		return domain.OutcomeSkippedUpToDate, nil
	}

	// 7. Destination
	programDir, err := a.programDir()
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeAborted, err
	}
	dest, err := ResolveDestination(programDir, out, domain.ArtifactFileName(details.PackageName, details.VersionCode))
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeAborted, err
	}
	a.status.Info("The APK save path is " + dest)
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "dir", filepath.Dir(dest))
		span.RecordError(err)
		return domain.OutcomeAborted, err
	}

	// 8. Download, addressed by the package name the store resolved.
	name := details.PackageName
	if err := a.download(ctx, client, name, dest); err != nil {
		a.status.Failure(fmt.Sprintf(`Error when downloading "%s".`, name))
		a.logger.Error(err)
		_ = a.sleep(ctx, cfg.Download.Cooldown)
		span.SetAttribute("outcome", domain.OutcomeDownloadFailed.String())
		return domain.OutcomeDownloadFailed, nil
	}

	a.status.Success(fmt.Sprintf(`Downloaded "%s" version %d to %s`, name, details.VersionCode, dest))
	a.record(details, dest)
	span.SetAttribute("outcome", domain.OutcomeDownloaded.String())

	return domain.OutcomeDownloaded, nil
}

func (a *App) scan(ctx context.Context, dir string) (domain.InventoryMap, error) {
	_, span := a.tracer.Start(ctx, "inventory.scan")
	defer span.End()
	span.SetAttribute("dir", dir)

	inventory, err := a.scanner.Scan(dir)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("packages", len(inventory))
	return inventory, nil
}

func (a *App) lookup(ctx context.Context, client ports.StoreClient, pkg string) (*domain.AppDetails, error) {
	ctx, span := a.tracer.Start(ctx, "store.details")
	defer span.End()

	details, err := client.AppDetails(ctx, pkg)
	if err == nil && details == nil {
		err = zerr.With(domain.ErrMetadataUnavailable, "package", pkg)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("version_code", details.VersionCode)
	return details, nil
}

func (a *App) download(ctx context.Context, client ports.StoreClient, pkg, dest string) error {
	ctx, span := a.tracer.Start(ctx, "store.download")
	defer span.End()
	span.SetAttribute("dest", dest)

	if err := client.Download(ctx, pkg, dest); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// record hashes the saved artifact and writes its receipt. Failures only warn
// since the artifact itself is already in place.
func (a *App) record(details *domain.AppDetails, dest string) {
	receipt := domain.Receipt{
		PackageName: details.PackageName,
		VersionCode: details.VersionCode,
		Path:        dest,
		Timestamp:   a.now().UTC(),
	}

	if digest, err := a.hasher.ComputeFileHash(dest); err != nil {
		a.logger.Warn("could not compute artifact digest", "error", err)
	} else {
		receipt.Digest = fmt.Sprintf("%016x", digest)
		a.logger.Info("artifact saved", "xxhash64", receipt.Digest, "path", dest)
	}

	if err := a.receipts.Put(filepath.Dir(dest), receipt); err != nil {
		a.logger.Warn("could not write download receipt", "error", err)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
