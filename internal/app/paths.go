package app

import (
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveDestination returns the path an artifact named fileName is saved to.
// The output location is always joined below programDir, including absolute
// custom locations: "/srv/out" resolves to <programDir>/srv/out. Neither ".."
// segments nor symlinks below programDir can move the result outside of it.
func ResolveDestination(programDir, out, fileName string) (string, error) {
	if out == "" {
		out = domain.DefaultOutDir
	}
	dest, err := securejoin.SecureJoin(programDir, filepath.Join(out, fileName))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDestinationInvalid.Error()), "out", out)
	}
	return dest, nil
}

// executableDir returns the directory of the running binary with symlinks resolved.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrProgramDirUnknown.Error())
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
