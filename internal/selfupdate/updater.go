package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage identifies a step of the update flow for progress reporting.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

// Progress is delivered to the caller once per stage.
type Progress struct {
	Stage   Stage
	Message string
}

// ProgressFunc receives progress events during Update.
type ProgressFunc func(Progress)

// UpdateInput selects what to update to. An empty TargetVersion means the
// latest published release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// Update downloads the release archive for this platform, verifies it
// against the release's checksums.txt, and swaps the running binary in
// place. Development builds refuse to update.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, report ProgressFunc) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		report(Progress{Stage: StageCheck, Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report(Progress{Stage: StageDownload, Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, c.assetURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(Progress{Stage: StageVerify, Message: "Verifying checksum..."})
	sums, err := c.fetch(ctx, c.assetURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	if err := verifyAgainstList(archive, sums, asset); err != nil {
		return err
	}

	report(Progress{Stage: StageExtract, Message: "Extracting binary..."})
	binary, err := unpack(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(Progress{Stage: StageApply, Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(Progress{Stage: StageDone, Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// releaseAsset maps a platform to its archive name in the release. Darwin
// ships one universal archive; the rest are split per architecture.
func releaseAsset(goos, goarch string) (string, error) {
	switch goos {
	case "darwin":
		return "vinci_Darwin_all.tar.gz", nil
	case "linux":
		arch := releaseArch(goarch)
		if arch == "" {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return fmt.Sprintf("vinci_Linux_%s.tar.gz", arch), nil
	case "windows":
		arch := releaseArch(goarch)
		if arch == "" {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return fmt.Sprintf("vinci_Windows_%s.zip", arch), nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func releaseArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "386":
		return "i386"
	default:
		return ""
	}
}

func (c *Checker) assetURL(tag, name string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, name)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// verifyAgainstList checks data against the "<hex>  <name>" line for asset
// in a checksums.txt body. Lines that don't parse are skipped.
func verifyAgainstList(data, sums []byte, asset string) error {
	var want string
	for _, line := range strings.Split(string(sums), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 2 && fields[1] == asset {
			want = fields[0]
			break
		}
	}
	if want == "" {
		return fmt.Errorf("no checksum found for %s in checksums.txt", asset)
	}

	h := sha256.Sum256(data)
	got := hex.EncodeToString(h[:])
	if got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// unpack pulls the vinci binary out of a release archive. The archive kind
// follows the asset suffix: zip releases carry vinci.exe, tarballs vinci.
func unpack(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return fromZip(archive, "vinci.exe")
	}
	return fromTarGz(archive, "vinci")
}

func fromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func fromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// install writes the new binary next to the target, re-reads it to confirm
// nothing changed between write and swap, then renames it over the target
// keeping the original file mode.
func install(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}
	mode := info.Mode()

	f, err := os.CreateTemp(filepath.Dir(target), ".vinci-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(binary); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmp)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	wantHash := sha256.Sum256(binary)
	gotHash := sha256.Sum256(written)
	if !bytes.Equal(gotHash[:], wantHash[:]) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, mode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
