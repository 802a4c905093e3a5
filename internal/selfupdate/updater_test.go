package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "vinci_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "vinci_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "vinci_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "vinci_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "vinci_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "vinci_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "vinci_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyAgainstList(t *testing.T) {
	data := []byte("release archive bytes")
	goodLine := sumLine(data, "vinci_Linux_x86_64.tar.gz")

	t.Run("match among messy lines", func(t *testing.T) {
		sums := "garbage\n\n  \nabc  def  ghi\n" + goodLine + "fff  other.tar.gz\n"
		assert.NoError(t, verifyAgainstList(data, []byte(sums), "vinci_Linux_x86_64.tar.gz"))
	})

	t.Run("hash mismatch", func(t *testing.T) {
		sums := strings.Repeat("0", 64) + "  vinci_Linux_x86_64.tar.gz\n"
		err := verifyAgainstList(data, []byte(sums), "vinci_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing entry", func(t *testing.T) {
		err := verifyAgainstList(data, []byte(goodLine), "vinci_Windows_x86_64.zip")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})
}

func TestUnpack(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho vinci")

	t.Run("tarball", func(t *testing.T) {
		archive := buildTarGz(t, "vinci", binaryContent)
		got, err := unpack(archive, "vinci_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "vinci.exe", binaryContent)
		got, err := unpack(archive, "vinci_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("binary missing", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := unpack(archive, "vinci_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "vinci")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, install(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	// Update derives the asset from the running platform, so the fake
	// release has to serve whatever this platform asks for.
	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	binaryContent := []byte("new-vinci-binary")
	archive := buildAsset(t, asset, binaryContent)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "vinci")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := newReleaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(sumLine(archive, asset)),
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []Stage
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p Progress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageApply, StageDone}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := newReleaseServer(t, "v1.0.0", nil)

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSum := strings.Repeat("0", 64) + "  " + asset + "\n"
		server := newReleaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(badSum),
		})

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := newReleaseServer(t, "v2.0.0", nil)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// newReleaseServer fakes the GitHub API and download host for one release
// tag: the latest-release endpoint plus the given download files.
func newReleaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/vinciapp/vinci/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	for name, data := range files {
		data := data
		mux.HandleFunc(fmt.Sprintf("/vinciapp/vinci/releases/download/%s/%s", tag, name), func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(data)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// sumLine formats a checksums.txt line for data published as name.
func sumLine(data []byte, name string) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]) + "  " + name + "\n"
}

// buildAsset builds the archive kind the asset name implies, holding the
// binary under the name unpack expects for that kind.
func buildAsset(t *testing.T, asset string, binary []byte) []byte {
	t.Helper()
	if strings.HasSuffix(asset, ".zip") {
		return buildZip(t, "vinci.exe", binary)
	}
	return buildTarGz(t, "vinci", binary)
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Size:     int64(len(content)),
		Mode:     0755,
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// buildZip creates a zip archive containing a single file.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
