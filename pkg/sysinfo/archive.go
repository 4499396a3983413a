// pkg/sysinfo/archive.go
package sysinfo

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"go.uber.org/zap"
)

// unpack extracts a .tar.xz source archive into the cache and returns the
// extraction root. An archive that was already unpacked is reused.
func (s *System) unpack(archive string) (string, error) {
	base := filepath.Base(archive)
	base = strings.TrimSuffix(strings.TrimSuffix(base, ".tar.xz"), ".txz")
	dest := filepath.Join(s.CachePath, "blas_src", base)

	if fileExists(dest) {
		s.logger.Debug("reusing unpacked archive", zap.String("dir", dest))
		return dest, nil
	}

	s.logger.Debug("unpacking source archive",
		zap.String("archive", archive),
		zap.String("dest", dest))

	tmp := dest + ".partial"
	if err := os.RemoveAll(tmp); err != nil {
		return "", fmt.Errorf("clearing %s: %w", tmp, err)
	}
	if err := extractTarXz(archive, tmp); err != nil {
		os.RemoveAll(tmp)
		return "", err
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("moving %s into place: %w", dest, err)
	}
	return dest, nil
}

// extractTarXz extracts the directories and regular files of an xz-compressed tarball
func extractTarXz(archive, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	xzReader, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("creating xz reader: %w", err)
	}
	tarReader := tar.NewReader(xzReader)

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		cleanPath := strings.TrimPrefix(header.Name, "./")
		if cleanPath == "" || cleanPath == "." {
			continue
		}
		targetPath := filepath.Join(dest, cleanPath)
		if !strings.HasPrefix(targetPath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("tar entry %q escapes destination", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}
			if err := writeFile(targetPath, tarReader, os.FileMode(header.Mode)&0777); err != nil {
				return err
			}
		default:
			// links and devices are not part of a source tree
		}
	}
	return nil
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return out.Close()
}
