// pkg/sysinfo/layout.go
package sysinfo

import (
	"path/filepath"
	"runtime"
)

// DefaultLibraryDirs returns the library directories searched on this platform
// when nothing more specific is configured
func DefaultLibraryDirs() []string {
	return libraryDirsFor(runtime.GOOS, runtime.GOARCH)
}

// DefaultSourceDirs returns the directories searched for bundled BLAS sources
func DefaultSourceDirs() []string {
	return []string{
		filepath.Join("/usr", "local", "src", "blas"),
		filepath.Join("/usr", "src", "blas"),
		filepath.Join("/opt", "src", "blas"),
	}
}

func libraryDirsFor(goos, goarch string) []string {
	switch goos {
	case "darwin":
		// Homebrew keeps Apple Silicon installs under /opt/homebrew
		return []string{
			filepath.Join("/opt", "homebrew", "lib"),
			filepath.Join("/usr", "local", "lib"),
			filepath.Join("/opt", "local", "lib"),
			filepath.Join("/sw", "lib"),
			filepath.Join("/usr", "lib"),
		}
	case "windows":
		return []string{
			filepath.Join("C:\\", "lib"),
			filepath.Join("C:\\", "tools", "lib"),
		}
	default:
		arch := goarch
		if arch == "amd64" {
			arch = "x86_64"
		} else if arch == "arm64" {
			arch = "aarch64"
		}
		return []string{
			filepath.Join("/usr", "local", "lib"),
			filepath.Join("/opt", "lib"),
			filepath.Join("/usr", "lib", arch+"-linux-gnu"),
			filepath.Join("/usr", "lib64"),
			filepath.Join("/usr", "lib"),
			filepath.Join("/sw", "lib"),
		}
	}
}

// libraryExtensions returns file extensions to look for based on OS
func libraryExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib", ".a"}
	case "windows":
		return []string{".dll", ".lib"}
	default:
		return []string{".so", ".a"}
	}
}
