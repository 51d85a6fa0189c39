package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

const appDirName = "prolixo"

// PathResolver locates the per-user directories for config and cache files.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
	cacheDir      string
}

// NewPathResolver creates a resolver anchored at the running executable.
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir),
		cacheDir:      platformCacheDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s, cacheDir=%s",
		pr.executableDir, pr.configDir, pr.cacheDir)
	return pr, nil
}

// platformConfigDir returns the appropriate config directory for the platform
func platformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin", "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appDirName)
		}
		return filepath.Join(homeDir, ".config", appDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appDirName)
	default:
		return filepath.Join(homeDir, "."+appDirName)
	}
}

// platformCacheDir returns the cache directory, honoring XDG_CACHE_HOME.
func platformCacheDir(homeDir string) string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appDirName)
	}
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appDirName)
		}
	}
	return filepath.Join(homeDir, ".cache", appDirName)
}

// GetConfigPath returns the full path for a config file.
// Falls back through home and temp locations when the preferred
// directory is not writable.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, "."+appDirName),
		filepath.Join(os.TempDir(), appDirName),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// GetCachePath returns the full path for a cache file, creating the cache
// directory when needed. An empty string means no writable location exists
// and caching should be skipped.
func (pr *PathResolver) GetCachePath(filename string) string {
	if pr.ensureWritableDir(pr.cacheDir) {
		return filepath.Join(pr.cacheDir, filename)
	}
	fallback := filepath.Join(os.TempDir(), appDirName)
	if pr.ensureWritableDir(fallback) {
		log.Warnf("Using fallback cache location: %s", fallback)
		return filepath.Join(fallback, filename)
	}
	log.Warn("No writable cache directory found, disabling disk cache")
	return ""
}

// ensureWritableDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureWritableDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create directory %s: %v", dir, err)
		return false
	}
	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("Directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}
