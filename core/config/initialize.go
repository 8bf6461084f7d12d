package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the built-in configuration into the directory so a site
// can edit it. Existing files are kept. It returns the resulting
// configuration, loaded back through the normal path.
func Initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	target := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fs, target)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, keeping it", target)
	} else {
		if err := afero.WriteFile(fs, target, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logger.Printf("wrote %s", target)
	}

	return Load(fs, dir)
}
