package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.toml"

// DefaultConfigPath returns $XDG_CONFIG_HOME/tagcloud/config.toml (or the
// platform equivalent). It returns "" if no config directory is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tagcloud", ConfigFileName)
}

// LoadConfig reads pipeline options from a TOML file:
//
//	source  = "words"
//	words_file = "README.md"
//	center  = { x = 400, y = 300 }
//	formats = ["svg", "png"]
//	style   = "palette"
//
// Unknown keys are rejected so typos do not go unnoticed. Defaults are not
// applied; call ValidateAndSetDefaults after merging flags.
func LoadConfig(path string) (Options, error) {
	var opts Options
	md, err := toml.DecodeFile(path, &opts)
	if os.IsNotExist(err) {
		return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if opts.WordsFile != "" && !filepath.IsAbs(opts.WordsFile) {
		opts.WordsFile = filepath.Join(filepath.Dir(path), opts.WordsFile)
	}
	return opts, nil
}

// LoadDefaultConfig loads DefaultConfigPath if it exists. A missing file
// yields zero options and no error.
func LoadDefaultConfig() (Options, bool, error) {
	path := DefaultConfigPath()
	if path == "" {
		return Options{}, false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Options{}, false, nil
	}
	opts, err := LoadConfig(path)
	return opts, err == nil, err
}
