package eslint

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"slices"
)

// configFileNames are the lint-config files whose contents feed the config
// hash. The list is a superset across config generations; missing files are
// simply skipped.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".eslintrc",
	".eslintrc.cjs",
	".eslintrc.js",
	".eslintrc.json",
	".eslintrc.yaml",
	".eslintrc.yml",
	"eslint.config.cjs",
	"eslint.config.js",
	"eslint.config.mjs",
	"eslint.config.ts",
}

// DiscoverConfigFiles returns the lint-config files present in root,
// sorted lexicographically so the config hash is deterministic regardless
// of filesystem enumeration order.
func DiscoverConfigFiles(root string) []string {
	var found []string
	for _, name := range configFileNames {
		path := filepath.Join(root, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}
	slices.Sort(found)
	return found
}

// ConfigHash computes the hex sha-256 digest over the concatenated contents
// of all discovered lint-config files in root. Changing any byte of any
// config file changes the hash; discovery order does not. No config files
// hash to the digest of the empty input.
func ConfigHash(root string) string {
	digest := sha256.New()
	for _, path := range DiscoverConfigFiles(root) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		digest.Write(data)
	}
	return hex.EncodeToString(digest.Sum(nil))
}
