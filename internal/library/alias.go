package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cratekeeper/internal/errs"
)

// aliasFile is the on-disk shape of the alias registry.
type aliasFile struct {
	Aliases map[string]string `toml:"aliases"`
}

// AliasPath returns the alias registry location under the user config dir.
func AliasPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.Wrap(errs.ErrConfig, "locate user config dir", err)
	}
	return filepath.Join(dir, "cratekeeper", "aliases.toml"), nil
}

// LoadAliases reads the alias registry. A missing file yields an empty map.
func LoadAliases() (map[string]string, error) {
	path, err := AliasPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errs.Wrap(errs.ErrIO, "read aliases", err)
	}

	var file aliasFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(errs.ErrConfig, "parse aliases", err)
	}
	if file.Aliases == nil {
		file.Aliases = map[string]string{}
	}
	return file.Aliases, nil
}

// SaveAliases writes the alias registry.
func SaveAliases(aliases map[string]string) error {
	path, err := AliasPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errs.Wrap(errs.ErrIO, "create config dir", err)
	}

	data, err := toml.Marshal(aliasFile{Aliases: aliases})
	if err != nil {
		return errs.Wrap(errs.ErrConfig, "encode aliases", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.Wrap(errs.ErrIO, "write aliases", err)
	}
	return nil
}

// SetAlias registers name as an alias for root, replacing any previous
// registration of the same name.
func SetAlias(name, root string) error {
	if name == "" {
		return errs.Wrap(errs.ErrConfig, "alias name must not be empty", nil)
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return errs.Wrapf(errs.ErrConfig, "alias %q must not contain a path separator", name)
	}

	aliases, err := LoadAliases()
	if err != nil {
		return err
	}
	aliases[name] = root
	return SaveAliases(aliases)
}

// RemoveAlias deletes name from the registry, reporting whether it was
// present.
func RemoveAlias(name string) (bool, error) {
	aliases, err := LoadAliases()
	if err != nil {
		return false, err
	}
	if _, ok := aliases[name]; !ok {
		return false, nil
	}
	delete(aliases, name)
	return true, SaveAliases(aliases)
}

// LookupAlias resolves name to its registered root.
func LookupAlias(name string) (string, bool, error) {
	aliases, err := LoadAliases()
	if err != nil {
		return "", false, err
	}
	root, ok := aliases[name]
	return root, ok, nil
}

// AliasesFor returns the sorted alias names pointing at root.
func AliasesFor(root string) ([]string, error) {
	aliases, err := LoadAliases()
	if err != nil {
		return nil, err
	}

	var names []string
	for name, path := range aliases {
		if path == root {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
