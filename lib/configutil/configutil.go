package configutil

import (
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Files lists the config files that were merged, lowest priority first.
type Files []string

// localName turns "dir/config.json5" into "dir/config.local.json5".
func localName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// readLayer decodes a single file, found is false when the file is missing
// or empty.
func readLayer[T any](path string) (out T, found bool, err error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(contents) == 0 {
		return out, false, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, err
	}
	return out, true, nil
}

// ReadFiles reads `name` (it must carry an extension) and merges
// `<name>.local.<ext>` over it. The files that were found are returned,
// os.ErrNotExist when there were none.
func ReadFiles[T any](name string) (T, Files, error) {
	var files Files

	out, found, err := readLayer[T](name)
	if err != nil {
		return out, nil, err
	}
	if found {
		files = append(files, name)
	}

	local := localName(name)
	override, found, err := readLayer[T](local)
	if err != nil {
		return out, nil, err
	}
	if found {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, nil, err
		}
		files = append(files, local)
	}

	if len(files) == 0 {
		return out, nil, os.ErrNotExist
	}
	return out, files, nil
}

func ReadConfig[T any](name string) (T, error) {
	out, _, err := ReadFiles[T](name)
	return out, err
}

// ReadRecursively goes up the filesystem from the cwd until it finds a
// directory containing `name` (or its local override).
func ReadRecursively[T any](name string) (T, Files, error) {
	var empty T

	current, err := os.Getwd()
	if err != nil {
		return empty, nil, err
	}

	for {
		config, files, err := ReadFiles[T](filepath.Join(current, name))
		if err == nil {
			return config, files, nil
		}
		if !os.IsNotExist(err) {
			return empty, nil, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return empty, nil, os.ErrNotExist
		}
		current = parent
	}
}
