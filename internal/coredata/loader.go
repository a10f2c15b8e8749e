// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package coredata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"howett.net/plist"
)

const (
	bundleExt       = ".xcdatamodeld"
	versionExt      = ".xcdatamodel"
	contentsFile    = "contents"
	currentVersion  = ".xccurrentversion"
	currentVersionK = "_XCCurrentVersionName"
)

// Loader loads models from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads the model at a path on the local filesystem.
// See Loader.Load for the accepted layouts.
func LoadFile(filePath string) (*Model, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, &LoadError{Path: filePath, Err: fmt.Errorf("%w: %v", ErrModelNotFound, err)}
	}

	m, err := NewLoader(os.DirFS(filepath.Dir(abs))).Load(filepath.Base(abs))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = filePath
		}
		return nil, err
	}
	return m, nil
}

// Load loads the model at name, which may be:
//   - an .xcdatamodeld bundle (the current version is used),
//   - an .xcdatamodel directory,
//   - a Core Data "contents" file or any .xml file,
//   - a .yaml/.yml or .json model description.
//
// Errors are *LoadError values wrapping ErrModelNotFound or ErrMalformedModel.
func (l *Loader) Load(name string) (*Model, error) {
	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: %v", ErrModelNotFound, err)}
	}

	if info.IsDir() {
		switch path.Ext(name) {
		case bundleExt:
			version, err := l.currentVersion(name)
			if err != nil {
				return nil, &LoadError{Path: name, Err: err}
			}
			return l.Load(path.Join(name, version))
		case versionExt:
			return l.Load(path.Join(name, contentsFile))
		case ".momd":
			return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: compiled models (.momd) are not supported, use the %s source",
				ErrMalformedModel, bundleExt)}
		default:
			return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: directory is not a %s bundle or %s version",
				ErrMalformedModel, bundleExt, versionExt)}
		}
	}

	format, err := formatFor(name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: %v", ErrModelNotFound, err)}
	}
	defer f.Close() //nolint:errcheck

	m, err := Parse(f, format)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return m, nil
}

// currentVersion returns the name of the .xcdatamodel directory holding the
// current version of a bundle.
func (l *Loader) currentVersion(bundle string) (string, error) {
	data, err := fs.ReadFile(l.fsys, path.Join(bundle, currentVersion))
	if err == nil {
		var versionInfo map[string]any
		if _, err := plist.Unmarshal(data, &versionInfo); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMalformedModel, currentVersion, err)
		}
		name, _ := versionInfo[currentVersionK].(string)
		if name == "" {
			return "", fmt.Errorf("%w: %s: missing %s", ErrMalformedModel, currentVersion, currentVersionK)
		}
		// must name a version directory directly inside the bundle
		if path.Ext(name) != versionExt || strings.ContainsAny(name, `/\`) {
			return "", fmt.Errorf("%w: %s: %q is not a %s in the bundle", ErrMalformedModel, currentVersion, name, versionExt)
		}
		return name, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %v", ErrModelNotFound, err)
	}

	// Single-version bundles may omit the version file.
	entries, err := fs.ReadDir(l.fsys, bundle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelNotFound, err)
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() && path.Ext(e.Name()) == versionExt {
			versions = append(versions, e.Name())
		}
	}
	switch len(versions) {
	case 1:
		return versions[0], nil
	case 0:
		return "", fmt.Errorf("%w: no %s version in bundle", ErrMalformedModel, versionExt)
	default:
		return "", fmt.Errorf("%w: %d versions in bundle and no %s", ErrMalformedModel, len(versions), currentVersion)
	}
}

func formatFor(name string) (Format, error) {
	base := path.Base(name)
	switch ext := strings.ToLower(path.Ext(base)); {
	case base == contentsFile, ext == ".xml":
		return XML, nil
	case ext == ".yaml", ext == ".yml":
		return YAML, nil
	case ext == ".json":
		return JSON, nil
	case ext == ".mom", ext == ".momd":
		return 0, fmt.Errorf("%w: compiled models (%s) are not supported, use the .xcdatamodeld source", ErrMalformedModel, ext)
	default:
		return 0, fmt.Errorf("%w: unrecognized model file %q", ErrMalformedModel, base)
	}
}
