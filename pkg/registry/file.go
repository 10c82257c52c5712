package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bits0rcerer/valence-worldgen/pkg/densityfunction"
	"github.com/bits0rcerer/valence-worldgen/pkg/noise"
)

var fileJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// FileRegistry resolves documents from a directory tree laid out the way a
// vanilla data pack is: data/<namespace>/worldgen/{density_function,noise,
// noise_settings}/<path>.json, relative to Root. Each document kind has its
// own double-checked-locking cache so a hot lookup never blocks on disk.
type FileRegistry struct {
	Root string
	root Registry // falls back to self when nil

	densityFunctionsMu sync.RWMutex
	densityFunctions   map[densityfunction.Identifier]densityfunction.Tree

	noisesMu sync.RWMutex
	noises   map[densityfunction.Identifier]noise.Parameters

	settingsMu sync.RWMutex
	settings   map[densityfunction.Identifier]densityfunction.NoiseGeneratorSettings
}

// NewFileRegistry builds a FileRegistry rooted at root. If rootRegistry is
// non-nil, RootRegistry() defers to it (for layering a user data pack over
// vanilla's), otherwise the FileRegistry is its own root.
func NewFileRegistry(root string, rootRegistry Registry) *FileRegistry {
	return &FileRegistry{
		Root:             root,
		root:             rootRegistry,
		densityFunctions: make(map[densityfunction.Identifier]densityfunction.Tree),
		noises:           make(map[densityfunction.Identifier]noise.Parameters),
		settings:         make(map[densityfunction.Identifier]densityfunction.NoiseGeneratorSettings),
	}
}

func (r *FileRegistry) RootRegistry() Registry {
	if r.root != nil {
		return r.root
	}
	return r
}

func (r *FileRegistry) dataPath(kind string, id densityfunction.Identifier) string {
	return filepath.Join(r.Root, id.DataPath(kind))
}

func (r *FileRegistry) loadFile(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithField("path", path).WithError(err).Error("registry: failed to read document")
		return fmt.Errorf("registry: reading %s: %w", path, err)
	}
	if err := fileJSON.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("registry: decoding %s: %w", path, err)
	}
	return nil
}

func (r *FileRegistry) DensityFunction(id densityfunction.Identifier) (densityfunction.Tree, error) {
	r.densityFunctionsMu.RLock()
	t, ok := r.densityFunctions[id]
	r.densityFunctionsMu.RUnlock()
	if ok {
		return t, nil
	}

	path := r.dataPath("density_function", id)
	if err := r.loadFile(path, &t); err != nil {
		return densityfunction.Tree{}, err
	}

	r.densityFunctionsMu.Lock()
	defer r.densityFunctionsMu.Unlock()
	if existing, ok := r.densityFunctions[id]; ok {
		return existing, nil
	}
	r.densityFunctions[id] = t
	logrus.WithField("id", id).Debug("registry: loaded density function")
	return t, nil
}

func (r *FileRegistry) Noise(id densityfunction.Identifier) (noise.Parameters, error) {
	r.noisesMu.RLock()
	p, ok := r.noises[id]
	r.noisesMu.RUnlock()
	if ok {
		return p, nil
	}

	path := r.dataPath("noise", id)
	if err := r.loadFile(path, &p); err != nil {
		return noise.Parameters{}, err
	}

	r.noisesMu.Lock()
	defer r.noisesMu.Unlock()
	if existing, ok := r.noises[id]; ok {
		return existing, nil
	}
	r.noises[id] = p
	logrus.WithField("id", id).Debug("registry: loaded noise")
	return p, nil
}

func (r *FileRegistry) NoiseGeneratorSettings(id densityfunction.Identifier) (densityfunction.NoiseGeneratorSettings, error) {
	r.settingsMu.RLock()
	s, ok := r.settings[id]
	r.settingsMu.RUnlock()
	if ok {
		return s, nil
	}

	path := r.dataPath("noise_settings", id)
	if err := r.loadFile(path, &s); err != nil {
		return densityfunction.NoiseGeneratorSettings{}, err
	}

	r.settingsMu.Lock()
	defer r.settingsMu.Unlock()
	if existing, ok := r.settings[id]; ok {
		return existing, nil
	}
	r.settings[id] = s
	logrus.WithField("id", id).Debug("registry: loaded noise generator settings")
	return s, nil
}
