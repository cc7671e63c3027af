package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed scenes/*.yaml
var ScenesFS embed.FS

// DefaultScene is the scene loaded when no file is given.
const DefaultScene = "demo.yaml"

// Load reads a scene file. A path that exists on disk wins, then the same
// name under prefabs/scenes/, then the embedded copy.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScenesFS.ReadFile(clean)
}

// LoadScript reads a tengo script with the same disk-first lookup as Load.
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ScriptName reduces a script path to the name it is embedded under, so that
// a watcher event and a component path can be compared.
func ScriptName(p string) string {
	return strings.TrimPrefix(cleanScriptPath(p), "scripts/")
}

// SceneName is ScriptName for scene files.
func SceneName(p string) string {
	return strings.TrimPrefix(cleanScenePath(p), "scenes/")
}

func cleanScenePath(p string) string {
	return cleanPath(p, "scenes")
}

func cleanScriptPath(p string) string {
	return cleanPath(p, "scripts")
}

func cleanPath(p, dir string) string {
	if p == "" {
		return ""
	}
	return dir + "/" + path.Base(filepath.ToSlash(p))
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
