package rig

import (
	"github.com/milk9111/camrig/prefabs"
)

// Watch starts hot reload over dirs. Scene edits rebuild the world and signal
// ready again; script edits recompile the affected scripts.
func (r *Rig) Watch(dirs ...string) error {
	if r.watcher != nil {
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	r.watcher = w
	return nil
}

func (r *Rig) Close() error {
	if r.watcher == nil {
		return nil
	}
	err := r.watcher.Close()
	r.watcher = nil
	return err
}

func (r *Rig) pollWatcher() {
	if r.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-r.watcher.Changes:
			if !ok {
				return
			}
			r.FileChanged(c.Path)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Error().Err(err).Msg("watch")
		default:
			return
		}
	}
}

// FileChanged applies one edited file.
func (r *Rig) FileChanged(name string) {
	kind, ok := prefabs.ClassifyPath(name)
	if !ok {
		return
	}
	switch kind {
	case prefabs.ChangeScript:
		r.log.Info().Str("script", name).Msg("script changed")
		r.scripts.Reload(name)
	case prefabs.ChangeScene:
		if prefabs.SceneName(name) == prefabs.SceneName(r.Scene.Path) {
			r.reloadScene(name)
		}
	}
}

func (r *Rig) reloadScene(name string) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		r.log.Error().Err(err).Str("scene", name).Msg("reload scene")
		return
	}
	if err := r.load(spec, r.Scene.Path); err != nil {
		r.log.Error().Err(err).Str("scene", name).Msg("reload scene")
		return
	}
	r.scripts.Reload("")
	r.bounds.Clear()
	r.log.Info().Str("scene", name).Int("entities", len(r.Scene.Order)).Msg("scene reloaded")
	r.SignalReady()
}
