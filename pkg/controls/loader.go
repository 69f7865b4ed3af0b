package controls

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML screen documents.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{screens: make(map[string]Screen)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isScreenFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("controls: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawID, screen := range doc.Screens {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("controls: file %s defines an empty screen id", path)
			}
			if _, exists := store.screens[id]; exists {
				return fmt.Errorf("controls: duplicate screen %q (file %s)", id, path)
			}
			normalised, err := normaliseScreen(screen, id, path)
			if err != nil {
				return err
			}
			store.screens[id] = normalised
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Screens map[string]Screen `json:"screens" yaml:"screens"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("controls: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("controls: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("controls: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseScreen(raw Screen, id, source string) (Screen, error) {
	screen := raw
	screen.ID = id
	screen.Source = source
	screen.Controls = make([]Control, 0, len(raw.Controls))

	names := make(map[string]struct{}, len(raw.Controls))
	for idx, control := range raw.Controls {
		control.Kind = Kind(strings.ToLower(strings.TrimSpace(string(control.Kind))))
		if !control.Kind.valid() {
			return Screen{}, fmt.Errorf("controls: screen %q (file %s) control %d kind %q: %w", id, source, idx, control.Kind, ErrUnknownKind)
		}
		control.Name = strings.TrimSpace(control.Name)
		if control.Name != "" {
			if _, exists := names[control.Name]; exists {
				return Screen{}, fmt.Errorf("controls: screen %q (file %s) defines duplicate control %q", id, source, control.Name)
			}
			names[control.Name] = struct{}{}
		}
		screen.Controls = append(screen.Controls, control)
	}
	return screen, nil
}

func isScreenFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
