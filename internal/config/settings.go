package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Encoder settings
	EncoderPath string `json:"encoder_path"` // explicit encoder binary; empty means search PATH

	// Dispatch settings
	Jobs int `json:"jobs"` // parallel worker count; 0 means one per CPU

	// Artwork discovery, probed in order
	ArtworkFileNames []string `json:"artwork_file_names"`

	// Artwork preprocessing
	ResizeArtwork       bool `json:"resize_artwork"`
	ArtworkMaxSize      int  `json:"artwork_max_size"`
	ConvertArtworkToJPG bool `json:"convert_artwork_to_jpg"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		EncoderPath: "",
		Jobs:        0,
		ArtworkFileNames: []string{
			"cover.jpg", "cover.jpeg", "cover.png",
			"folder.jpg", "folder.jpeg", "folder.png",
		},
		ResizeArtwork:       false,
		ArtworkMaxSize:      1000,
		ConvertArtworkToJPG: false,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
