package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LanguageInfo holds the fields of a language definition relevant for file
// detection.
type LanguageInfo struct {
	Type         string   `yaml:"type"`
	Extensions   []string `yaml:"extensions"`
	Filenames    []string `yaml:"filenames"`
	Interpreters []string `yaml:"interpreters"`
}

// LanguageMap maps language names (e.g., "Go") to their details.
type LanguageMap map[string]LanguageInfo

// LoadedLanguageData holds the parsed language map and lookup indexes.
type LoadedLanguageData struct {
	Langs        LanguageMap
	extensionMap map[string]string
	filenameMap  map[string]string
}

// loadLanguageData loads languages.yml from the standard config locations.
// Language data is optional: when absent, directory sources count every
// non-excluded file.
func loadLanguageData() (*LoadedLanguageData, error) {
	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "count"))
	}
	configPaths = append(configPaths, ".")

	var langFilePath string
	for _, p := range configPaths {
		testPath := filepath.Join(p, "languages.yml")
		if _, err := os.Stat(testPath); err == nil {
			langFilePath = testPath
			break
		}
	}
	if langFilePath == "" {
		return nil, fmt.Errorf("languages.yml not found in standard config locations")
	}

	yamlFile, err := os.ReadFile(langFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading language file %s: %w", langFilePath, err)
	}

	var langs LanguageMap
	if err := yaml.Unmarshal(yamlFile, &langs); err != nil {
		return nil, fmt.Errorf("error parsing language file %s: %w", langFilePath, err)
	}

	data := &LoadedLanguageData{
		Langs:        langs,
		extensionMap: make(map[string]string),
		filenameMap:  make(map[string]string),
	}
	for langName, info := range langs {
		for _, ext := range info.Extensions {
			lowerExt := strings.ToLower(ext)
			if data.extensionMap[lowerExt] == "" {
				data.extensionMap[lowerExt] = langName
			}
		}
		for _, fname := range info.Filenames {
			if data.filenameMap[fname] == "" {
				data.filenameMap[fname] = langName
			}
		}
	}
	return data, nil
}

// GetLanguageForFile determines the language for a path based on loaded data.
func (ld *LoadedLanguageData) GetLanguageForFile(filePath string) (string, bool) {
	if ld == nil {
		return "", false
	}

	baseName := filepath.Base(filePath)
	ext := strings.ToLower(filepath.Ext(baseName))

	// Exact filename match takes precedence over the extension.
	if lang, ok := ld.filenameMap[baseName]; ok {
		return lang, true
	}
	if ext != "" {
		if lang, ok := ld.extensionMap[ext]; ok {
			return lang, true
		}
	}
	return "", false
}
