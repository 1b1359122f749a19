// Copyright (c) 2026 Keymaster Team
// Keymirror - terminal on-screen keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files against the source tree. It
// scans the Go code for i18n.T() calls and reports keys that are used but not
// translated, keys that no code uses, and locales that lag behind English.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of a lint run.
type Report struct {
	Used      int
	Primary   int
	Undefined []string            // used in code, missing from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // per secondary locale file
}

// Failed reports whether the run found errors. Orphaned keys only warn.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	report, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys used in source code.\n", report.Used)
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", report.Primary, primaryLocale)

	printSection("Undefined Keys (used in code but not in primary locale)", report.Undefined)
	printSection("Orphaned Keys (in primary locale but not used in code)", report.Orphaned)

	files := make([]string, 0, len(report.Missing))
	for file := range report.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		printSection("Missing Keys in "+file, report.Missing[file])
	}

	fmt.Println("--- Linter Finished ---")
	switch {
	case report.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(report.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printSection(title string, keys []string) {
	fmt.Printf("--- %s ---\n", title)
	if len(keys) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, key := range keys {
		fmt.Printf("  - %s\n", key)
	}
	fmt.Println()
}

func lint(root, locales string) (Report, error) {
	used, literals, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("error finding used keys: %w", err)
	}
	for key := range used {
		literals[key] = struct{}{}
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("error loading primary locale '%s': %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, fmt.Errorf("error finding locale files: %w", err)
	}

	report := Report{
		Used:      len(used),
		Primary:   len(primary),
		Undefined: difference(used, primary),
		Orphaned:  difference(primary, literals),
		Missing:   map[string][]string{},
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("error loading %s: %w", file, err)
		}
		report.Missing[filepath.Base(file)] = difference(primary, keys)
	}
	return report, nil
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

var (
	usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// message IDs handed around as plain strings, e.g. to cobra annotations
	keyLiteralRe = regexp.MustCompile(`"([a-z]+\.[a-z_.]+)"`)
)

// findUsedKeys scans all non-test .go files. It returns the keys passed to
// i18n.T and, separately, every literal shaped like a key. Only the former
// must exist in the locales; the latter keep a key from counting as orphaned.
func findUsedKeys(root string) (used, literals map[string]struct{}, err error) {
	used = make(map[string]struct{})
	literals = make(map[string]struct{})
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// tools and underscore-prefixed directories are not part of the build
			if path != root && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_") || strings.HasPrefix(info.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			used[match[1]] = struct{}{}
		}
		for _, match := range keyLiteralRe.FindAllStringSubmatch(string(content), -1) {
			literals[match[1]] = struct{}{}
		}
		return nil
	})
	return used, literals, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Keys that
// already contain dots, like "status.caps", are kept as written.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
