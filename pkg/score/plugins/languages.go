package plugins

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/lintwarden/pkg/score"
)

// languageSampleLimit caps how many files the census reads. The census is
// informational; it does not need to be exhaustive on large trees.
const languageSampleLimit = 500

// languageSampleBytes caps how much of each file is fed to the classifier.
const languageSampleBytes = 8 * 1024

// skippedDirs are trees that never count toward the language census.
//
//nolint:gochecknoglobals // Read-only lookup table.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

// LanguagesPlugin runs a language census over the project tree and records
// the result for the report.
type LanguagesPlugin struct {
	score.BasePlugin
}

// NewLanguagesPlugin creates the language census detector.
func NewLanguagesPlugin() *LanguagesPlugin {
	return &LanguagesPlugin{
		BasePlugin: score.NewBasePlugin("languages", "Language census"),
	}
}

// Detect classifies a bounded sample of files and records the languages
// seen, most common first.
func (p *LanguagesPlugin) Detect(ctx *score.Context) (score.Result, error) {
	counts := map[string]int{}
	sampled := 0

	_ = filepath.WalkDir(ctx.RootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if entry.IsDir() {
			if skippedDirs[entry.Name()] || strings.HasPrefix(entry.Name(), ".") && path != ctx.RootDir {
				return filepath.SkipDir
			}
			return nil
		}
		if sampled >= languageSampleLimit {
			return filepath.SkipAll
		}
		if enry.IsVendor(path) || enry.IsDotFile(path) {
			return nil
		}

		content := readSample(path)
		lang := enry.GetLanguage(filepath.Base(path), content)
		if lang == "" || enry.GetLanguageType(lang) != enry.Programming {
			return nil
		}
		counts[lang]++
		sampled++
		return nil
	})

	languages := make([]string, 0, len(counts))
	for lang := range counts {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		if counts[languages[i]] != counts[languages[j]] {
			return counts[languages[i]] > counts[languages[j]]
		}
		return languages[i] < languages[j]
	})
	ctx.Languages = languages

	if len(languages) == 0 {
		return score.Result{
			Recommendations: []string{"no programming-language sources found"},
		}, nil
	}

	return score.Result{Findings: []score.Finding{{
		Message:  fmt.Sprintf("languages in use: %s", strings.Join(languages, ", ")),
		Severity: score.SeverityInfo,
	}}}, nil
}

func readSample(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	buf := make([]byte, languageSampleBytes)
	n, _ := f.Read(buf)
	return buf[:n]
}
