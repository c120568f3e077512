// internal/syntax/languages.go
package syntax

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript" // JS parser used for JS and JSON
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"

	"github.com/bethropolis/seek/internal/logger"
)

// Language ties a tree-sitter grammar to file extensions.
type Language struct {
	Name           string
	TreeSitterLang *sitter.Language
	Extensions     []string
}

var (
	registryOnce  sync.Once
	extToLanguage map[string]*Language
)

func register(langs ...*Language) {
	extToLanguage = make(map[string]*Language)
	for _, lang := range langs {
		for _, ext := range lang.Extensions {
			extToLanguage[strings.ToLower(ext)] = lang
		}
	}
	logger.DebugTagf("syntax", "Registered %d languages", len(langs))
}

// ForFile returns the language for filePath by extension, or nil.
func ForFile(filePath string) *Language {
	registryOnce.Do(func() {
		js := jssrc.GetLanguage()
		register(
			&Language{Name: "Go", TreeSitterLang: gosrc.GetLanguage(), Extensions: []string{".go"}},
			&Language{Name: "Python", TreeSitterLang: pythonsrc.GetLanguage(), Extensions: []string{".py", ".pyw"}},
			&Language{Name: "JavaScript", TreeSitterLang: js, Extensions: []string{".js", ".mjs", ".cjs"}},
			&Language{Name: "JSON", TreeSitterLang: js, Extensions: []string{".json"}},
			&Language{Name: "Rust", TreeSitterLang: rustsrc.GetLanguage(), Extensions: []string{".rs"}},
		)
	})
	return extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}
