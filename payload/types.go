package payload

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Language identifies the language the remote service runs the code with.
type Language string

// Supported languages.
const (
	LanguagePython Language = "python"
	LanguageR      Language = "R"
)

// OutputMode is the rendering hint passed to the backend through the
// directive line.
type OutputMode string

// Supported output modes.
const (
	ModeStatic      OutputMode = "static"
	ModeInteractive OutputMode = "interactive"
	Mode3D          OutputMode = "3d"
)

// Defaults applied by callers that start from an empty form.
const (
	DefaultLanguage   = LanguagePython
	DefaultOutputMode = ModeInteractive
)

var (
	languages   = []Language{LanguagePython, LanguageR}
	outputModes = []OutputMode{ModeStatic, ModeInteractive, Mode3D}

	extensions = map[Language]string{
		LanguagePython: ".py",
		LanguageR:      ".R",
	}
)

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// OutputModes returns the supported output modes in display order.
func OutputModes() []OutputMode {
	out := make([]OutputMode, len(outputModes))
	copy(out, outputModes)
	return out
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := extensions[l]
	return ok
}

// Extension returns the source file extension the backend uses for l,
// or "" if l is not supported.
func (l Language) Extension() string {
	return extensions[l]
}

// Valid reports whether m is one of the supported output modes.
func (m OutputMode) Valid() bool {
	for _, candidate := range outputModes {
		if m == candidate {
			return true
		}
	}
	return false
}

// foldKey returns the case-folded form of s. A Caser is stateful, so a fresh
// one is used per call.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

// ParseLanguage resolves s to a supported language, ignoring case and
// surrounding whitespace.
func ParseLanguage(s string) (Language, error) {
	key := foldKey(strings.TrimSpace(s))
	for _, l := range languages {
		if foldKey(string(l)) == key {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// ParseOutputMode resolves s to a supported output mode, ignoring case and
// surrounding whitespace.
func ParseOutputMode(s string) (OutputMode, error) {
	key := foldKey(strings.TrimSpace(s))
	for _, m := range outputModes {
		if foldKey(string(m)) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutputMode, s)
}

// LanguageForFile infers the language from a source file name.
// The extension match is case-insensitive, so "plot.r" resolves to R.
func LanguageForFile(path string) (Language, bool) {
	ext := foldKey(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	for _, l := range languages {
		if foldKey(l.Extension()) == ext {
			return l, true
		}
	}
	return "", false
}
