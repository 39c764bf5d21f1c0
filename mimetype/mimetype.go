// Package mimetype infers the content type of a file from its path alone.
// File contents are never read.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

const Unknown = "unknown"

// IsText reports whether the type inferred from path is in the text/
// category. Unknown types are not text.
func IsText(path string) bool {
	return strings.HasPrefix(TypeByPath(path), "text/")
}

// TypeByPath returns the content type for path, or Unknown.
func TypeByPath(path string) string {
	base := filepath.Base(path)

	if _, found := textFilenames[base]; found {
		return "text/plain"
	}

	if mime, isArchive := IsArchive(base); isArchive {
		return mime
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return Unknown
	}

	if t, found := textExtensions[ext]; found {
		return t
	}

	if name := ext[1:]; filetype.IsSupported(name) {
		return filetype.GetType(name).MIME.Value
	}

	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}

	return Unknown
}

func IsArchive(filename string) (string, bool) {
	filename = strings.ToLower(filename)

	if strings.HasSuffix(filename, ".tar") ||
		strings.HasSuffix(filename, ".tar.gz") ||
		strings.HasSuffix(filename, ".tgz") {
		return "application/x-tar", true
	} else if strings.HasSuffix(filename, ".zip") ||
		strings.HasSuffix(filename, ".jar") {
		return "application/zip", true
	} else if strings.HasSuffix(filename, ".gz") {
		return "application/gzip", true
	} else {
		return "", false
	}
}

var textFilenames = map[string]struct{}{
	"Dockerfile": struct{}{},
	"Gemfile":    struct{}{},
	"LICENSE":    struct{}{},
	"Makefile":   struct{}{},
	"Manifest":   struct{}{},
	"Procfile":   struct{}{},
	"README":     struct{}{},
	"Rakefile":   struct{}{},
	"fstab":      struct{}{},
	"passwd":     struct{}{},
}

var textExtensions = map[string]string{
	".asc":        "text/plain",
	".bash":       "text/x-sh",
	".bat":        "text/plain",
	".c":          "text/x-c",
	".cc":         "text/x-c++",
	".cfg":        "text/plain",
	".cnf":        "text/plain",
	".conf":       "text/plain",
	".cpp":        "text/x-c++",
	".cs":         "text/x-csharp",
	".css":        "text/css",
	".csv":        "text/csv",
	".diff":       "text/x-diff",
	".eml":        "text/plain",
	".erb":        "text/x-ruby",
	".go":         "text/x-go",
	".h":          "text/x-c",
	".hpp":        "text/x-c++",
	".htm":        "text/html",
	".html":       "text/html",
	".ini":        "text/plain",
	".java":       "text/x-java",
	".js":         "text/javascript",
	".ksh":        "text/plain",
	".log":        "text/plain",
	".markdown":   "text/markdown",
	".md":         "text/markdown",
	".patch":      "text/x-diff",
	".php":        "text/x-php",
	".pl":         "text/x-perl",
	".properties": "text/plain",
	".py":         "text/x-python",
	".rb":         "text/x-ruby",
	".rst":        "text/x-rst",
	".sh":         "text/x-sh",
	".sql":        "text/x-sql",
	".text":       "text/plain",
	".tmpl":       "text/plain",
	".tsv":        "text/tab-separated-values",
	".txt":        "text/plain",
	".xml":        "text/xml",
	".yaml":       "text/x-yaml",
	".yml":        "text/x-yaml",
}
