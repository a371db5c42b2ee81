// Package photostore holds the object storage backends of ports.PhotoStore:
// Google Cloud Storage in production and a local directory for development.
package photostore

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
)

const defaultOriginalName = "unknown.jpg"

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// namer builds object names. rnd returns a random token, only its first
// eight characters are used.
type namer struct {
	clock kernel.Clock
	rnd   func() string
}

func newNamer(clock kernel.Clock) namer {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return namer{clock: clock, rnd: func() string { return uuid.NewString() }}
}

// objectName returns "<folder>/<file>". A desired name is sanitized and
// keeps the extension of the original name; otherwise the file is
// "<unixMillis>_<8 random hex>_<original name>".
func (n namer) objectName(upload ports.PhotoUpload) string {
	original := upload.OriginalName
	if original == "" {
		original = defaultOriginalName
	}

	var file string
	if upload.DesiredName != "" {
		file = unsafeChars.ReplaceAllString(upload.DesiredName, "_") + extension(original)
	} else {
		file = strconv.FormatInt(n.clock.Now().UnixMilli(), 10) + "_" +
			n.rnd()[:8] + "_" +
			whitespace.ReplaceAllString(original, "_")
	}

	if upload.Folder == "" {
		return file
	}
	folder := upload.Folder
	if !strings.HasSuffix(folder, "/") {
		folder += "/"
	}
	return folder + file
}

// extension keeps the leading dot. A dot at position zero is a hidden
// file, not an extension.
func extension(name string) string {
	ext := path.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}
