package models

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/kcc/internal/common"
)

// SchemeFile is the scheme assumed when an address carries none.
const SchemeFile = "file"

var schemePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+:`)

// Host locates topic data as a (scheme, path) pair.
type Host struct {
	scheme string
	path   string
}

// ParseHost resolves an address of the form [<scheme>:]<path>.
//
//	/var/kcc            -> file, /var/kcc
//	file:/var/kcc       -> file, /var/kcc
//	file:///var/kcc     -> file, /var/kcc
//	mem:room            -> mem, room
func ParseHost(address string) (Host, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Host{}, common.NewValidationError("host address", address, "it must not be empty")
	}

	scheme, rest := SchemeFile, address
	if loc := schemePattern.FindStringIndex(address); loc != nil {
		scheme = strings.ToLower(address[:loc[1]-1])
		rest = address[loc[1]:]
	}

	if strings.HasPrefix(rest, "//") {
		u, err := url.Parse(scheme + ":" + rest)
		if err != nil {
			return Host{}, common.NewValidationError("host address", address, err.Error())
		}
		rest = u.Path
	}

	if rest == "" {
		return Host{}, common.NewValidationError("host address", address, "it must contain a path")
	}
	if scheme == SchemeFile {
		rest = filepath.Clean(rest)
	}

	return Host{scheme: scheme, path: rest}, nil
}

func (h Host) Scheme() string {
	return h.scheme
}

func (h Host) Path() string {
	return h.path
}

func (h Host) IsZero() bool {
	return h == Host{}
}

// String renders the host in the form ParseHost accepts.
func (h Host) String() string {
	return h.scheme + ":" + h.path
}
