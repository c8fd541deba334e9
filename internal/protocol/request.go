package protocol

import (
	"path/filepath"
	"sort"
	"strings"
)

// UnitSeparator joins request tokens on the wire. Paths never contain this
// control character, so no escaping is needed.
const UnitSeparator = "\x1f"

// EncodeRequest builds one request line for the compile worker:
//
//	--lib <lib>  --out <out>/ebin  <out>/<artifactDir>/<module>...
//
// joined by the unit separator, without a trailing newline. Modules are
// deduplicated and sorted so the same set always encodes to the same line
// regardless of input order.
func EncodeRequest(out, lib, artifactDir string, modules []string) string {
	args := []string{
		"--lib",
		lib,
		"--out",
		filepath.Join(out, "ebin"),
	}

	seen := make(map[string]struct{}, len(modules))
	unique := make([]string, 0, len(modules))

	for _, module := range modules {
		if _, dup := seen[module]; dup {
			continue
		}

		seen[module] = struct{}{}
		unique = append(unique, module)
	}

	sort.Strings(unique)

	for _, module := range unique {
		args = append(args, filepath.Join(out, artifactDir, module))
	}

	return strings.Join(args, UnitSeparator)
}
