package domain

import "strings"

// LooksLikeWindowsPath reports whether p uses the native Windows namespace:
// a drive letter (C:), a UNC prefix (\\server) or any backslash.
// A WSL path containing a backslash (an escaped space, say) is misclassified.
func LooksLikeWindowsPath(p string) bool {
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		return true
	}
	return strings.Contains(p, `\`)
}

// JoinWindowsPath joins path elements with backslashes regardless of host OS
func JoinWindowsPath(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		if i > 0 {
			e = strings.TrimLeft(e, `\/`)
		}
		if i < len(elem)-1 {
			e = strings.TrimRight(e, `\/`)
		}
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.ReplaceAll(strings.Join(parts, `\`), "/", `\`)
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
