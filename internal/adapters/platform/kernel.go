package platform

import "strings"

// isWSLKernel matches kernel releases such as 5.15.90.1-microsoft-standard-WSL2
func isWSLKernel(release string) bool {
	return strings.Contains(strings.ToLower(release), "microsoft")
}
