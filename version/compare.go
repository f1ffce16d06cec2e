package version

import (
	goversion "github.com/hashicorp/go-version"
)

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal. A leading "v" is accepted
// on either side, matching how release tags are written.
func Compare(a, b string) (int, error) {
	av, err := goversion.NewVersion(a)
	if err != nil {
		return 0, err
	}

	bv, err := goversion.NewVersion(b)
	if err != nil {
		return 0, err
	}

	return av.Compare(bv), nil
}
