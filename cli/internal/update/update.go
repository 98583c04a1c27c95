// Package update compares the running CLI version against the latest
// published release.
package update

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/quillorm/quill/cli/internal/ui"
)

// latestKnown is the newest release the build knows about; release
// tooling stamps it. TODO: fetch from the releases API once one exists.
var latestKnown = "0.1.0"

// Check compares currentVersion against the latest known release and
// prints an upgrade hint when newer.
func Check(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}
	latest, err := version.NewVersion(latestKnown)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnown)
		fmt.Printf("\nUpdate with: go install github.com/quillorm/quill/cli@latest\n")
	}
	return nil
}
