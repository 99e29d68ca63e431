package markdown

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the staging files created next to each export target.
const TempFilePrefix = "nfa-export-"

// writeFileAtomic stages data in a synced temp file in the target directory
// and renames it over path, so readers see either the old or the new file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	name := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err = os.Chmod(name, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err = os.Rename(name, path); err != nil {
		return errors.Join(fmt.Errorf("failed to move export into place: %s", path), err)
	}
	return nil
}
