package encoder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempSuffix marks in-flight outputs. Leftovers from a killed run carry it.
const TempSuffix = ".part"

// tempPath returns a hidden, unique sibling of path.
func tempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+TempSuffix)
}

// writeAtomic runs write against a temp path and renames the result onto
// path. The temp file is removed on any failure.
func writeAtomic(path string, write func(tmp string) error) error {
	tmp := tempPath(path)
	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
