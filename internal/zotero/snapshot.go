package zotero

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// snapshotName is the file name of the disposable database copy.
const snapshotName = "zotero-snapshot.sqlite"

// snapshot copies the source database into dir and returns the copy's path
// together with a cleanup func. The cleanup must run on every exit path of
// the load cycle.
func snapshot(src, dir string) (string, func(), error) {
	in, err := os.Open(src)
	if err != nil {
		return "", nil, fmt.Errorf("opening zotero database: %w", err)
	}
	defer in.Close()

	dst := filepath.Join(dir, snapshotName)
	out, err := os.Create(dst)
	if err != nil {
		return "", nil, fmt.Errorf("creating database snapshot: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", nil, fmt.Errorf("copying zotero database: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", nil, fmt.Errorf("writing database snapshot: %w", err)
	}

	return dst, func() { os.Remove(dst) }, nil
}
