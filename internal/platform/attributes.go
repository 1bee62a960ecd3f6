package platform

import (
	"io/fs"

	"github.com/desertwitch/fsmeta/internal/schema"
)

// rawFromFileInfo builds a [schema.RawStat] without native mode or ownership
// from a [fs.FileInfo], deriving the attributes from its Go file mode.
func rawFromFileInfo(fi fs.FileInfo) *schema.RawStat {
	return &schema.RawStat{
		UID:        schema.NoID,
		GID:        schema.NoID,
		Size:       fi.Size(),
		ModifiedAt: fi.ModTime(),
		Attributes: schema.Attributes{
			ReadOnly:     fi.Mode().Perm()&0o200 == 0,
			Directory:    fi.IsDir(),
			ReparsePoint: fi.Mode()&fs.ModeSymlink != 0,
		},
	}
}
