package world

import (
	"crypto/sha256"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Persister writes occupancy snapshots to disk under content-addressed
// filenames, so re-running the same scan sequence never clobbers a
// prior snapshot and identical beliefs collapse to the same file.
type Persister struct {
	Folder string
}

// NewPersister returns a Persister rooted at folder. The folder is
// created lazily on the first Save.
func NewPersister(folder string) *Persister {
	return &Persister{Folder: folder}
}

// Save serializes pred and writes it to <Folder>/<digest>.json, where
// digest is the base58-encoded SHA-256 of the grid contents. It returns
// the path written.
func (p *Persister) Save(pred Prediction) (string, error) {
	if err := os.MkdirAll(p.Folder, 0o755); err != nil {
		return "", errors.Wrap(err, "world: creating snapshot folder")
	}

	payload, err := json.Marshal(snapshot{
		OriginX: pred.Origin.X,
		OriginY: pred.Origin.Y,
		Grid:    pred.Grid,
	})
	if err != nil {
		return "", errors.Wrap(err, "world: encoding snapshot")
	}

	name := base58.Encode(digest(payload)) + ".json"
	path := filepath.Join(p.Folder, name)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", errors.Wrap(err, "world: writing snapshot")
	}
	return path, nil
}

type snapshot struct {
	OriginX, OriginY float64
	Grid             [][]float64
}

func digest(payload []byte) []byte {
	sum := sha256.Sum256(payload)
	return sum[:]
}
