package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Ramsey-B/fern/pkg/models"
)

// readSnapshot loads a YAML or JSON snapshot fixture. JSON documents are
// valid YAML, so both go through the YAML decoder.
func readSnapshot(path string) (*models.SnapshotMessage, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return decodeSnapshot(raw)
}

// decodeSnapshot decodes straight into the models so string fields keep the
// scalar text as written. Unquoted dates and digit-only last4 values stay
// strings instead of becoming timestamps or numbers.
func decodeSnapshot(raw []byte) (*models.SnapshotMessage, error) {
	var snapshot models.SnapshotMessage
	if err := yaml.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to parse snapshot")
	}
	return &snapshot, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
