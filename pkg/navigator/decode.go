package navigator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// MaxSnapshotSize bounds the payload Decode is willing to read.
const MaxSnapshotSize = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads a JSON snapshot (as posted by a page script) and validates it.
// Decoding failures wrap ErrMalformedSnapshot, validation failures wrap
// ErrInvalidSnapshot.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(io.LimitReader(r, MaxSnapshotSize)).Decode(&s); err != nil {
		return Snapshot{}, errors.Join(ErrMalformedSnapshot, err)
	}
	if err := Validate(s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate checks the snapshot field limits.
func Validate(s Snapshot) error {
	if err := validate.Struct(s); err != nil {
		return errors.Join(ErrInvalidSnapshot, err)
	}
	return nil
}

// LoadFile reads a snapshot fixture from a YAML or JSON file.
func LoadFile(path string) (Snapshot, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Snapshot{}, errors.Join(ErrSnapshotFile, fmt.Errorf("loading %s: %w", path, err))
	}

	var s Snapshot
	if err := k.Unmarshal("", &s); err != nil {
		return Snapshot{}, errors.Join(ErrSnapshotFile, fmt.Errorf("unmarshaling %s: %w", path, err))
	}

	if err := Validate(s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
