// Package descriptor builds, writes and reads the JSON metadata file that
// sits next to a deployed mod's pak.
package descriptor

import (
	"encoding/json"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/errors"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/filesystem"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/logging"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// Extension of descriptor files
const Extension = ".uplugin"

// Document is the on-disk descriptor. Optional keys are omitted entirely
// when unset.
type Document struct {
	Name            string `json:"Name"`
	Description     string `json:"Description"`
	Version         string `json:"Version"`
	CreatedBy       string `json:"CreatedBy"`
	SteamAppID      *int   `json:"SteamAppID,omitempty"`
	SteamWorkshopID string `json:"SteamWorkshopId,omitempty"`
}

// Build maps a mod onto a document. SteamAppID is set only for a positive
// publishAppID.
func Build(mod *types.ModDescriptor, publishAppID int) Document {
	doc := Document{
		Name:            mod.DisplayName(),
		Description:     mod.Description,
		Version:         mod.Version,
		CreatedBy:       mod.CreatedBy,
		SteamWorkshopID: mod.WorkshopID,
	}
	if publishAppID > 0 {
		id := publishAppID
		doc.SteamAppID = &id
	}
	return doc
}

// Encode serializes a document with tab indentation
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDescriptorEncode, "failed to encode descriptor")
	}
	return data, nil
}

// Decode parses descriptor bytes
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, errors.ErrModParse, "failed to parse descriptor")
	}
	return doc, nil
}

// Write builds the descriptor for mod and writes it to targetPath through
// the gate, overwriting any existing file.
func Write(gate *filesystem.Gate, mod *types.ModDescriptor, publishAppID int, targetPath string) error {
	logger := logging.GetLogger("descriptor")

	data, err := Encode(Build(mod, publishAppID))
	if err != nil {
		logger.Error().Err(err).Str("mod", mod.ID()).Msg("Failed to serialize descriptor")
		return err
	}

	if err := gate.WriteFile(targetPath, data, true); err != nil {
		return err
	}
	logger.Info().Str("mod", mod.ID()).Str("path", targetPath).Msg("Wrote mod descriptor")
	return nil
}

// Read loads a descriptor from path
func Read(fsys types.FS, path string) (Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrFileNotFound, "failed to read descriptor '%s'", path)
	}
	return Decode(data)
}
