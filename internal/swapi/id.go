package swapi

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Relay type names used in SWAPI global ids.
const (
	TypeFilms  = "films"
	TypePeople = "people"
)

// ErrInvalidID reports an id that is not a base64 "<type>:<id>" pair.
var ErrInvalidID = errors.New("invalid relay id")

// EncodeID builds the global id of an object, e.g. EncodeID("films", "1") == "ZmlsbXM6MQ==".
func EncodeID(typeName, localID string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + ":" + localID))
}

// DecodeID splits a global id into its type name and per-type id.
func DecodeID(id string) (typeName, localID string, err error) {
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil {
		return "", "", ErrInvalidID
	}
	typeName, localID, ok := strings.Cut(string(raw), ":")
	if !ok || typeName == "" || localID == "" {
		return "", "", ErrInvalidID
	}
	return typeName, localID, nil
}

// CheckID verifies that id is a global id of the given type.
func CheckID(id, typeName string) error {
	got, _, err := DecodeID(id)
	if err != nil {
		return err
	}
	if got != typeName {
		return ErrInvalidID
	}
	return nil
}
