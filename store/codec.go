package store

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/atakhatri/UNO-sub000/uno/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeState flattens a game state into its document field map.
func EncodeState(s *game.State) (Document, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeState rebuilds a game state from a pushed document.
func DecodeState(doc Document) (*game.State, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	s := &game.State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// clone deep-copies a document so subscribers never alias store internals.
func clone(doc Document) Document {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var copied Document
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil
	}
	return copied
}
