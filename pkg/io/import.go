package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// ReadJSON decodes a layout document from r and validates it.
//
// ReadJSON returns an INVALID_FORMAT error for malformed JSON and the
// validation error from [Document.Validate] otherwise. A document without an
// ID is assigned a fresh one. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	return &doc, nil
}

// ImportJSON reads the layout document at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
