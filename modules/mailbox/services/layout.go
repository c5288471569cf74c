package services

import (
	"bytes"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Columns holds 0-based column indexes of the mailbox sheets.
type Columns struct {
	EndMarker             int `yaml:"end_marker" validate:"gte=0"`
	ProbationAreaCode     int `yaml:"probation_area_code" validate:"gte=0"`
	LocalDeliveryUnitCode int `yaml:"local_delivery_unit_code" validate:"gte=0"`
	TeamCode              int `yaml:"team_code" validate:"gte=0"`
	FunctionalMailbox     int `yaml:"functional_mailbox" validate:"gte=0"`
}

// Layout describes where the workbook is, which sheets to read and where the
// SQL goes.
type Layout struct {
	Input   string   `yaml:"input" validate:"required"`
	Output  string   `yaml:"output" validate:"required"`
	Sheets  []string `yaml:"sheets" validate:"required,min=1,dive,required"`
	Columns Columns  `yaml:"columns"`
}

var validate = validator.New()

// ParseLayout decodes and validates a YAML layout document. Unknown keys are
// rejected.
func ParseLayout(b []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Layout{}, errors.Wrap(err, "decode layout")
	}
	if err := validate.Struct(l); err != nil {
		return Layout{}, errors.Wrap(err, "invalid layout")
	}
	return l, nil
}
