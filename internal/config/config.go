// Package config loads the CLI defaults file: per-deployment settings like
// the feature namespace, layer and spatial reference that would otherwise
// be repeated on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	wfst "github.com/beetlebugorg/wfst/pkg/v1"
)

// Config mirrors wfst.TransactionOptions in YAML form.
type Config struct {
	Ns              string            `yaml:"ns"`
	Layer           string            `yaml:"layer"`
	SrsName         string            `yaml:"srsName"`
	SrsDimension    int               `yaml:"srsDimension"`
	GeometryName    string            `yaml:"geometryName"`
	Whitelist       []string          `yaml:"whitelist"`
	TypeName        string            `yaml:"typeName"`
	InputFormat     string            `yaml:"inputFormat"`
	Handle          string            `yaml:"handle"`
	Version         string            `yaml:"version"`
	LockID          string            `yaml:"lockId"`
	ReleaseAction   string            `yaml:"releaseAction"`
	CoordinateOrder string            `yaml:"coordinateOrder"`
	NsAssignments   map[string]string `yaml:"nsAssignments"`
	SchemaLocations map[string]string `yaml:"schemaLocations"`
}

// NewConfig returns a new decoded Config struct
func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(&config); err != nil {
		return nil, err
	}

	return config, nil
}

// TransactionOptions converts the decoded config into encoder options.
func (c *Config) TransactionOptions() (wfst.TransactionOptions, error) {
	opts := wfst.TransactionOptions{
		Ns:              c.Ns,
		Layer:           c.Layer,
		SrsName:         c.SrsName,
		SrsDimension:    c.SrsDimension,
		GeometryName:    c.GeometryName,
		Whitelist:       c.Whitelist,
		TypeName:        c.TypeName,
		InputFormat:     c.InputFormat,
		Handle:          c.Handle,
		Version:         c.Version,
		LockID:          c.LockID,
		ReleaseAction:   c.ReleaseAction,
		NsAssignments:   c.NsAssignments,
		SchemaLocations: c.SchemaLocations,
	}

	switch c.CoordinateOrder {
	case "", "xy":
		opts.CoordinateOrder = wfst.CoordinateOrderXY
	case "yx":
		opts.CoordinateOrder = wfst.CoordinateOrderYX
	default:
		return opts, fmt.Errorf("invalid coordinateOrder %q (expected xy or yx)", c.CoordinateOrder)
	}

	return opts, nil
}
