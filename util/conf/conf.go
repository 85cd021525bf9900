package conf

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"
)

// Settings holds the options of a conversion run, as read from a YAML file:
//
//	dialect: giella
//	lenient: true
//	nbest: 1
//	workers: 4
type Settings struct {
	Dialect    string `yaml:"dialect"`
	Lenient    bool   `yaml:"lenient"`
	Debug      bool   `yaml:"debug"`
	NBest      int    `yaml:"nbest"`
	Workers    int    `yaml:"workers"`
	NFC        bool   `yaml:"nfc"`
	SpaceAfter bool   `yaml:"spaceafter"`
}

func Default() *Settings {
	return &Settings{
		Dialect: "ape",
		Workers: 1,
	}
}

func (s *Settings) Validate() error {
	var result *multierror.Error
	if s.Dialect != "ape" && s.Dialect != "giella" {
		result = multierror.Append(result, fmt.Errorf("dialect must be ape or giella, got %q", s.Dialect))
	}
	if s.NBest < 0 {
		result = multierror.Append(result, fmt.Errorf("nbest must not be negative, got %d", s.NBest))
	}
	if s.Workers < 1 {
		result = multierror.Append(result, fmt.Errorf("workers must be at least 1, got %d", s.Workers))
	}
	return result.ErrorOrNil()
}

// Read decodes settings over the defaults
func Read(reader io.Reader) (*Settings, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	settings := Default()
	if err := yaml.UnmarshalStrict(data, settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func ReadFile(filename string) (*Settings, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
