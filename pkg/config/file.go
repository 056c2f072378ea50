package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mlindgren/cpolar/pkg/polar"
	"github.com/mlindgren/cpolar/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Decimals: ptr.To(0),
		Unit:     ptr.To(string(polar.Degrees)),
		Color:    ptr.To(true),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	Decimals *int    `json:"decimals,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Color    *bool   `json:"color,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		Decimals: ptr.To(c.Decimals()),
		Unit:     ptr.To(c.Unit()),
		Color:    ptr.To(c.Color()),
	}

	return rawConfig, nil
}

func (f *File) Decimals() int {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Decimals != nil {
		return *f.c.Decimals
	}

	return *defaultFileConfig.Decimals
}

func (f *File) Unit() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Unit != nil {
		return *f.c.Unit
	}

	return *defaultFileConfig.Unit
}

func (f *File) Color() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Color != nil {
		return *f.c.Color
	}

	return *defaultFileConfig.Color
}

func (f *File) SetDecimals(i int) {
	if f.c == nil {
		panic("config is nil")
	}

	if i < 0 {
		panic("decimal count must not be negative")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Decimals = &i
}

func (f *File) SetUnit(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	if _, err := polar.ParseUnit(s); err != nil {
		panic("unit must be either \"deg\" or \"rad\"")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Unit = &s
}

func (f *File) SetColor(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Color = &b
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	configString := string(b)

	if strings.TrimSpace(configString) == "" {
		// If the file is empty, return the empty config.
		// Do not make f.c a nil.
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"decimals": f.Decimals(),
		"unit":     f.Unit(),
		"color":    f.Color(),
	}
}
