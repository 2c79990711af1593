// Package config handles configuration loading and the plane rectangular
// zone listing.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the CLI overrides them.
const (
	DefaultSourceEPSG = 6677 // zone IX, includes Tokyo
	DefaultTargetEPSG = 4326
	DefaultArcStep    = 5.0
)

// Config represents the root configuration file structure. The zero value
// is usable; every field is optional.
type Config struct {
	SourceEPSG int     `yaml:"source_epsg,omitempty"`
	TargetEPSG int     `yaml:"target_epsg,omitempty"`
	ArcStep    float64 `yaml:"arc_step,omitempty"`
	Compact    bool    `yaml:"compact,omitempty"`
	Zones      []Zone  `yaml:"zones,omitempty"`
}

// Zone describes one zone of the Japan Plane Rectangular CS.
type Zone struct {
	Number int    `yaml:"number" json:"number"`
	EPSG   int    `yaml:"epsg" json:"epsg"`
	Region string `yaml:"region,omitempty" json:"region,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultZones lists the JGD2011 plane rectangular zones I-XIX.
func DefaultZones() []Zone {
	return []Zone{
		{Number: 1, EPSG: 6669, Region: "Nagasaki, western Kagoshima"},
		{Number: 2, EPSG: 6670, Region: "Fukuoka, Saga, Kumamoto, Oita, Miyazaki, Kagoshima"},
		{Number: 3, EPSG: 6671, Region: "Yamaguchi, Shimane, Hiroshima"},
		{Number: 4, EPSG: 6672, Region: "Kagawa, Ehime, Tokushima, Kochi"},
		{Number: 5, EPSG: 6673, Region: "Hyogo, Tottori, Okayama"},
		{Number: 6, EPSG: 6674, Region: "Kyoto, Osaka, Fukui, Shiga, Mie, Nara, Wakayama"},
		{Number: 7, EPSG: 6675, Region: "Ishikawa, Toyama, Gifu, Aichi"},
		{Number: 8, EPSG: 6676, Region: "Niigata, Nagano, Yamanashi, Shizuoka"},
		{Number: 9, EPSG: 6677, Region: "Tokyo, Fukushima, Tochigi, Ibaraki, Saitama, Chiba, Gunma, Kanagawa"},
		{Number: 10, EPSG: 6678, Region: "Aomori, Akita, Yamagata, Iwate, Miyagi"},
		{Number: 11, EPSG: 6679, Region: "western Hokkaido (Otaru, Hakodate)"},
		{Number: 12, EPSG: 6680, Region: "central Hokkaido"},
		{Number: 13, EPSG: 6681, Region: "eastern Hokkaido (Kitami, Obihiro)"},
		{Number: 14, EPSG: 6682, Region: "Tokyo southern islands"},
		{Number: 15, EPSG: 6683, Region: "Okinawa main islands"},
		{Number: 16, EPSG: 6684, Region: "Okinawa Sakishima islands"},
		{Number: 17, EPSG: 6685, Region: "Okinawa Daito islands"},
		{Number: 18, EPSG: 6686, Region: "Tokyo Ogasawara islands"},
		{Number: 19, EPSG: 6687, Region: "Minami-Torishima"},
	}
}
