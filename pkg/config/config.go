package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full set of parameters loaded from a YAML file, wiring
// together the robot's physical constants, the RRT/exploration tuning,
// and the transport/persistence settings.
type Config struct {
	RobotSize         float64  `yaml:"robot_size"`
	ScanningPrecision float64  `yaml:"scanning_precision"`
	ViewAngle         float64  `yaml:"view_angle"`
	WorldNumber       int      `yaml:"world_number"`
	LimitedView       *float64 `yaml:"limited_view"`
	SafetyDistance    float64  `yaml:"safety_distance"`
	Save              bool     `yaml:"save"`
	SaveFolder        string   `yaml:"save_folder"`
	Host              string   `yaml:"host"`
	Port              int      `yaml:"port"`

	MaxStep           float64 `yaml:"max_step"`
	MinStep           float64 `yaml:"min_step"`
	TiltTowardsGoal   float64 `yaml:"tilt_towards_goal"`
	DistanceTolerance float64 `yaml:"distance_tolerance"`
	AngleTolerance    float64 `yaml:"angle_tolerance"`
	BlurSigma         float64 `yaml:"blur_sigma"`
}

// Default returns the parameter set the source ships with.
func Default() Config {
	return Config{
		RobotSize:         10.0,
		ScanningPrecision: 20.0,
		ViewAngle:         360.0,
		WorldNumber:       1,
		SafetyDistance:    1.0,
		Save:              false,
		SaveFolder:        "./snapshots",
		Host:              "127.0.0.1",
		Port:              9999,
		MaxStep:           10.0,
		MinStep:           0.0,
		TiltTowardsGoal:   0.5,
		DistanceTolerance: 5.0,
		AngleTolerance:    3.0,
		BlurSigma:         1.0,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default and overriding whatever the file specifies.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parsing %s", path)
	}
	return cfg, nil
}
