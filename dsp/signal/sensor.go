package signal

import (
	"fmt"
	"strings"
)

// SensorKind selects the simulated sensor model.
type SensorKind int

const (
	SensorTemperature SensorKind = iota
	SensorDistance
)

var sensorNames = map[SensorKind]string{
	SensorTemperature: "temperature",
	SensorDistance:    "distance",
}

// String returns the lower-case sensor name.
func (k SensorKind) String() string {
	if s, ok := sensorNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SensorKind(%d)", int(k))
}

// Unit returns the measurement unit of the sensor.
func (k SensorKind) Unit() string {
	if k == SensorDistance {
		return "m"
	}
	return "°C"
}

// ParseSensorKind resolves a sensor name, ignoring case and surrounding space.
func ParseSensorKind(name string) (SensorKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range sensorNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSensor, name)
}

// SensorNames lists the accepted sensor names.
func SensorNames() []string {
	return []string{SensorTemperature.String(), SensorDistance.String()}
}
