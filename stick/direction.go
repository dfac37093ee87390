package stick

import "fmt"

// Direction is a coarse compass classification of the stick offset.
type Direction uint8

const (
	DirC  Direction = iota // inside both dead zones
	DirN                   // up
	DirNE                  // up and right
	DirE                   // right
	DirSE                  // down and right
	DirS                   // down
	DirSW                  // down and left
	DirW                   // left
	DirNW                  // up and left
)

var directionNames = [...]string{"C", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass label ("C", "N", "NE", ...).
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a compass label back into a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return DirC, fmt.Errorf("stick: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler so Directions serialize as
// their labels.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Classify maps an offset from center (dx, dy in region units, Y down) to a
// Direction. The vertical component is decided first and the horizontal one
// appended, so compound labels read NE/NW/SE/SW. Offsets exactly on a
// dead-zone bound count as inside it.
func Classify(dx, dy, deadH, deadV float64) Direction {
	var vert int // -1 north, 0 center row, 1 south
	switch {
	case dy < -deadV:
		vert = -1
	case dy > deadV:
		vert = 1
	}

	var horiz int // -1 west, 0 none, 1 east
	switch {
	case dx < -deadH:
		horiz = -1
	case dx > deadH:
		horiz = 1
	}

	switch vert {
	case -1:
		switch horiz {
		case -1:
			return DirNW
		case 1:
			return DirNE
		}
		return DirN
	case 1:
		switch horiz {
		case -1:
			return DirSW
		case 1:
			return DirSE
		}
		return DirS
	}
	switch horiz {
	case -1:
		return DirW
	case 1:
		return DirE
	}
	return DirC
}
