// Package stick implements the platform-independent core of a virtual
// joystick: mapping region-local pointer coordinates to a clamped stick
// offset, a normalized vector in [-1, 1] per axis and a compass Direction.
//
// A Mapper owns the state of one stick. Hosts translate their pointer
// events into region coordinates and call Press, Move and Release; every
// accepted update is delivered to the Mapper's Reporter exactly once.
//
//	region := stick.NewRegion(200, 200)
//	m := stick.NewMapper(region, stick.ReporterFunc(func(s stick.Status) {
//		fmt.Println(s.X, s.Y, s.Direction)
//	}))
//	m.Press()
//	m.Move(140, 100) // 0.8 0 E
//	m.Release()      // 0 0 C
package stick
