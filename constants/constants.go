package constants

import "os"

// NoteMap assigns MIDI note numbers to the natural notes C4 through A5.
// Read it through the pitch package; nothing writes to it after init.
var NoteMap = map[string]uint8{
	"C4": 60, "D4": 62, "E4": 64, "F4": 65, "G4": 67, "A4": 69, "B4": 71,
	"C5": 72, "D5": 74, "E5": 76, "F5": 77, "G5": 79, "A5": 81,
}

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// one quarter note per phrase note when exporting
const TicksPerQuarter = 960

const NoteVelocity = 100

const MidiChannel = 0
