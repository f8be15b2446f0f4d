package animation

import "fmt"

// KeyframesPrefix is the default prefix of generated @keyframes names.
const KeyframesPrefix = "funtext-keyframe"

// OffsetVariable is the name of the CSS custom property holding a
// fragment's offset for a track.
func OffsetVariable(priority int, property string) string {
	return fmt.Sprintf("--offset-%d-%s", priority, property)
}

// PlayStateVariable is the name of the CSS custom property holding the
// play state of a track.
func PlayStateVariable(priority int, property string) string {
	return fmt.Sprintf("--play-state-%d-%s", priority, property)
}

// KeyframesName is the name of the @keyframes rule of a track. An empty
// prefix selects KeyframesPrefix.
func KeyframesName(prefix string, priority int, property string) string {
	if prefix == "" {
		prefix = KeyframesPrefix
	}
	return fmt.Sprintf("%s-%d-%s", prefix, priority, property)
}
