package animation

import (
	"iter"
	"time"
)

// TimeLine divides a duration into evenly spaced frames
type TimeLine struct {
	Length          Duration
	FramesPerSecond int
}

// NewTimeLine creates a timeline
func NewTimeLine(length Duration, fps int) TimeLine {
	return TimeLine{Length: length, FramesPerSecond: fps}
}

// FrameCount returns the number of whole frames that fit in the duration
func (tl TimeLine) FrameCount() int {
	if tl.FramesPerSecond <= 0 || tl.Length <= 0 {
		return 0
	}
	return int(tl.Length.Seconds() * float64(tl.FramesPerSecond))
}

// FrameDuration returns the time between two frames
func (tl TimeLine) FrameDuration() Duration {
	if tl.FramesPerSecond <= 0 {
		return 0
	}
	return time.Second / Duration(tl.FramesPerSecond)
}

// Frames yields each frame index with its time stamp
func (tl TimeLine) Frames() iter.Seq2[int, TimeStamp] {
	return func(yield func(int, TimeStamp) bool) {
		step := tl.FrameDuration()
		for i := 0; i < tl.FrameCount(); i++ {
			if !yield(i, TimeStamp(step*Duration(i))) {
				return
			}
		}
	}
}
