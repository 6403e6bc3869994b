package tui

import (
	"image"
	"image/gif"
	"os"
)

// saveGIF writes the frames as a looping animation. Nothing is written
// for an empty recording.
func saveGIF(path string, frames []*image.Paletted, fps int) error {
	if len(frames) == 0 {
		return nil
	}
	delay := max(100/max(fps, 1), 2)
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
