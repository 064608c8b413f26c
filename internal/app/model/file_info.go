package model

import "time"

// FileInfo describes a candidate video file discovered for processing.
type FileInfo struct {
	FullPath string
	Name     string
	ModTime  time.Time
}
