package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"vidsum/internal/app/model"
)

// AcceptedExtensions lists the upload extensions the pipeline accepts,
// lowercase and without the leading dot.
var AcceptedExtensions = []string{"mp4", "mov", "avi", "mkv", "wmv", "flv"}

// Ext returns the lowercase file extension without the leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsAcceptedVideo reports whether the path carries one of the accepted
// video extensions. The comparison is case-insensitive.
func IsAcceptedVideo(path string) bool {
	return lo.Contains(AcceptedExtensions, Ext(path))
}

// IsMP4 reports whether the path already carries the canonical .mp4
// extension, case-insensitively.
func IsMP4(path string) bool {
	return Ext(path) == "mp4"
}

// GetAllVideoFiles returns the accepted video files in inputDir sorted
// by modification time, oldest first.
func GetAllVideoFiles(inputDir string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsAcceptedVideo(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			Name:     entry.Name(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// TempFileWithExt creates an empty temporary file carrying the given
// extension and returns its path. The caller owns the file.
func TempFileWithExt(ext string) (string, error) {
	f, err := os.CreateTemp("", "vidsum-*."+strings.TrimPrefix(ext, "."))
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
