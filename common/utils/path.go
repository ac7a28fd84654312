package utils

import (
	"path"

	"github.com/kardianos/osext"
)

func GetExecutableDir() string {
	exfolder, err := osext.ExecutableFolder()
	Check(err, "Cannot get executable dir")

	return exfolder
}

// ResolvePath leaves absolute paths alone and anchors relative ones to the
// executable folder.
func ResolvePath(filename string) string {
	if path.IsAbs(filename) {
		return filename
	}

	return path.Join(GetExecutableDir(), filename)
}
