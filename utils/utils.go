package utils

import (
	"fmt"
	"os"
)

func MkDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// SampleName is the file stem shared by the artifacts of one sample.
func SampleName(sound string, index int) string {
	return fmt.Sprintf("%s-%06d", sound, index)
}
