package utils

import (
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

func FindSourceFiles(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "*.zig"))
}
