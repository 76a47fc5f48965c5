package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// newDiskFs returns the filesystem the CLI reads and writes. Every name is
// made absolute before use, so the filesystem is rooted at "/".
func newDiskFs() billy.Filesystem {
	return osfs.New("/")
}

func absPath(name string) (string, error) {
	p, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}

	return p, nil
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	p, err := absPath(name)
	if err != nil {
		return nil, err
	}

	file, err := fs.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	b, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return b, nil
}

func writeFile(fs billy.Filesystem, name string, blob []byte) error {
	p, err := absPath(name)
	if err != nil {
		return err
	}

	file, err := fs.OpenFile(p, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	_, err = file.Write(blob)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
