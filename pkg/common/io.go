package common

import (
	"io"
	"os"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenInput opens the named file, or stdin when name is empty.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// CreateOutput creates the named file, or wraps stdout when name is empty.
func CreateOutput(name string) (io.WriteCloser, error) {
	if name == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

// ReadTreeFile reads a tree in the given format from the named file or stdin.
func ReadTreeFile(name, format string) (*Node, error) {
	read, err := PickReadFunc(format)
	if err != nil {
		return nil, err
	}
	input, err := OpenInput(name)
	if err != nil {
		return nil, err
	}
	defer input.Close()
	return read(input)
}

// WriteTreeFile writes root using options.Format to the named file or stdout.
func WriteTreeFile(name string, root *Node, options *PrintOptions) error {
	printFunc, err := PickPrintFunc(options.Format)
	if err != nil {
		return err
	}
	output, err := CreateOutput(name)
	if err != nil {
		return err
	}
	if err := printFunc(root, output, options); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}
