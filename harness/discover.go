// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	TAG_TEST   = ";!test"    // Marks a source file as a test.
	TAG_ASSERT = ";!assert " // Prefixes an assertion expression.
)

// Test is a test program and its assertions.
type Test struct {
	File       string   // Path of the source file.
	Name       string   // Base name, without extension.
	Assertions []string // Starlark expressions, in source order.
}

// ParseTest extracts the assertions of a test program.
// The ok result is false if the source is not marked as a test.
func ParseTest(file string, source string) (test Test, ok bool, err error) {
	if !strings.Contains(source, TAG_TEST) {
		return
	}

	test = Test{
		File: file,
		Name: strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
	}

	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, TAG_ASSERT) {
			continue
		}
		expr := strings.TrimLeftFunc(line[len(TAG_ASSERT):], unicode.IsSpace)
		test.Assertions = append(test.Assertions, expr)
	}

	if len(test.Assertions) == 0 {
		err = ErrNoAssertions(file)
		return
	}

	ok = true
	return
}

// Discover finds the test programs in a directory, sorted by file name.
func Discover(dir string) (tests []Test, err error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.asm"))
	if err != nil {
		return
	}

	for _, file := range files {
		var source []byte
		source, err = os.ReadFile(file)
		if err != nil {
			return
		}

		var test Test
		var ok bool
		test, ok, err = ParseTest(file, string(source))
		if err != nil {
			tests = nil
			return
		}
		if ok {
			tests = append(tests, test)
		}
	}

	return
}
