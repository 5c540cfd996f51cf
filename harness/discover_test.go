// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/stackasm/harness"
)

func writeFile(dir, name, text string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(text), 0o644)).To(Succeed())
	return path
}

var _ = Describe("ParseTest", func() {
	It("should ignore sources without a test tag", func() {
		_, ok, err := harness.ParseTest("plain.asm", "nop\n;!assert count == 1\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should collect assertions in order", func() {
		source := "" +
			";!test\n" +
			"push x01\n" +
			"  ;!assert   top.pc == 5\n" +
			";!assert count == 1 and top.sp == 0\n" +
			";!asserting nothing\n" +
			"halt\n"

		test, ok, err := harness.ParseTest("dir/inc.asm", source)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(test.Name).To(Equal("inc"))
		Expect(test.File).To(Equal("dir/inc.asm"))
		Expect(test.Assertions).To(Equal([]string{
			"top.pc == 5",
			"count == 1 and top.sp == 0",
		}))
	})

	It("should reject tests without assertions", func() {
		_, ok, err := harness.ParseTest("empty.asm", ";!test\nnop\n")
		Expect(ok).To(BeFalse())
		Expect(err).To(Equal(harness.ErrNoAssertions("empty.asm")))
		Expect(err.Error()).To(Equal("Error: empty.asm has no assertions"))
	})
})

var _ = Describe("Discover", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should find tests sorted by name", func() {
		writeFile(dir, "b.asm", ";!test\n;!assert True\nnop\n")
		writeFile(dir, "a.asm", ";!test\n;!assert True\n;!assert 1 == 1\nnop\n")
		writeFile(dir, "lib.asm", "nop\n")
		writeFile(dir, "notes.txt", ";!test\n")

		tests, err := harness.Discover(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(tests).To(HaveLen(2))
		Expect(tests[0].Name).To(Equal("a"))
		Expect(tests[0].Assertions).To(HaveLen(2))
		Expect(tests[1].Name).To(Equal("b"))
	})

	It("should fail on a test without assertions", func() {
		writeFile(dir, "a.asm", ";!test\n;!assert True\n")
		bad := writeFile(dir, "b.asm", ";!test\nnop\n")

		tests, err := harness.Discover(dir)
		Expect(err).To(Equal(harness.ErrNoAssertions(bad)))
		Expect(tests).To(BeEmpty())
	})

	It("should find nothing in an empty directory", func() {
		tests, err := harness.Discover(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(tests).To(BeEmpty())
	})
})
