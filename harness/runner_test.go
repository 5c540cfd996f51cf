// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/stackasm/harness"
)

var _ = Describe("Runner", func() {
	var (
		dir    string
		out    *bytes.Buffer
		runner *harness.Runner
	)

	// fakeSimulator reports the memory size and the viewer found on PATH.
	const fakeSimulator = "" +
		"bytes=$(grep -c 'assign instructions\\[' instruction_memory.v)\n" +
		"viewer=$(command -v gtkwave || echo none)\n" +
		"printf 'top = struct(size = %d, viewer = \"%s\")\\ncount = 7\\n' \"$bytes\" \"$viewer\" > top_tb_data.star\n"

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		Expect(os.Mkdir(filepath.Join(dir, "programs"), 0o755)).To(Succeed())

		cfg := harness.DefaultConfig(dir)
		cfg.Simulator = []string{"sh", "-c", fakeSimulator}

		out = &bytes.Buffer{}
		runner = &harness.Runner{Config: cfg, Out: out}
	})

	program := func(name, text string) string {
		return writeFile(filepath.Join(dir, "programs"), name, text)
	}

	It("should pass a test whose assertions hold", func() {
		program("push.asm", ";!test\n;!assert top.size == 6\n;!assert count == 7\npush x01\ninc\n")

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		sum := runner.Run(context.Background(), tests)
		Expect(sum.OK()).To(BeTrue())
		Expect(sum.Passed).To(Equal(1))
		Expect(sum.Failed).To(Equal(0))

		report := out.String()
		Expect(report).To(ContainSubstring("Discovered 1 tests:\n  - push (2 assertions)\n"))
		Expect(report).To(ContainSubstring("=== Running: push ===\nAssemble | Simulate | Load | Check\n"))
		Expect(report).To(ContainSubstring("  top.size == 6\n  count == 7\nPASSED\n"))
		Expect(report).To(HaveSuffix("1 passed, 0 failed\n"))

		memory, err := os.ReadFile(filepath.Join(dir, "instruction_memory.v"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(memory)).To(ContainSubstring("assign instructions[5] = 8'h20;"))
	})

	It("should stop at the first failed assertion", func() {
		program("fail.asm", ";!test\n;!assert count == 8\n;!assert count == 7\nnop\n")

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		sum := runner.Run(context.Background(), tests)
		Expect(sum.OK()).To(BeFalse())
		Expect(sum.Failed).To(Equal(1))
		Expect(sum.Results[0].Err).NotTo(HaveOccurred())

		report := out.String()
		Expect(report).To(ContainSubstring("  count == 8\n  ASSERTION FAILED\nFAILED\n"))
		Expect(report).NotTo(ContainSubstring("  count == 7\n"))
	})

	It("should not simulate a program that does not assemble", func() {
		program("bad.asm", ";!test\n;!assert True\nnop\nfrobnicate\n")

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		sum := runner.Run(context.Background(), tests)
		Expect(sum.Failed).To(Equal(1))
		Expect(sum.Results[0].Err).To(HaveOccurred())

		report := out.String()
		Expect(report).To(ContainSubstring("Assemble\nERROR\nassemble: Error (line 4): Unknown instruction 'frobnicate'\nFAILED\n"))
		Expect(report).NotTo(ContainSubstring("Simulate"))

		_, err = os.Stat(filepath.Join(dir, "instruction_memory.v"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should report a failing simulator", func() {
		program("sim.asm", ";!test\n;!assert True\nnop\n")
		runner.Config.Simulator = []string{"sh", "-c", "echo synthesis exploded; exit 3"}

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		sum := runner.Run(context.Background(), tests)
		Expect(sum.Failed).To(Equal(1))

		report := out.String()
		Expect(report).To(ContainSubstring("Assemble | Simulate\nERROR\nsimulate: exit status 3\nsynthesis exploded\n"))
		Expect(report).NotTo(ContainSubstring("Load"))
	})

	It("should hide the viewer behind a stub", func() {
		stub, err := harness.StubViewer(runner.Config.Viewers...)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, stub)
		runner.PathPrefix = stub

		info, err := os.Stat(filepath.Join(stub, "gtkwave"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm() & 0o100).NotTo(BeZero())

		program("view.asm", ";!test\n;!assert top.viewer == \""+filepath.Join(stub, "gtkwave")+"\"\nnop\n")

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		sum := runner.Run(context.Background(), tests)
		Expect(sum.OK()).To(BeTrue(), out.String())
	})

	It("should color results on request", func() {
		program("color.asm", ";!test\n;!assert True\nnop\n")
		runner.Color = true

		tests, err := harness.Discover(filepath.Join(dir, "programs"))
		Expect(err).NotTo(HaveOccurred())

		runner.Run(context.Background(), tests)
		Expect(strings.Contains(out.String(), "\033[32mPASSED\033[0m\n")).To(BeTrue())
	})
})
