// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/stackasm/harness"
)

var _ = Describe("LoadResults", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	check := func(path string) {
		globals, err := harness.LoadResults(path)
		Expect(err).NotTo(HaveOccurred())

		for _, expr := range []string{
			"top.pc == 7",
			"top.stack == [1, 2]",
			"count == 3",
			"name == 'inc'",
		} {
			ok, err := harness.Evaluate(expr, globals)
			Expect(err).NotTo(HaveOccurred(), expr)
			Expect(ok).To(BeTrue(), expr)
		}
	}

	It("should execute Starlark results", func() {
		check(writeFile(dir, "top_tb_data.star", ""+
			"top = struct(pc = 7, stack = [1, 2])\n"+
			"count = 1 + 2\n"+
			"name = 'inc'\n"))
	})

	It("should decode YAML results", func() {
		check(writeFile(dir, "top_tb_data.yaml", ""+
			"top:\n"+
			"  pc: 7\n"+
			"  stack: [1, 2]\n"+
			"count: 3\n"+
			"name: inc\n"))
	})

	It("should decode JSON results", func() {
		check(writeFile(dir, "top_tb_data.json",
			`{"top": {"pc": 7, "stack": [1, 2]}, "count": 3, "name": "inc"}`))
	})

	It("should freeze results", func() {
		globals, err := harness.LoadResults(writeFile(dir, "r.star", "stack = [1]\n"))
		Expect(err).NotTo(HaveOccurred())

		_, err = harness.Evaluate("stack.append(2)", globals)
		Expect(err).To(HaveOccurred())
	})

	It("should reject unknown formats", func() {
		_, err := harness.LoadResults(writeFile(dir, "top_tb_data.rb", "top = nil\n"))
		Expect(errors.Is(err, harness.ErrResultsFormat)).To(BeTrue())
	})

	It("should report Starlark errors", func() {
		_, err := harness.LoadResults(writeFile(dir, "bad.star", "top = \n"))
		Expect(err).To(HaveOccurred())
	})

	It("should report missing files", func() {
		_, err := harness.LoadResults(dir + "/missing.yaml")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Evaluate", func() {
	It("should hold only for True", func() {
		table := map[string]bool{
			"True":     true,
			"1 == 1":   true,
			"False":    false,
			"1":        false,
			"'yes'":    false,
			"None":     false,
			"[True]":   false,
			"2 > 1":    true,
			"not True": false,
		}
		for expr, want := range table {
			ok, err := harness.Evaluate(expr, nil)
			Expect(err).NotTo(HaveOccurred(), expr)
			Expect(ok).To(Equal(want), expr)
		}
	})

	It("should report bad expressions", func() {
		_, err := harness.Evaluate("top.pc ==", nil)
		Expect(err).To(HaveOccurred())

		_, err = harness.Evaluate("undefined == 1", nil)
		Expect(err).To(HaveOccurred())
	})
})
