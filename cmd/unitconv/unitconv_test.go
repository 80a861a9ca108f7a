package main

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func setenv(key, value string) {
	GinkgoHelper()
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

var _ = Describe("unitconv", func() {
	Context("converting", func() {
		DescribeTable("prints the converted amount",
			func(args []string, expected string) {
				res := execute(args...)
				Expect(res.stderr).To(BeEmpty())
				Expect(res.code).To(Equal(0))
				Expect(res.stdout).To(Equal(expected))
			},
			Entry("feet to meters", []string{"12", "foot", "meter"}, "12 Foot is 3.6576 Meter\n"),
			Entry("tokens ignore case and separators", []string{"1", "SQUARE_kilometer", "square-meter"}, "1 SquareKilometer is 1000000.0000 SquareMeter\n"),
			Entry("aliases resolve to their unit", []string{"2", "liter", "milliliter"}, "2 CubicDecimeter is 2000.0000 CubicCentimeter\n"),
			Entry("negative amount", []string{"-40", "celsius", "fahrenheit"}, "-40 Celsius is -40.0000 Fahrenheit\n"),
			Entry("negative amount after flags", []string{"-p", "2", "-40", "celsius", "kelvin"}, "-40 Celsius is 233.15 Kelvin\n"),
			Entry("explicit terminator", []string{"--", "-1", "meter", "foot"}, "-1 Meter is -3.2808 Foot\n"),
			Entry("precision flag", []string{"100", "celsius", "kelvin", "--precision", "2"}, "100 Celsius is 373.15 Kelvin\n"),
			Entry("zero precision", []string{"1", "mile", "meter", "-p=0"}, "1 Mile is 1609 Meter\n"),
		)

		It("prints JSON documents", func() {
			res := execute("1", "kilometer", "meter", "--json")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(MatchJSON(`{
				"from": {"quantity": "Length", "unit": "Kilometer", "value": 1},
				"to":   {"quantity": "Length", "unit": "Meter", "value": 1000}
			}`))
		})

		It("rounds JSON results to the precision", func() {
			res := execute("1", "foot", "meter", "--json", "-p", "2")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(ContainSubstring(`"value":0.3`))
		})

		It("writes non-finite JSON values as strings", func() {
			res := execute("NaN", "kilogram", "gram", "--json")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(MatchJSON(`{
				"from": {"quantity": "Mass", "unit": "Kilogram", "value": "NaN"},
				"to":   {"quantity": "Mass", "unit": "Gram", "value": "NaN"}
			}`))

			res = execute("-Inf", "kilogram", "gram", "--json")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(ContainSubstring(`"value":"-Inf"`))
		})

		It("logs diagnostics in verbose mode", func() {
			res := execute("1", "foot", "meter", "--verbose")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(Equal("1 Foot is 0.3048 Meter\n"))
			Expect(res.stderr).To(ContainSubstring("converted"))
			Expect(res.stderr).To(ContainSubstring("Foot"))
		})
	})

	Context("configuration", func() {
		It("reads the precision from the environment", func() {
			setenv("UNITCONV_PRECISION", "1")
			Expect(execute("1", "foot", "meter").stdout).To(Equal("1 Foot is 0.3 Meter\n"))
		})

		It("prefers flags over the environment", func() {
			setenv("UNITCONV_PRECISION", "1")
			Expect(execute("1", "foot", "meter", "-p", "3").stdout).To(Equal("1 Foot is 0.305 Meter\n"))
		})

		It("reads a YAML config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "unitconv.yaml")
			Expect(os.WriteFile(path, []byte("precision: 2\njson: false\n"), 0o600)).To(Succeed())

			res := execute("1", "inch", "centimeter", "--config", path)
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(Equal("1 Inch is 2.54 Centimeter\n"))
		})

		It("fails on a missing config file", func() {
			res := execute("1", "inch", "centimeter", "--config", "/nonexistent/unitconv.yaml")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring("failed to read config"))
		})
	})

	Context("errors", func() {
		DescribeTable("exit with status 1 and a message on stderr",
			func(args []string, message string) {
				res := execute(args...)
				Expect(res.code).To(Equal(1))
				Expect(res.stdout).To(BeEmpty())
				Expect(res.stderr).To(HavePrefix("Error: "))
				Expect(res.stderr).To(ContainSubstring(message))
			},
			Entry("non-numeric amount", []string{"ten", "meter", "foot"}, `invalid amount "ten"`),
			Entry("unknown source unit", []string{"1", "furlongs", "meter"}, "unknown unit"),
			Entry("unknown target unit", []string{"1", "meter", "cubit"}, "unknown unit"),
			Entry("symbols are not tokens", []string{"1", "m", "ft"}, "unknown unit"),
			Entry("quantity mismatch", []string{"1", "meter", "kelvin"}, "cannot convert Meter (Length) to Kelvin (Temperature)"),
			Entry("missing arguments", []string{"1", "meter"}, "accepts 3 arg(s)"),
			Entry("precision out of range", []string{"1", "meter", "foot", "-p", "18"}, "precision must be between 0 and 17"),
			Entry("negative precision", []string{"1", "meter", "foot", "--precision=-1"}, "precision must be between 0 and 17"),
		)
	})

	Context("list", func() {
		It("lists every quantity", func() {
			res := execute("list")
			Expect(res.code).To(Equal(0))
			for _, q := range []string{"Length:", "Mass:", "Time:", "Area:", "Volume:", "Velocity:", "Current:", "Temperature:", "SubstanceAmount:", "LuminousIntensity:"} {
				Expect(res.stdout).To(ContainSubstring(q))
			}
			Expect(res.stdout).To(ContainSubstring("  NauticalMilePerHour ("))
			Expect(res.stdout).To(ContainSubstring("aliases: Knot"))
		})

		It("lists a single quantity", func() {
			res := execute("list", "temperature")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(HavePrefix("Temperature:\n"))
			Expect(res.stdout).To(ContainSubstring("  Kelvin (K)\n"))
			Expect(res.stdout).NotTo(ContainSubstring("Meter"))
		})

		It("groups aliases under their unit", func() {
			res := execute("list", "volume")
			Expect(res.code).To(Equal(0))
			Expect(res.stdout).To(MatchRegexp(`(?m)^  CubicDecimeter \(.+\) aliases: Liter$`))
		})

		It("rejects an unknown quantity", func() {
			res := execute("list", "luminance")
			Expect(res.code).To(Equal(1))
			Expect(res.stderr).To(ContainSubstring("unknown quantity"))
		})
	})
})

var _ = Describe("negativeAmountArgs", func() {
	var fs *pflag.FlagSet

	BeforeEach(func() {
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		addFlags(fs)
	})

	DescribeTable("rewrites arguments",
		func(args, expected []string) {
			Expect(negativeAmountArgs(fs, args)).To(Equal(expected))
		},
		Entry("positive amount is untouched", []string{"1", "meter", "foot"}, []string{"1", "meter", "foot"}),
		Entry("negative amount", []string{"-1", "meter", "foot"}, []string{"--", "-1", "meter", "foot"}),
		Entry("flags stay in front", []string{"-1.5e3", "meter", "--json", "foot"}, []string{"--json", "--", "-1.5e3", "meter", "foot"}),
		Entry("flag values are kept with their flag", []string{"--precision", "2", "-3", "meter", "foot"}, []string{"--precision", "2", "--", "-3", "meter", "foot"}),
		Entry("shorthand values", []string{"-p", "2", "-3", "meter", "foot"}, []string{"-p", "2", "--", "-3", "meter", "foot"}),
		Entry("existing terminator", []string{"--", "-3", "meter", "foot"}, []string{"--", "-3", "meter", "foot"}),
		Entry("non-numeric dash argument", []string{"-x", "meter"}, []string{"-x", "meter"}),
	)
})
