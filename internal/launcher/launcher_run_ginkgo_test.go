//go:build unix

package launcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wharflab/tally-launcher/internal/platform"
)

var _ = Describe("Launcher Run", func() {
	var (
		installDir  string
		stdout      *bytes.Buffer
		stderr      *bytes.Buffer
		newLauncher func(host platform.Host, extra ...Option) *Launcher
	)

	BeforeEach(func() {
		var err error
		installDir, err = os.MkdirTemp("", "tally-launcher-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = os.RemoveAll(installDir)
		})

		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		newLauncher = func(host platform.Host, extra ...Option) *Launcher {
			opts := []Option{
				WithHost(host),
				WithLocator(func() (string, error) {
					return filepath.Join(installDir, "tally"), nil
				}),
				WithStdio(Stdio{In: strings.NewReader(""), Out: stdout, Err: stderr}),
			}
			return New(append(opts, extra...)...)
		}
	})

	Context("when the binary for the host is not installed", func() {
		It("reports the exact path and the issue URL and exits non-zero", func() {
			l := newLauncher(linuxX8664)

			code := l.Run([]string{"lint", "."})

			expected := filepath.Join(installDir, "bin", "tally-linux-x86_64", "tally")
			Expect(code).NotTo(Equal(0))
			Expect(code).To(Equal(ExitFailure))
			Expect(stderr.String()).To(ContainSubstring(expected))
			Expect(stderr.String()).To(ContainSubstring(DefaultIssueURL))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("does not fall back to another platform's binary", func() {
			marker := filepath.Join(installDir, "spawned")
			_, err := installScript(installDir, linuxX8664, "touch "+marker)
			Expect(err).NotTo(HaveOccurred())

			l := newLauncher(platform.Host{OS: "Linux", Arch: "riscv64"})
			Expect(l.Run(nil)).To(Equal(ExitFailure))

			Expect(stderr.String()).To(ContainSubstring(filepath.Join("bin", "tally-linux-riscv64", "tally")))
			Expect(marker).NotTo(BeAnExistingFile())
		})

		It("looks for the .exe name on windows hosts", func() {
			l := newLauncher(platform.Host{OS: "Windows", Arch: "AMD64"})
			Expect(l.Run(nil)).To(Equal(ExitFailure))
			Expect(stderr.String()).To(ContainSubstring(filepath.Join("tally-windows-x86_64", "tally.exe")))
		})
	})

	Context("when the binary is installed", func() {
		DescribeTable("mirrors the child's exit status",
			func(status int) {
				_, err := installScript(installDir, linuxX8664, "exit "+strconv.Itoa(status))
				Expect(err).NotTo(HaveOccurred())

				Expect(newLauncher(linuxX8664).Run(nil)).To(Equal(status))
				Expect(stderr.String()).To(BeEmpty())
			},
			Entry("success", 0),
			Entry("generic failure", 1),
			Entry("custom code", 42),
		)

		It("forwards arguments exactly and in order", func() {
			_, err := installScript(installDir, linuxX8664, `for a in "$@"; do printf '%s\n' "$a"; done`)
			Expect(err).NotTo(HaveOccurred())

			code := newLauncher(linuxX8664).Run([]string{"--flag", "value", "positional"})

			Expect(code).To(Equal(0))
			Expect(strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")).
				To(Equal([]string{"--flag", "value", "positional"}))
		})

		It("runs the child with the binary path as argv[0]", func() {
			path, err := installScript(installDir, linuxX8664, `printf '%s' "$0"`)
			Expect(err).NotTo(HaveOccurred())

			Expect(newLauncher(linuxX8664).Run(nil)).To(Equal(0))
			Expect(stdout.String()).To(Equal(path))
		})

		It("does not depend on the working directory", func() {
			_, err := installScript(installDir, linuxX8664, "exit 5")
			Expect(err).NotTo(HaveOccurred())

			wd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(os.TempDir())).To(Succeed())
			DeferCleanup(os.Chdir, wd)

			Expect(newLauncher(linuxX8664).Run(nil)).To(Equal(5))
		})
	})
})
