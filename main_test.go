package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		session *gexec.Session
		scanDir string

		offendingText = "customer paid with the card 4111111111111111 on monday\n" +
			"refunds to card 5555555555554444 and later charged card: 4012888888881881 today\n"

		politeText = "order 12345 shipped\nphone 555-0100\n"
	)

	write := func(rel, content string) {
		path := filepath.Join(scanDir, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		scanDir, err = ioutil.TempDir("", "pan-alert-main")
		Expect(err).NotTo(HaveOccurred())

		cmdArgs = []string{}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(scanDir)).To(Succeed())
	})

	Describe("ScanCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"scan"}, cmdArgs...)
			cmd := exec.Command(cliPath, finalArgs...)

			var err error
			session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("when the directory holds card numbers", func() {
			BeforeEach(func() {
				write("deeper/contains.log", offendingText)
				write("binary.png", "\x89PNG\r\n4111111111111111\n")
				write("without.py", "print('hello')\n")

				cmdArgs = []string{scanDir}
			})

			It("reports every line with the intervals of the card numbers", func() {
				path := filepath.Join(scanDir, "deeper", "contains.log")

				Eventually(session.Out).Should(gbytes.Say(regexp.QuoteMeta("Found card number in " + path + ":")))
				Eventually(session.Out).Should(gbytes.Say(regexp.QuoteMeta("* Card number found at line 1 in interval: (28, 44)")))
				Eventually(session.Out).Should(gbytes.Say(regexp.QuoteMeta("* Card number found at line 2 in interval: (16, 32), (57, 73)")))
			})

			It("does not scan binary files", func() {
				Eventually(session).Should(gexec.Exit())
				Expect(session.Out).NotTo(gbytes.Say("binary.png"))
			})

			It("never prints the card numbers themselves", func() {
				Eventually(session).Should(gexec.Exit())
				Expect(session.Out.Contents()).NotTo(ContainSubstring("4111111111111111"))
				Expect(session.Err.Contents()).NotTo(ContainSubstring("4111111111111111"))
			})

			It("exits with status 3", func() {
				Eventually(session).Should(gexec.Exit(3))
			})

			It("summarizes the findings on stderr", func() {
				Eventually(session.Err).Should(gbytes.Say(`3 card number\(s\) on 2 line\(s\)`))
			})

			Context("when given the --exclude-test-cards flag", func() {
				BeforeEach(func() {
					cmdArgs = []string{"--exclude-test-cards", scanDir}
				})

				It("ignores well-known test card numbers", func() {
					Eventually(session).Should(gexec.Exit(0))
					Expect(session.Out.Contents()).To(BeEmpty())
				})
			})

			Context("when given the --skip-dir flag", func() {
				BeforeEach(func() {
					cmdArgs = []string{"--skip-dir", "deeper", scanDir}
				})

				It("does not descend into the directory", func() {
					Eventually(session).Should(gexec.Exit(0))
				})
			})

			Context("when an ignore file lists the offending file", func() {
				BeforeEach(func() {
					write(".panignore", "*.log\n")
					cmdArgs = []string{"--ignore-file", ".panignore", scanDir}
				})

				It("skips it", func() {
					Eventually(session).Should(gexec.Exit(0))
				})
			})

			Context("when given a config file", func() {
				BeforeEach(func() {
					configPath := filepath.Join(scanDir, "config.yml")
					Expect(ioutil.WriteFile(configPath, []byte("skip_dirs:\n- deeper\n"), 0644)).To(Succeed())

					cmdArgs = []string{"--config", configPath, scanDir}
				})

				It("uses its options", func() {
					Eventually(session).Should(gexec.Exit(0))
				})

				Context("and a flag overrides one of its options", func() {
					BeforeEach(func() {
						cmdArgs = append([]string{"--skip-dir", "elsewhere"}, cmdArgs...)
					})

					It("prefers the flag", func() {
						Eventually(session).Should(gexec.Exit(3))
					})
				})
			})

			Context("when given the --debug flag", func() {
				BeforeEach(func() {
					cmdArgs = []string{"--debug", scanDir}
				})

				It("logs to stderr with masked card numbers", func() {
					Eventually(session.Err).Should(gbytes.Say("dir-scanner"))
					Eventually(session).Should(gexec.Exit(3))
					Expect(session.Err.Contents()).To(ContainSubstring("411111******1111"))
				})

				It("keeps stdout a plain report", func() {
					Eventually(session).Should(gexec.Exit(3))
					Expect(session.Out.Contents()).NotTo(ContainSubstring("dir-scanner"))
				})
			})
		})

		Context("when given a regexp flag", func() {
			BeforeEach(func() {
				write("notes.txt", "ref 4111-1111-1111-1111 and 1234-5678-9012-3456\n")
				cmdArgs = []string{`--regexp=[0-9]{4}(?:-[0-9]{4}){3}`, scanDir}
			})

			It("uses the given regexp and still checks the checksum", func() {
				Eventually(session.Out).Should(gbytes.Say(regexp.QuoteMeta("* Card number found at line 1 in interval: (4, 23)\n")))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("when the regexp does not compile", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--regexp=[0-9", scanDir}
			})

			It("fails", func() {
				Eventually(session.Err).Should(gbytes.Say(`FAILED.*invalid regexp`))
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("when no card numbers are found", func() {
			BeforeEach(func() {
				write("polite.txt", politeText)
				cmdArgs = []string{scanDir}
			})

			It("exits with status 0 and reports nothing", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out.Contents()).To(BeEmpty())
			})
		})

		Context("when a directory does not exist", func() {
			BeforeEach(func() {
				cmdArgs = []string{filepath.Join(scanDir, "missing")}
			})

			It("exits with status 1", func() {
				Eventually(session.Err).Should(gbytes.Say("FAILED"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("when no directory is given", func() {
			It("exits with status 1", func() {
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			session, err := gexec.Start(exec.Command(cliPath, "version"), GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session.Out).Should(gbytes.Say("dev"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})
})
