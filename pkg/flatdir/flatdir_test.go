package flatdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestFlatdir(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flatdir")
}

var _ = Describe("Flatdir", func() {
	var mockFs afero.Afero

	BeforeEach(func() {
		mockFs = afero.Afero{Fs: afero.NewMemMapFs()}
		Expect(mockFs.MkdirAll("downloads", 0755)).To(Succeed())
	})

	write := func(names ...string) {
		for _, name := range names {
			Expect(mockFs.WriteFile(filepath.Join("downloads", name), []byte(name), 0644)).To(Succeed())
		}
	}

	Describe("Scan", func() {
		Context("Provided downloads next to a saved manifest", func() {
			It("leaves out the manifest and metadata files", func() {
				write("App.tsx", "index.css", "vibe.powerapps.latest.json", "vibe.powerapps.1234.json", ".DS_Store")

				files, err := NewScanner(mockFs, log.NewNopLogger(), DefaultPolicy()).Scan("downloads")
				Expect(err).NotTo(HaveOccurred())
				Expect(files.Sorted()).To(Equal([]string{"App.tsx", "index.css"}))
			})
		})

		Context("Provided a directory with subdirectories", func() {
			It("only lists the top level regular files", func() {
				write("a.txt")
				Expect(mockFs.MkdirAll(filepath.Join("downloads", "nested", "deeper"), 0755)).To(Succeed())
				Expect(mockFs.WriteFile(filepath.Join("downloads", "nested", "b.txt"), []byte("b"), 0644)).To(Succeed())

				files, err := NewScanner(mockFs, log.NewNopLogger(), DefaultPolicy()).Scan("downloads")
				Expect(err).NotTo(HaveOccurred())
				Expect(files.Sorted()).To(Equal([]string{"a.txt"}))
			})
		})

		Context("Provided an empty directory", func() {
			It("returns an empty set", func() {
				files, err := NewScanner(mockFs, log.NewNopLogger(), DefaultPolicy()).Scan("downloads")
				Expect(err).NotTo(HaveOccurred())
				Expect(files.Len()).To(Equal(0))
			})
		})

		Context("Provided a path that does not exist", func() {
			It("returns an error", func() {
				_, err := NewScanner(mockFs, log.NewNopLogger(), DefaultPolicy()).Scan("missing")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(`read source dir "missing"`))
			})
		})

		Context("Provided a custom policy", func() {
			It("applies only that policy", func() {
				write("keep.txt", "draft-1.txt", "NOTES", "vibe.powerapps.latest.json")
				policy := ExcludePolicy{Prefixes: []string{"draft-"}, Names: []string{"NOTES"}}

				files, err := NewScanner(mockFs, log.NewNopLogger(), policy).Scan("downloads")
				Expect(err).NotTo(HaveOccurred())
				Expect(files.Sorted()).To(Equal([]string{"keep.txt", "vibe.powerapps.latest.json"}))
			})
		})
	})

	Describe("Scan on a real filesystem", func() {
		It("skips symlinks", func() {
			dir, err := afero.TempDir(afero.NewOsFs(), "", "flatdir")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(dir)

			osFs := afero.Afero{Fs: afero.NewOsFs()}
			Expect(osFs.WriteFile(filepath.Join(dir, "real.txt"), []byte("x"), 0644)).To(Succeed())
			Expect(os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt"))).To(Succeed())

			files, err := NewScanner(osFs, log.NewNopLogger(), DefaultPolicy()).Scan(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files.Sorted()).To(Equal([]string{"real.txt"}))
		})
	})

	Describe("PolicyFromViper", func() {
		It("uses the defaults when nothing is set", func() {
			Expect(PolicyFromViper(viper.New())).To(Equal(DefaultPolicy()))
		})

		It("replaces each half independently", func() {
			v := viper.New()
			v.Set("exclude-prefix", []string{"plan.", " "})

			policy := PolicyFromViper(v)
			Expect(policy.Prefixes).To(Equal([]string{"plan."}))
			Expect(policy.Names).To(Equal(DefaultPolicy().Names))
			Expect(policy.ManifestPrefix()).To(Equal("plan."))
		})

		It("splits comma separated lists from the environment", func() {
			Expect(os.Setenv("TREESHIP_EXCLUDE_PREFIX", "draft-,tmp-")).To(Succeed())
			Expect(os.Setenv("TREESHIP_EXCLUDE_NAME", "NOTES, TODO.md")).To(Succeed())
			defer os.Unsetenv("TREESHIP_EXCLUDE_PREFIX")
			defer os.Unsetenv("TREESHIP_EXCLUDE_NAME")

			v := viper.New()
			v.SetEnvPrefix("TREESHIP")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			policy := PolicyFromViper(v)
			Expect(policy.Prefixes).To(Equal([]string{"draft-", "tmp-"}))
			Expect(policy.Names).To(Equal([]string{"NOTES", "TODO.md"}))
			Expect(policy.Excludes("draft-1")).To(BeTrue())
			Expect(policy.Excludes("tmp-1")).To(BeTrue())
			Expect(policy.Excludes("TODO.md")).To(BeTrue())
			Expect(policy.Excludes("keep.txt")).To(BeFalse())
		})

		It("falls back to the default manifest prefix when prefixes are cleared", func() {
			v := viper.New()
			v.Set("exclude-prefix", []string{})

			policy := PolicyFromViper(v)
			Expect(policy.Prefixes).To(BeEmpty())
			Expect(policy.Excludes("vibe.powerapps.latest.json")).To(BeFalse())
			Expect(policy.ManifestPrefix()).To(Equal("vibe.powerapps."))
		})
	})
})
