package plurality_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/loopcontext/plurality"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Plural Rule Registry", func() {
	var registry *plurality.Registry

	BeforeEach(func() {
		var err error
		registry, err = plurality.NewRegistry(plurality.Config{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should resolve every built-in locale to its rule", func() {
		Expect(registry.Resolve("fr")).To(Equal(plurality.ZeroOneSingular))
		Expect(registry.Resolve("hu-HU")).To(Equal(plurality.NoSingular))
		Expect(registry.Resolve("tr-TR")).To(Equal(plurality.NoSingular))
		Expect(registry.Resolve("cs-CZ")).To(Equal(plurality.CzechPlurality))
		Expect(registry.Resolve("pl-PL")).To(Equal(plurality.PolishPlurality))
		Expect(registry.Resolve("ro")).To(Equal(plurality.RomanianPlurality))
		Expect(registry.Resolve("ru")).To(Equal(plurality.CyrillicPlurality))
		Expect(registry.Resolve("uk")).To(Equal(plurality.CyrillicPlurality))
	})

	It("should fall back to the English-like rule for unknown locales", func() {
		Expect(registry.Resolve("xx-unknown")).To(Equal(plurality.OneSingular))
		Expect(registry.Resolve("")).To(Equal(plurality.OneSingular))
	})

	It("should not infer rules for dialects of listed languages", func() {
		Expect(registry.Resolve("ru-RU")).To(Equal(plurality.OneSingular))
		Expect(registry.Resolve("pl")).To(Equal(plurality.OneSingular))
	})

	It("should classify counts end to end", func() {
		Expect(registry.Resolve("ru").Classify(21)).To(Equal(plurality.One))
		Expect(registry.Resolve("ru").Classify(22)).To(Equal(plurality.Few))
		Expect(registry.Resolve("ru").Classify(25)).To(Equal(plurality.Many))
		Expect(registry.Resolve("xx-unknown").Classify(21)).To(Equal(plurality.Other))
	})

	It("should render category suffixes for key lookup", func() {
		Expect(registry.Resolve("ro").Suffix(0)).To(Equal("_few"))
		Expect(registry.Resolve("ro").Suffix(1)).To(Equal("_one"))
		Expect(registry.Resolve("ro").Suffix(20)).To(Equal("_other"))
	})

	It("should count default-rule fallbacks", func() {
		registry.Resolve("xx")
		registry.Resolve("xx")
		registry.Resolve("ru")

		stats := registry.SnapshotStats()
		Expect(stats.DefaultFallbacks["xx"]).To(Equal(2))
		Expect(stats.DefaultFallbacks).NotTo(HaveKey("ru"))

		registry.ResetStats()
		Expect(registry.SnapshotStats().DefaultFallbacks).To(BeEmpty())
	})

	It("should extend the table from a rules file", func() {
		tmpDir, err := os.MkdirTemp("", "plurality-rules-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(tmpDir)

		content := []byte("locales:\n  sr: cyrillic\n  sk-SK: czech\n")
		path := filepath.Join(tmpDir, "rules.yaml")
		Expect(os.WriteFile(path, content, 0o600)).To(Succeed())

		custom, err := plurality.NewRegistry(plurality.Config{RulesPath: path})
		Expect(err).NotTo(HaveOccurred())
		Expect(custom.Resolve("sr")).To(Equal(plurality.CyrillicPlurality))
		Expect(custom.Resolve("sk-SK")).To(Equal(plurality.CzechPlurality))
		Expect(custom.Resolve("ru")).To(Equal(plurality.CyrillicPlurality))
	})

	It("should reject a rules file with an unknown rule name", func() {
		tmpDir, err := os.MkdirTemp("", "plurality-rules-*")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(tmpDir)

		path := filepath.Join(tmpDir, "rules.yaml")
		Expect(os.WriteFile(path, []byte("locales:\n  sr: klingon\n"), 0o600)).To(Succeed())

		_, err = plurality.NewRegistry(plurality.Config{RulesPath: path})
		Expect(err).To(HaveOccurred())
	})

	It("should be safe under concurrent resolution and classification", func() {
		const (
			workers = 12
			iters   = 300
		)

		errCh := make(chan error, workers)
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < iters; j++ {
					if got := registry.Resolve("uk").Classify(5); got != plurality.Many {
						errCh <- fmt.Errorf("uk count=5: got %s", got)
						return
					}
					if got := plurality.Resolve("cs-CZ").Classify(3); got != plurality.Few {
						errCh <- fmt.Errorf("cs-CZ count=3: got %s", got)
						return
					}
				}
			}()
		}

		wg.Wait()
		close(errCh)

		for err := range errCh {
			Expect(err).NotTo(HaveOccurred())
		}
	})
})
