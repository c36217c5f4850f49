package hasher_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gur-shatz/hashburger/internal/hasher"
)

var _ = Describe("Hasher", func() {
	Describe("Lookup", func() {
		It("returns the default for an empty name", func() {
			fn, err := hasher.Lookup("")
			Expect(err).NotTo(HaveOccurred())
			Expect(fn([]byte("patty"))).To(Equal(hasher.XXH64([]byte("patty"))))
		})

		It("finds every registered algorithm", func() {
			for _, name := range hasher.Names() {
				fn, err := hasher.Lookup(name)
				Expect(err).NotTo(HaveOccurred(), name)
				Expect(fn).NotTo(BeNil(), name)
			}
		})

		It("rejects unknown names", func() {
			_, err := hasher.Lookup("md4")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, hasher.ErrUnknownAlgorithm)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("md4"))
		})
	})

	Describe("Names", func() {
		It("lists algorithms sorted", func() {
			Expect(hasher.Names()).To(Equal([]string{"fnv", "sha256", "xxhash"}))
		})
	})

	Describe("digests", func() {
		It("match known FNV-1a and xxHash vectors", func() {
			Expect(hasher.FNV64a(nil)).To(Equal(uint64(0xcbf29ce484222325)))
			Expect(hasher.XXH64(nil)).To(Equal(uint64(0xef46db3751d8e999)))
		})

		It("takes the big-endian prefix of SHA-256", func() {
			// sha256("") = e3b0c44298fc1c14...
			Expect(hasher.SHA256Prefix(nil)).To(Equal(uint64(0xe3b0c44298fc1c14)))
		})

		It("are deterministic and content sensitive", func() {
			for _, name := range hasher.Names() {
				fn, _ := hasher.Lookup(name)
				Expect(fn([]byte("ef"))).To(Equal(fn([]byte("ef"))), name)
				Expect(fn([]byte("ef"))).NotTo(Equal(fn([]byte("fe"))), name)
			}
		})
	})
})
